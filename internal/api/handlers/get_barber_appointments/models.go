package get_barber_appointments

import (
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// AppointmentItem элемент списка записей барбера
type AppointmentItem struct {
	ID              string  `json:"id"`
	UserID          int64   `json:"userId"`
	ServiceID       int64   `json:"serviceId"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentsListResponse HTTP response model
type AppointmentsListResponse struct {
	BarberID     int64             `json:"barberId"`
	Appointments []AppointmentItem `json:"appointments"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(barberID int64, appts []*domain.Appointment) *AppointmentsListResponse {
	items := make([]AppointmentItem, 0, len(appts))
	for _, appt := range appts {
		items = append(items, AppointmentItem{
			ID:              appt.ID,
			UserID:          appt.UserID,
			ServiceID:       appt.ServiceID,
			StartTime:       appt.StartTime.Format(time.RFC3339),
			EndTime:         appt.EndTime().Format(time.RFC3339),
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
			ServiceName:     appt.ServiceName,
			ServicePrice:    appt.ServicePrice,
			Notes:           appt.Notes,
		})
	}

	return &AppointmentsListResponse{
		BarberID:     barberID,
		Appointments: items,
	}
}
