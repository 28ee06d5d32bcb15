package get_user_appointments

import (
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// AppointmentItem элемент списка записей
type AppointmentItem struct {
	ID              string  `json:"id"`
	EstablishmentID int64   `json:"establishmentId"`
	BarberID        int64   `json:"barberId"`
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
	UserID       int64             `json:"userId"`
	Appointments []AppointmentItem `json:"appointments"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(userID int64, appts []*domain.Appointment) *AppointmentsListResponse {
	items := make([]AppointmentItem, 0, len(appts))
	for _, appt := range appts {
		items = append(items, AppointmentItem{
			ID:              appt.ID,
			EstablishmentID: appt.EstablishmentID,
			BarberID:        appt.BarberID,
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
		UserID:       userID,
		Appointments: items,
	}
}
