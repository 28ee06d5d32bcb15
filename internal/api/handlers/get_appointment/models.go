package get_appointment

import (
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 string  `json:"id"`
	EstablishmentID    int64   `json:"establishmentId"`
	UserID             int64   `json:"userId"`
	BarberID           int64   `json:"barberId"`
	ServiceID          int64   `json:"serviceId"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	ServicePrice       float64 `json:"servicePrice"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 appt.ID,
		EstablishmentID:    appt.EstablishmentID,
		UserID:             appt.UserID,
		BarberID:           appt.BarberID,
		ServiceID:          appt.ServiceID,
		StartTime:          appt.StartTime.Format(time.RFC3339),
		EndTime:            appt.EndTime().Format(time.RFC3339),
		DurationMinutes:    appt.DurationMinutes,
		Status:             string(appt.Status),
		ServiceName:        appt.ServiceName,
		ServicePrice:       appt.ServicePrice,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          appt.UpdatedAt.Format(time.RFC3339),
	}
	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}
	return resp
}
