package update_appointment_status

import (
	"time"

	updateStatus "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending|confirmed|completed|cancelled
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID                   string `json:"id"`
	UserID               int64  `json:"userId"`
	BarberID             int64  `json:"barberId"`
	Status               string `json:"status"`
	StartTime            string `json:"startTime"`
	DurationMinutes      int    `json:"durationMinutes"`
	LoyaltyPointsAccrued int    `json:"loyaltyPointsAccrued"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:                   resp.ID,
		UserID:               resp.UserID,
		BarberID:             resp.BarberID,
		Status:               resp.Status,
		StartTime:            resp.StartTime.Format(time.RFC3339),
		DurationMinutes:      resp.DurationMinutes,
		LoyaltyPointsAccrued: resp.LoyaltyPointsAccrued,
	}
}
