package get_available_slots

import (
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	getSlots "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/get_available_slots"
)

// SlotItem временной слот с признаком доступности
type SlotItem struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string     `json:"date"`
	EstablishmentID int64      `json:"establishmentId"`
	BarberID        int64      `json:"barberId"`
	ServiceID       int64      `json:"serviceId"`
	DurationMinutes int        `json:"durationMinutes"`
	Slots           []SlotItem `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotItem, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotItem{
			StartTime: slot.StartTime.Format(time.RFC3339),
			EndTime:   slot.EndTime.Format(time.RFC3339),
			Available: slot.Available,
		})
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		EstablishmentID: resp.EstablishmentID,
		BarberID:        resp.BarberID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
