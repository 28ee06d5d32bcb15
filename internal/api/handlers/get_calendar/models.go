package get_calendar

import (
	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// CalendarResponse HTTP response model. Дни недели кодируются числами
// 0-6, где 0 - воскресенье (как в time.Weekday).
type CalendarResponse struct {
	EstablishmentID    int64 `json:"establishmentId"`
	OpeningHour        int   `json:"openingHour"`
	ClosingHour        int   `json:"closingHour"`
	DaysOff            []int `json:"daysOff"`
	MinLeadTimeMinutes int   `json:"minLeadTimeMinutes"`
	MaxAdvanceDays     int   `json:"maxAdvanceDays"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(cal *domain.BusinessCalendar) *CalendarResponse {
	daysOff := make([]int, 0, len(cal.DaysOff))
	for _, d := range cal.DaysOff {
		daysOff = append(daysOff, int(d))
	}

	return &CalendarResponse{
		EstablishmentID:    cal.EstablishmentID,
		OpeningHour:        cal.OpeningHour,
		ClosingHour:        cal.ClosingHour,
		DaysOff:            daysOff,
		MinLeadTimeMinutes: cal.MinLeadTimeMinutes,
		MaxAdvanceDays:     cal.MaxAdvanceDays,
	}
}
