package update_calendar

import (
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// UpdateCalendarRequest HTTP request model. Дни недели кодируются
// числами 0-6, где 0 - воскресенье (как в time.Weekday).
type UpdateCalendarRequest struct {
	OpeningHour        int   `json:"openingHour"`
	ClosingHour        int   `json:"closingHour"`
	DaysOff            []int `json:"daysOff"`
	MinLeadTimeMinutes int   `json:"minLeadTimeMinutes"`
	MaxAdvanceDays     int   `json:"maxAdvanceDays"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	EstablishmentID    int64 `json:"establishmentId"`
	OpeningHour        int   `json:"openingHour"`
	ClosingHour        int   `json:"closingHour"`
	DaysOff            []int `json:"daysOff"`
	MinLeadTimeMinutes int   `json:"minLeadTimeMinutes"`
	MaxAdvanceDays     int   `json:"maxAdvanceDays"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpdateCalendarRequest) ToDomain(establishmentID int64) *domain.BusinessCalendar {
	daysOff := make([]time.Weekday, 0, len(r.DaysOff))
	for _, d := range r.DaysOff {
		daysOff = append(daysOff, time.Weekday(d))
	}

	return &domain.BusinessCalendar{
		EstablishmentID:    establishmentID,
		OpeningHour:        r.OpeningHour,
		ClosingHour:        r.ClosingHour,
		DaysOff:            daysOff,
		MinLeadTimeMinutes: r.MinLeadTimeMinutes,
		MaxAdvanceDays:     r.MaxAdvanceDays,
	}
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
