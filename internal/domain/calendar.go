package domain

import (
	"fmt"
	"time"
)

// BusinessCalendar represents the booking policy of an establishment.
// Часы работы заданы с точностью до часа (локальное время заведения),
// политика записи - в минутах (lead time) и днях (горизонт).
type BusinessCalendar struct {
	EstablishmentID    int64
	OpeningHour        int // 0-23
	ClosingHour        int // 0-23, строго больше OpeningHour
	DaysOff            []time.Weekday
	MinLeadTimeMinutes int
	MaxAdvanceDays     int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsDayOff returns true if the weekday is a non-working day
func (c *BusinessCalendar) IsDayOff(day time.Weekday) bool {
	for _, d := range c.DaysOff {
		if d == day {
			return true
		}
	}
	return false
}

// Validate проверяет инварианты календаря
func (c *BusinessCalendar) Validate() error {
	if c.OpeningHour < 0 || c.OpeningHour > 23 {
		return fmt.Errorf("opening hour must be in [0, 23], got %d", c.OpeningHour)
	}
	if c.ClosingHour < 0 || c.ClosingHour > 23 {
		return fmt.Errorf("closing hour must be in [0, 23], got %d", c.ClosingHour)
	}
	if c.OpeningHour >= c.ClosingHour {
		return fmt.Errorf("opening hour %d must be before closing hour %d", c.OpeningHour, c.ClosingHour)
	}
	if len(c.DaysOff) > 6 {
		return fmt.Errorf("at least one working day is required")
	}
	for _, d := range c.DaysOff {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("invalid weekday %d in days off", d)
		}
	}
	if c.MinLeadTimeMinutes < MinLeadTimeMinutesLimit || c.MinLeadTimeMinutes > MaxLeadTimeMinutesLimit {
		return fmt.Errorf("min lead time must be in [%d, %d] minutes, got %d",
			MinLeadTimeMinutesLimit, MaxLeadTimeMinutesLimit, c.MinLeadTimeMinutes)
	}
	if c.MaxAdvanceDays < MinAdvanceDaysLimit || c.MaxAdvanceDays > MaxAdvanceDaysLimit {
		return fmt.Errorf("max advance days must be in [%d, %d], got %d",
			MinAdvanceDaysLimit, MaxAdvanceDaysLimit, c.MaxAdvanceDays)
	}
	return nil
}

// DefaultCalendar возвращает календарь с дефолтной политикой заведения
func DefaultCalendar(establishmentID int64) *BusinessCalendar {
	return &BusinessCalendar{
		EstablishmentID:    establishmentID,
		OpeningHour:        DefaultOpeningHour,
		ClosingHour:        DefaultClosingHour,
		DaysOff:            []time.Weekday{time.Sunday},
		MinLeadTimeMinutes: DefaultMinLeadTimeMinutes,
		MaxAdvanceDays:     DefaultMaxAdvanceDays,
	}
}
