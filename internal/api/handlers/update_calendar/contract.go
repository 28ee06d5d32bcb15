package update_calendar

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type CalendarService interface {
	Update(ctx context.Context, cal *domain.BusinessCalendar, actor domain.Actor) (*domain.BusinessCalendar, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
