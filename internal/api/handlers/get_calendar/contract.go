package get_calendar

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type CalendarService interface {
	Get(ctx context.Context, establishmentID int64) (*domain.BusinessCalendar, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
