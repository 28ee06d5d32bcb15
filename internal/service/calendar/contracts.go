package calendar

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календарей заведений
type CalendarRepository interface {
	GetByEstablishment(ctx context.Context, establishmentID int64) (*domain.BusinessCalendar, error)
	Upsert(ctx context.Context, cal *domain.BusinessCalendar) (*domain.BusinessCalendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
