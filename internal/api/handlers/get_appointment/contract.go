package get_appointment

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, id string, actor domain.Actor) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
