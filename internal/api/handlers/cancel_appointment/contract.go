package cancel_appointment

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, id string, reason string, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
