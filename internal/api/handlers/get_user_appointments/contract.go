package get_user_appointments

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type AppointmentsService interface {
	GetByUser(ctx context.Context, userID int64, status *domain.AppointmentStatus, actor domain.Actor) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
