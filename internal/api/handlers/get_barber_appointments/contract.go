package get_barber_appointments

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type AppointmentsService interface {
	GetByBarber(ctx context.Context, filter domain.BarberAppointmentsFilter, actor domain.Actor) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
