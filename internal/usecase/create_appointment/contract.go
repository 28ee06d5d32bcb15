package create_appointment

import (
	"context"
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	"github.com/agendasis/AgendaSIS-BookingService/internal/integrations/notifyservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByBarberWithFilter(ctx context.Context, filter domain.BarberAppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория каталога услуг и барберов
type CatalogRepository interface {
	GetService(ctx context.Context, serviceID int64) (*domain.ServiceDefinition, error)
	GetBarber(ctx context.Context, barberID int64) (*domain.Barber, error)
}

// CalendarRepository интерфейс репозитория календарей заведений
type CalendarRepository interface {
	GetByEstablishment(ctx context.Context, establishmentID int64) (*domain.BusinessCalendar, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	SendWithGracefulDegradation(ctx context.Context, n *notifyservice.Notification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
