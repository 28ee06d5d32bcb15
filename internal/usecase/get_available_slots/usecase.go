package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	calendarRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/servicecatalog"
)

// UseCase use case для получения доступных слотов барбера
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	calendarRepo    CalendarRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	calendarRepo CalendarRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		calendarRepo:    calendarRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Список слотов носит рекомендательный характер: он строится по тому же
// снимку записей, что и проверка конфликтов при создании, но без
// блокировки, поэтому финальное решение остаётся за create_appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: establishment=%d, barber=%d, service=%d, date=%s",
		req.EstablishmentID, req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем барбера
	barber, err := uc.catalogRepo.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive || barber.EstablishmentID != req.EstablishmentID {
		uc.logger.Warn("GetAvailableSlots: barber id=%d not found in establishment id=%d",
			req.BarberID, req.EstablishmentID)
		return nil, ErrBarberNotFound
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if service.EstablishmentID != barber.EstablishmentID {
		uc.logger.Warn("GetAvailableSlots: service id=%d not available at establishment id=%d",
			req.ServiceID, req.EstablishmentID)
		return nil, ErrServiceNotAtEstablishment
	}

	// 5. Календарь заведения, дефолтная политика при отсутствии
	calendar, err := uc.calendarRepo.GetByEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get calendar: %v", err)
			return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
		}
		calendar = domain.DefaultCalendar(req.EstablishmentID)
		uc.logger.Info("GetAvailableSlots: using default calendar for establishment=%d", req.EstablishmentID)
	}

	// 6. Генерируем сетку слотов на дату
	slots := generateTimeSlots(calendar, service.DurationMinutes, req.Date, now)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots for barber=%d on %s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			EstablishmentID: req.EstablishmentID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			DurationMinutes: service.DurationMinutes,
			Slots:           []Slot{},
		}, nil
	}

	// 7. Активные записи барбера на эту дату
	requestDate := req.Date
	filter := domain.BarberAppointmentsFilter{
		BarberID:        req.BarberID,
		StartDate:       &requestDate,
		EndDate:         &requestDate,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Размечаем занятость слотов
	marked := markAvailability(slots, appointments)

	uc.logger.Info("GetAvailableSlots: %d slots generated for barber=%d on %s",
		len(marked), req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		EstablishmentID: req.EstablishmentID,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           marked,
	}, nil
}
