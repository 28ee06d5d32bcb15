package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	calendarRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/servicecatalog"
	"github.com/agendasis/AgendaSIS-BookingService/internal/integrations/notifyservice"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/simpletxmanager"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/txmanager"
)

// notifyTimeout ограничивает время доставки fire-and-forget уведомления
const notifyTimeout = 5 * time.Second

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	calendarRepo    CalendarRepository
	notifyClient    NotifyClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	calendarRepo CalendarRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		calendarRepo:    calendarRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Снимок занятых слотов, валидация и вставка выполняются в одной
// сериализуемой транзакции с FOR UPDATE на снимке: в исходной системе
// AgendaSIS проверка пересечений и вставка шли двумя независимыми
// запросами, и два конкурентных запроса могли оба пройти валидацию по
// одному устаревшему снимку (double booking). Здесь эта гонка закрыта;
// исчерпание повторов сериализации возвращается как ErrConcurrentConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, barber=%d, service=%d, start=%s",
		req.UserID, req.BarberID, req.ServiceID, req.StartTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем барбера
	barber, err := uc.catalogRepo.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("CreateAppointment: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Услуга и барбер должны принадлежать одному заведению
	if service.EstablishmentID != barber.EstablishmentID {
		uc.logger.Warn("CreateAppointment: service id=%d belongs to establishment %d, barber id=%d to %d",
			req.ServiceID, service.EstablishmentID, req.BarberID, barber.EstablishmentID)
		return nil, ErrServiceNotAtEstablishment
	}

	var result *domain.Appointment

	// 6. Снимок -> валидация -> вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Календарь заведения, дефолтная политика при отсутствии
		calendar, err := uc.calendarRepo.GetByEstablishment(txCtx, barber.EstablishmentID)
		if err != nil {
			if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
				uc.logger.Error("CreateAppointment: failed to get calendar: %v", err)
				return fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
			}
			calendar = domain.DefaultCalendar(barber.EstablishmentID)
			uc.logger.Info("CreateAppointment: using default calendar for establishment=%d", barber.EstablishmentID)
		}

		// 6.2. Снимок записей барбера на дату запроса с блокировкой FOR UPDATE
		requestDate := req.StartTime
		filter := domain.BarberAppointmentsFilter{
			BarberID:        req.BarberID,
			StartDate:       &requestDate,
			EndDate:         &requestDate,
			IncludeInactive: false,
		}

		existing, err := uc.appointmentRepo.GetByBarberWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 6.3. Чистый валидатор: часы работы, выходные, lead time,
		// горизонт, пересечения
		interval, err := validateAppointment(req, service, calendar, existing, now)
		if err != nil {
			uc.logger.Warn("CreateAppointment: validation rejected: %v", err)
			return err
		}

		// 6.4. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			EstablishmentID: barber.EstablishmentID,
			UserID:          req.UserID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			StartTime:       interval.Start,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization conflict for barber=%d, start=%s",
				req.BarberID, req.StartTime.Format("2006-01-02 15:04"))
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 7. Уведомление клиента - fire-and-forget, ошибка не влияет на результат
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		_ = uc.notifyClient.SendWithGracefulDegradation(notifyCtx, &notifyservice.Notification{
			UserID:        result.UserID,
			Type:          notifyservice.TypeAppointmentCreated,
			AppointmentID: result.ID,
			Message: fmt.Sprintf("Ваша запись создана: %s, %s",
				result.ServiceName, result.StartTime.Format("2006-01-02 15:04")),
		})
	}()

	return &Response{
		ID:              result.ID,
		EstablishmentID: result.EstablishmentID,
		UserID:          result.UserID,
		BarberID:        result.BarberID,
		ServiceID:       result.ServiceID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime(),
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// isSerializationFailure проверяет, что транзакция не прошла из-за
// конкурентного бронирования (оба менеджера транзакций возвращают свой sentinel)
func isSerializationFailure(err error) bool {
	return errors.Is(err, txmanager.ErrSerializationFailure) ||
		errors.Is(err, simpletxmanager.ErrSerializationFailure)
}
