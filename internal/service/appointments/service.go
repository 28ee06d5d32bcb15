package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	appointmentRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/appointment"
	"github.com/agendasis/AgendaSIS-BookingService/internal/integrations/notifyservice"
)

// notifyTimeout ограничивает время доставки fire-and-forget уведомления
const notifyTimeout = 5 * time.Second

// Service сервис чтения и отмены записей
type Service struct {
	appointmentRepo AppointmentRepository
	notifyClient    NotifyClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, notifyClient NotifyClient, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifyClient:    notifyClient,
		logger:          logger,
	}
}

// GetByID возвращает запись по ID с проверкой прав актора
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: failed to get appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if !actor.CanViewAppointment(appt) {
		s.logger.Warn("GetByID: user=%d (role=%s) has no access to appointment id=%s",
			actor.UserID, actor.Role, id)
		return nil, ErrPermissionDenied
	}

	return appt, nil
}

// GetByUser возвращает записи пользователя. Клиент видит только свои записи.
func (s *Service) GetByUser(ctx context.Context, userID int64, status *domain.AppointmentStatus, actor domain.Actor) ([]*domain.Appointment, error) {
	if !actor.Role.IsStaff() && actor.UserID != userID {
		s.logger.Warn("GetByUser: user=%d (role=%s) requested appointments of user=%d",
			actor.UserID, actor.Role, userID)
		return nil, ErrPermissionDenied
	}

	appts, err := s.appointmentRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetByUser: failed to get appointments for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return appts, nil
}

// GetByBarber возвращает записи барбера с фильтрацией по периоду и статусу.
// Доступно только персоналу.
func (s *Service) GetByBarber(ctx context.Context, filter domain.BarberAppointmentsFilter, actor domain.Actor) ([]*domain.Appointment, error) {
	if !actor.Role.IsStaff() {
		s.logger.Warn("GetByBarber: user=%d (role=%s) has no staff access", actor.UserID, actor.Role)
		return nil, ErrPermissionDenied
	}

	if filter.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByBarber: failed to get appointments for barber=%d: %v", filter.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return appts, nil
}

// Cancel отменяет запись (soft delete с причиной). Клиент может отменить
// только свою запись, барбер - только запись на себя.
func (s *Service) Cancel(ctx context.Context, id string, reason string, actor domain.Actor) error {
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to get appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if !actor.CanCancelAppointment(appt) {
		s.logger.Warn("Cancel: user=%d (role=%s) has no right to cancel appointment id=%s",
			actor.UserID, actor.Role, id)
		return ErrPermissionDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s in status %s cannot be cancelled", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%s cancelled by user=%d", id, actor.UserID)

	// Уведомление клиента - fire-and-forget
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		_ = s.notifyClient.SendWithGracefulDegradation(notifyCtx, &notifyservice.Notification{
			UserID:        appt.UserID,
			Type:          notifyservice.TypeAppointmentCancelled,
			AppointmentID: appt.ID,
			Message:       fmt.Sprintf("Ваша запись на %s отменена", appt.StartTime.Format("2006-01-02 15:04")),
		})
	}()

	return nil
}
