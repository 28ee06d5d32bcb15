package update_appointment_status

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

// UseCase use case смены статуса записи с начислением баллов лояльности
type UseCase struct {
	appointmentRepo AppointmentRepository
	loyaltyRepo     LoyaltyRepository
	notifyClient    NotifyClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	loyaltyRepo LoyaltyRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		loyaltyRepo:     loyaltyRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет смену статуса. Чтение записи, проверка перехода,
// обновление статуса и начисление баллов за завершённый визит выполняются
// в одной транзакции: завершение записи без начисления (или двойное
// начисление при повторе запроса) недопустимо.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: appointment=%s, next=%s", req.AppointmentID, req.NextStatus)

	if req.AppointmentID == "" {
		return nil, fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	nextStatus := domain.AppointmentStatus(req.NextStatus)
	if !nextStatus.IsValid() {
		uc.logger.Warn("UpdateAppointmentStatus: unknown status %q", req.NextStatus)
		return nil, ErrInvalidStatus
	}

	var (
		result  *domain.Appointment
		accrued int
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointmentStatus: failed to get appointment: %v", err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.CanTransitionTo(nextStatus) {
			uc.logger.Warn("UpdateAppointmentStatus: transition %s -> %s is not allowed for id=%s",
				appt.Status, nextStatus, appt.ID)
			return ErrInvalidTransition
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, appt.ID, nextStatus); err != nil {
			uc.logger.Error("UpdateAppointmentStatus: failed to update status: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// Завершённый визит начисляет клиенту баллы лояльности
		if nextStatus == domain.StatusCompleted {
			total, err := uc.loyaltyRepo.AddPoints(txCtx, appt.UserID, domain.LoyaltyPointsPerAppointment)
			if err != nil {
				uc.logger.Error("UpdateAppointmentStatus: failed to accrue loyalty points: %v", err)
				return fmt.Errorf("%w: failed to accrue loyalty points: %v", ErrInternal, err)
			}
			accrued = domain.LoyaltyPointsPerAppointment
			uc.logger.Info("UpdateAppointmentStatus: accrued %d points for user=%d, total=%d",
				accrued, appt.UserID, total)
		}

		appt.Status = nextStatus
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment id=%s is now %s", result.ID, result.Status)

	// Уведомление клиента - fire-and-forget
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		_ = uc.notifyClient.SendWithGracefulDegradation(notifyCtx, &notifyservice.Notification{
			UserID:        result.UserID,
			Type:          notifyservice.TypeStatusChanged,
			AppointmentID: result.ID,
			Message:       fmt.Sprintf("Статус вашей записи изменён: %s", result.Status),
		})
	}()

	return &Response{
		ID:                   result.ID,
		UserID:               result.UserID,
		BarberID:             result.BarberID,
		Status:               string(result.Status),
		StartTime:            result.StartTime,
		DurationMinutes:      result.DurationMinutes,
		LoyaltyPointsAccrued: accrued,
	}, nil
}
