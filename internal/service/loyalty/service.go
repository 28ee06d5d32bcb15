package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	loyaltyRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/loyalty"
)

// Summary сводка программы лояльности для пользователя
type Summary struct {
	Points                int // Текущий баланс
	AvailableDiscounts    int // Сколько скидок можно забрать прямо сейчас
	PointsForNextDiscount int // Сколько баллов осталось до следующей скидки
	DiscountPercent       int // Размер скидки в процентах
}

// Service сервис программы лояльности
type Service struct {
	loyaltyRepo LoyaltyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса лояльности
func NewService(loyaltyRepo LoyaltyRepository, logger Logger) *Service {
	return &Service{
		loyaltyRepo: loyaltyRepo,
		logger:      logger,
	}
}

// GetSummary возвращает сводку баллов пользователя. Клиент видит только
// свой счёт, персонал - любой.
func (s *Service) GetSummary(ctx context.Context, userID int64, actor domain.Actor) (*Summary, error) {
	if !actor.Role.IsStaff() && actor.UserID != userID {
		s.logger.Warn("GetSummary: user=%d (role=%s) requested points of user=%d",
			actor.UserID, actor.Role, userID)
		return nil, ErrPermissionDenied
	}

	points, err := s.loyaltyRepo.GetPoints(ctx, userID)
	if err != nil {
		s.logger.Error("GetSummary: failed to get points for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get points: %v", ErrInternal, err)
	}

	return &Summary{
		Points:                points,
		AvailableDiscounts:    points / domain.LoyaltyPointsForDiscount,
		PointsForNextDiscount: domain.LoyaltyPointsForDiscount - (points % domain.LoyaltyPointsForDiscount),
		DiscountPercent:       domain.LoyaltyDiscountPercent,
	}, nil
}

// Redeem списывает баллы за одну скидку и возвращает остаток.
// Списание атомарно на уровне репозитория: конкурентный redeem не уведет
// баланс в минус.
func (s *Service) Redeem(ctx context.Context, userID int64, actor domain.Actor) (int, error) {
	if actor.UserID != userID {
		s.logger.Warn("Redeem: user=%d (role=%s) tried to redeem points of user=%d",
			actor.UserID, actor.Role, userID)
		return 0, ErrPermissionDenied
	}

	remaining, err := s.loyaltyRepo.RedeemPoints(ctx, userID, domain.LoyaltyPointsForDiscount)
	if err != nil {
		if errors.Is(err, loyaltyRepo.ErrInsufficientPoints) {
			s.logger.Warn("Redeem: user=%d has insufficient points", userID)
			return 0, ErrInsufficientPoints
		}
		s.logger.Error("Redeem: failed to redeem points for user=%d: %v", userID, err)
		return 0, fmt.Errorf("%w: failed to redeem points: %v", ErrInternal, err)
	}

	s.logger.Info("Redeem: user=%d redeemed %d points, %d remaining",
		userID, domain.LoyaltyPointsForDiscount, remaining)

	return remaining, nil
}
