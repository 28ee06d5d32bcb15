package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	calendarRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/calendar"
)

// Service сервис чтения и настройки календаря заведения
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// Get возвращает календарь заведения. Для заведения без настроенного
// календаря возвращает дефолтную политику (эндпоинт публичный, клиенты
// используют его для подсказок в форме записи).
func (s *Service) Get(ctx context.Context, establishmentID int64) (*domain.BusinessCalendar, error) {
	cal, err := s.calendarRepo.GetByEstablishment(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Info("Get: establishment=%d has no calendar, returning defaults", establishmentID)
			return domain.DefaultCalendar(establishmentID), nil
		}
		s.logger.Error("Get: failed to get calendar for establishment=%d: %v", establishmentID, err)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}

	return cal, nil
}

// Update создает или обновляет календарь заведения. Доступно только
// владельцу и администратору.
func (s *Service) Update(ctx context.Context, cal *domain.BusinessCalendar, actor domain.Actor) (*domain.BusinessCalendar, error) {
	if actor.Role != domain.RoleOwner && actor.Role != domain.RoleAdmin {
		s.logger.Warn("Update: user=%d (role=%s) has no right to update calendar of establishment=%d",
			actor.UserID, actor.Role, cal.EstablishmentID)
		return nil, ErrPermissionDenied
	}

	if err := cal.Validate(); err != nil {
		s.logger.Warn("Update: invalid calendar for establishment=%d: %v", cal.EstablishmentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	updated, err := s.calendarRepo.Upsert(ctx, cal)
	if err != nil {
		s.logger.Error("Update: failed to upsert calendar for establishment=%d: %v", cal.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to upsert calendar: %v", ErrInternal, err)
	}

	s.logger.Info("Update: calendar for establishment=%d updated by user=%d", cal.EstablishmentID, actor.UserID)

	return updated, nil
}
