package get_loyalty_points

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	loyaltyService "github.com/agendasis/AgendaSIS-BookingService/internal/service/loyalty"
)

type LoyaltyService interface {
	GetSummary(ctx context.Context, userID int64, actor domain.Actor) (*loyaltyService.Summary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
