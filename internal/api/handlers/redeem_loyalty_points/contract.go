package redeem_loyalty_points

import (
	"context"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type LoyaltyService interface {
	Redeem(ctx context.Context, userID int64, actor domain.Actor) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
