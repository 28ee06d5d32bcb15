package loyalty

import "context"

// LoyaltyRepository интерфейс репозитория баллов лояльности
type LoyaltyRepository interface {
	GetPoints(ctx context.Context, userID int64) (int, error)
	RedeemPoints(ctx context.Context, userID int64, points int) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
