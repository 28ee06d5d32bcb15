package loyalty

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendasis/AgendaSIS-BookingService/pkg/dbmetrics"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий счетов лояльности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория лояльности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPoints возвращает текущий баланс баллов пользователя.
// Для пользователя без счёта возвращает 0 без ошибки.
func (r *Repository) GetPoints(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("points").
		From("loyalty_accounts").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetPoints - build select query: %v", ErrBuildQuery, err)
	}

	var points int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&points)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetPoints - scan points: %v", ErrScanRow, err)
	}

	return points, nil
}

// AddPoints начисляет баллы пользователю, создавая счёт при первом начислении
func (r *Repository) AddPoints(ctx context.Context, userID int64, points int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_accounts").
		Columns("user_id", "points").
		Values(userID, points).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			points = loyalty_accounts.points + EXCLUDED.points,
			updated_at = NOW()
		RETURNING points`).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AddPoints - build upsert query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: AddPoints - execute upsert: %v", ErrExecQuery, err)
	}

	return total, nil
}

// RedeemPoints списывает баллы со счёта пользователя.
// Условие points >= нужного количества входит в сам UPDATE, поэтому
// списание атомарно: конкурентное списание не уведет баланс в минус.
func (r *Repository) RedeemPoints(ctx context.Context, userID int64, points int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("loyalty_accounts").
		Set("points", squirrel.Expr("points - ?", points)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"points": points}).
		Suffix("RETURNING points").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: RedeemPoints - build update query: %v", ErrBuildQuery, err)
	}

	var remaining int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&remaining)
	if err == sql.ErrNoRows {
		return 0, ErrInsufficientPoints
	}
	if err != nil {
		return 0, fmt.Errorf("%w: RedeemPoints - execute update: %v", ErrExecQuery, err)
	}

	return remaining, nil
}
