package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/dbmetrics"
	"github.com/agendasis/AgendaSIS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с календарями заведений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEstablishment получает календарь заведения.
// Возвращает ErrCalendarNotFound, если заведение не настраивало календарь;
// вызывающая сторона в этом случае использует дефолтную политику.
func (r *Repository) GetByEstablishment(ctx context.Context, establishmentID int64) (*domain.BusinessCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"establishment_id",
		"opening_hour",
		"closing_hour",
		"days_off",
		"min_lead_time_minutes",
		"max_advance_days",
		"created_at",
		"updated_at",
	).
		From("business_calendars").
		Where(squirrel.Eq{"establishment_id": establishmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEstablishment - build select query: %v", ErrBuildQuery, err)
	}

	var cal domain.BusinessCalendar
	var daysOff pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cal.EstablishmentID,
		&cal.OpeningHour,
		&cal.ClosingHour,
		&daysOff,
		&cal.MinLeadTimeMinutes,
		&cal.MaxAdvanceDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEstablishment - scan calendar: %v", ErrScanRow, err)
	}

	cal.DaysOff = make([]time.Weekday, len(daysOff))
	for i, d := range daysOff {
		cal.DaysOff[i] = time.Weekday(d)
	}
	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return &cal, nil
}

// Upsert создает или обновляет календарь заведения
func (r *Repository) Upsert(ctx context.Context, cal *domain.BusinessCalendar) (*domain.BusinessCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	daysOff := make(pq.Int64Array, len(cal.DaysOff))
	for i, d := range cal.DaysOff {
		daysOff[i] = int64(d)
	}

	query, args, err := psqlbuilder.Insert("business_calendars").
		Columns(
			"establishment_id",
			"opening_hour",
			"closing_hour",
			"days_off",
			"min_lead_time_minutes",
			"max_advance_days",
		).
		Values(
			cal.EstablishmentID,
			cal.OpeningHour,
			cal.ClosingHour,
			daysOff,
			cal.MinLeadTimeMinutes,
			cal.MaxAdvanceDays,
		).
		Suffix(`ON CONFLICT (establishment_id) DO UPDATE SET
			opening_hour = EXCLUDED.opening_hour,
			closing_hour = EXCLUDED.closing_hour,
			days_off = EXCLUDED.days_off,
			min_lead_time_minutes = EXCLUDED.min_lead_time_minutes,
			max_advance_days = EXCLUDED.max_advance_days,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}
