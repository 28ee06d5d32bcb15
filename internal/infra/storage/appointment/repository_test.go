package appointment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func appointmentRow(appt *domain.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows(appointmentColumns).AddRow(
		appt.ID,
		appt.EstablishmentID,
		appt.UserID,
		appt.BarberID,
		appt.ServiceID,
		appt.StartTime,
		appt.DurationMinutes,
		appt.Status,
		appt.ServiceName,
		appt.ServicePrice,
		appt.Notes,
		appt.CancellationReason,
		appt.CancelledAt,
		appt.CreatedAt,
		appt.UpdatedAt,
	)
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              "11111111-2222-3333-4444-555555555555",
		EstablishmentID: 1,
		UserID:          7,
		BarberID:        2,
		ServiceID:       3,
		StartTime:       time.Date(2026, 3, 24, 14, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          domain.StatusPending,
		ServiceName:     "Мужская стрижка",
		ServicePrice:    1500,
		CreatedAt:       time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))

	appt := sampleAppointment()
	appt.ID = "" // идентификатор генерируется репозиторием
	appt.CreatedAt = time.Time{}
	appt.UpdatedAt = time.Time{}

	created, err := repo.Create(context.Background(), appt)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.Equal(t, createdAt, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	want := sampleAppointment()
	mock.ExpectQuery("SELECT .+ FROM appointments").
		WithArgs(want.ID).
		WillReturnRows(appointmentRow(want))

	got, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.StartTime, got.StartTime)
	assert.Equal(t, want.Status, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM appointments").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing-id")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_GetByBarberWithFilter_ExcludesCancelledByDefault(t *testing.T) {
	repo, mock := newMockRepo(t)

	want := sampleAppointment()
	// Без IncludeInactive отменённые записи отфильтровываются в SQL
	mock.ExpectQuery("SELECT .+ FROM appointments WHERE barber_id = .+ AND status NOT IN").
		WillReturnRows(appointmentRow(want))

	got, err := repo.GetByBarberWithFilter(context.Background(), domain.BarberAppointmentsFilter{
		BarberID: want.BarberID,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByBarberWithFilter_DateWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	date := time.Date(2026, 3, 24, 14, 0, 0, 0, time.UTC)

	// Границы периода переводятся в полуинтервал [день, следующий день)
	mock.ExpectQuery("SELECT .+ FROM appointments WHERE barber_id = .+ AND start_time >= .+ AND start_time < .+").
		WithArgs(
			int64(2),
			time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
			domain.StatusCancelled,
		).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	got, err := repo.GetByBarberWithFilter(context.Background(), domain.BarberAppointmentsFilter{
		BarberID:  2,
		StartDate: &date,
		EndDate:   &date,
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE appointments SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "appt-1", domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE appointments SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo, _ := newMockRepo(t)

	err := repo.UpdateStatus(context.Background(), "appt-1", domain.AppointmentStatus("done"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE appointments SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), "appt-1", "клиент заболел")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE appointments SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), "missing", "")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
