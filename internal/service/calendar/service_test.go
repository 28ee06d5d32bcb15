package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	calendarRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/calendar"
)

type mockCalendarRepo struct {
	calendar *domain.BusinessCalendar
	getErr   error
	upserted *domain.BusinessCalendar
}

func (m *mockCalendarRepo) GetByEstablishment(_ context.Context, _ int64) (*domain.BusinessCalendar, error) {
	return m.calendar, m.getErr
}

func (m *mockCalendarRepo) Upsert(_ context.Context, cal *domain.BusinessCalendar) (*domain.BusinessCalendar, error) {
	m.upserted = cal
	return cal, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func owner() domain.Actor {
	return domain.Actor{UserID: 10, Role: domain.RoleOwner}
}

func TestGet_ReturnsStoredCalendar(t *testing.T) {
	stored := &domain.BusinessCalendar{
		EstablishmentID:    1,
		OpeningHour:        9,
		ClosingHour:        18,
		DaysOff:            []time.Weekday{time.Sunday, time.Monday},
		MinLeadTimeMinutes: 120,
		MaxAdvanceDays:     14,
	}

	svc := NewService(&mockCalendarRepo{calendar: stored}, nopLogger{})

	got, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&mockCalendarRepo{getErr: calendarRepo.ErrCalendarNotFound}, nopLogger{})

	got, err := svc.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.EstablishmentID)
	assert.Equal(t, domain.DefaultOpeningHour, got.OpeningHour)
	assert.Equal(t, domain.DefaultClosingHour, got.ClosingHour)
	assert.Equal(t, []time.Weekday{time.Sunday}, got.DaysOff)
}

func TestUpdate_RequiresOwnerOrAdmin(t *testing.T) {
	repo := &mockCalendarRepo{}
	svc := NewService(repo, nopLogger{})

	cal := domain.DefaultCalendar(1)

	for _, role := range []domain.Role{domain.RoleClient, domain.RoleBarber} {
		_, err := svc.Update(context.Background(), cal, domain.Actor{UserID: 5, Role: role})
		assert.ErrorIs(t, err, ErrPermissionDenied, "role %s must be rejected", role)
	}
	assert.Nil(t, repo.upserted)

	_, err := svc.Update(context.Background(), cal, owner())
	assert.NoError(t, err)
	assert.NotNil(t, repo.upserted)
}

func TestUpdate_RejectsInvalidCalendar(t *testing.T) {
	svc := NewService(&mockCalendarRepo{}, nopLogger{})

	tests := []struct {
		name string
		cal  *domain.BusinessCalendar
	}{
		{
			name: "opening after closing",
			cal: &domain.BusinessCalendar{
				EstablishmentID: 1, OpeningHour: 20, ClosingHour: 8,
				MinLeadTimeMinutes: 60, MaxAdvanceDays: 30,
			},
		},
		{
			name: "opening out of range",
			cal: &domain.BusinessCalendar{
				EstablishmentID: 1, OpeningHour: -1, ClosingHour: 20,
				MinLeadTimeMinutes: 60, MaxAdvanceDays: 30,
			},
		},
		{
			name: "closing out of range",
			cal: &domain.BusinessCalendar{
				EstablishmentID: 1, OpeningHour: 8, ClosingHour: 24,
				MinLeadTimeMinutes: 60, MaxAdvanceDays: 30,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.cal, owner())
			assert.ErrorIs(t, err, ErrInvalidCalendar)
		})
	}
}
