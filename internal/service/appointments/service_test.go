package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	appointmentRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/appointment"
	"github.com/agendasis/AgendaSIS-BookingService/internal/integrations/notifyservice"
)

type mockRepo struct {
	appt      *domain.Appointment
	getErr    error
	cancelled bool
	cancelErr error
}

func (m *mockRepo) GetByID(_ context.Context, _ string) (*domain.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	appt := *m.appt
	return &appt, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return []*domain.Appointment{m.appt}, nil
}

func (m *mockRepo) GetByBarberWithFilter(_ context.Context, _ domain.BarberAppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{m.appt}, nil
}

func (m *mockRepo) Cancel(_ context.Context, _ string, _ string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelled = true
	return nil
}

type mockNotifyClient struct{}

func (mockNotifyClient) SendWithGracefulDegradation(context.Context, *notifyservice.Notification) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              "appt-1",
		EstablishmentID: 1,
		UserID:          7,
		BarberID:        2,
		ServiceID:       3,
		StartTime:       time.Date(2026, 3, 24, 14, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          status,
	}
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, mockNotifyClient{}, nopLogger{})
}

func TestGetByID_Permissions(t *testing.T) {
	repo := &mockRepo{appt: sampleAppointment(domain.StatusConfirmed)}
	svc := newTestService(repo)

	tests := []struct {
		name    string
		actor   domain.Actor
		allowed bool
	}{
		{"owner of the appointment", domain.Actor{UserID: 7, Role: domain.RoleClient}, true},
		{"another client", domain.Actor{UserID: 8, Role: domain.RoleClient}, false},
		{"barber sees any appointment", domain.Actor{UserID: 99, Role: domain.RoleBarber}, true},
		{"admin sees any appointment", domain.Actor{UserID: 99, Role: domain.RoleAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt, err := svc.GetByID(context.Background(), "appt-1", tt.actor)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "appt-1", appt.ID)
			} else {
				assert.ErrorIs(t, err, ErrPermissionDenied)
			}
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{getErr: appointmentRepo.ErrAppointmentNotFound})

	_, err := svc.GetByID(context.Background(), "missing", domain.Actor{UserID: 7, Role: domain.RoleClient})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByUser_ClientSeesOnlyOwn(t *testing.T) {
	svc := newTestService(&mockRepo{appt: sampleAppointment(domain.StatusConfirmed)})

	_, err := svc.GetByUser(context.Background(), 7, nil, domain.Actor{UserID: 8, Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	appts, err := svc.GetByUser(context.Background(), 7, nil, domain.Actor{UserID: 7, Role: domain.RoleClient})
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestGetByBarber_StaffOnly(t *testing.T) {
	svc := newTestService(&mockRepo{appt: sampleAppointment(domain.StatusConfirmed)})
	filter := domain.BarberAppointmentsFilter{BarberID: 2}

	_, err := svc.GetByBarber(context.Background(), filter, domain.Actor{UserID: 7, Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	appts, err := svc.GetByBarber(context.Background(), filter, domain.Actor{UserID: 2, Role: domain.RoleBarber})
	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestGetByBarber_RejectsInvalidBarberID(t *testing.T) {
	svc := newTestService(&mockRepo{appt: sampleAppointment(domain.StatusConfirmed)})

	_, err := svc.GetByBarber(context.Background(), domain.BarberAppointmentsFilter{BarberID: 0},
		domain.Actor{UserID: 99, Role: domain.RoleAdmin})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.AppointmentStatus
		actor   domain.Actor
		wantErr error
	}{
		{
			name:   "client cancels own pending appointment",
			status: domain.StatusPending,
			actor:  domain.Actor{UserID: 7, Role: domain.RoleClient},
		},
		{
			name:   "client cancels own confirmed appointment",
			status: domain.StatusConfirmed,
			actor:  domain.Actor{UserID: 7, Role: domain.RoleClient},
		},
		{
			name:    "client cannot cancel someone else's appointment",
			status:  domain.StatusPending,
			actor:   domain.Actor{UserID: 8, Role: domain.RoleClient},
			wantErr: ErrPermissionDenied,
		},
		{
			name:   "barber cancels appointment assigned to them",
			status: domain.StatusPending,
			actor:  domain.Actor{UserID: 2, Role: domain.RoleBarber},
		},
		{
			name:    "barber cannot cancel another barber's appointment",
			status:  domain.StatusPending,
			actor:   domain.Actor{UserID: 3, Role: domain.RoleBarber},
			wantErr: ErrPermissionDenied,
		},
		{
			name:   "owner cancels any appointment",
			status: domain.StatusPending,
			actor:  domain.Actor{UserID: 99, Role: domain.RoleOwner},
		},
		{
			name:    "completed appointment cannot be cancelled",
			status:  domain.StatusCompleted,
			actor:   domain.Actor{UserID: 7, Role: domain.RoleClient},
			wantErr: ErrCannotCancel,
		},
		{
			name:    "cancelled appointment cannot be cancelled again",
			status:  domain.StatusCancelled,
			actor:   domain.Actor{UserID: 7, Role: domain.RoleClient},
			wantErr: ErrCannotCancel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{appt: sampleAppointment(tt.status)}
			svc := newTestService(repo)

			err := svc.Cancel(context.Background(), "appt-1", "поменялись планы", tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, repo.cancelled)
			} else {
				require.NoError(t, err)
				assert.True(t, repo.cancelled)
			}
		})
	}
}

func TestCancel_RejectsTooLongReason(t *testing.T) {
	repo := &mockRepo{appt: sampleAppointment(domain.StatusPending)}
	svc := newTestService(repo)
	reason := strings.Repeat("a", domain.MaxCancellationReasonLength+1)

	err := svc.Cancel(context.Background(), "appt-1", reason, domain.Actor{UserID: 7, Role: domain.RoleClient})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(&mockRepo{getErr: appointmentRepo.ErrAppointmentNotFound})

	err := svc.Cancel(context.Background(), "missing", "", domain.Actor{UserID: 7, Role: domain.RoleClient})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
