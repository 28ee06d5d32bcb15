package update_appointment_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	appointmentRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/appointment"
	"github.com/agendasis/AgendaSIS-BookingService/internal/integrations/notifyservice"
)

type mockAppointmentRepo struct {
	appt          *domain.Appointment
	getErr        error
	updatedStatus *domain.AppointmentStatus
	updateErr     error
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ string) (*domain.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	appt := *m.appt
	return &appt, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, _ string, status domain.AppointmentStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedStatus = &status
	return nil
}

type mockLoyaltyRepo struct {
	addedUserID int64
	addedPoints int
	total       int
	err         error
}

func (m *mockLoyaltyRepo) AddPoints(_ context.Context, userID int64, points int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.addedUserID = userID
	m.addedPoints = points
	m.total += points
	return m.total, nil
}

type mockNotifyClient struct{}

func (mockNotifyClient) SendWithGracefulDegradation(context.Context, *notifyservice.Notification) error {
	return nil
}

type directTxManager struct{}

func (directTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              "appt-1",
		UserID:          7,
		BarberID:        2,
		StartTime:       time.Date(2026, 3, 24, 14, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          status,
	}
}

func TestExecute_ConfirmPending(t *testing.T) {
	repo := &mockAppointmentRepo{appt: testAppointment(domain.StatusPending)}
	loyalty := &mockLoyaltyRepo{}
	uc := NewUseCase(repo, loyalty, mockNotifyClient{}, directTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NextStatus:    string(domain.StatusConfirmed),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 0, resp.LoyaltyPointsAccrued)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	// Баллы за подтверждение не начисляются
	assert.Equal(t, 0, loyalty.addedPoints)
}

func TestExecute_CompleteAccruesLoyaltyPoints(t *testing.T) {
	repo := &mockAppointmentRepo{appt: testAppointment(domain.StatusConfirmed)}
	loyalty := &mockLoyaltyRepo{}
	uc := NewUseCase(repo, loyalty, mockNotifyClient{}, directTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NextStatus:    string(domain.StatusCompleted),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.LoyaltyPointsPerAppointment, resp.LoyaltyPointsAccrued)
	assert.Equal(t, int64(7), loyalty.addedUserID)
	assert.Equal(t, domain.LoyaltyPointsPerAppointment, loyalty.addedPoints)
}

func TestExecute_InvalidTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   domain.AppointmentStatus
	}{
		{"pending cannot complete directly", domain.StatusPending, domain.StatusCompleted},
		{"completed is terminal", domain.StatusCompleted, domain.StatusCancelled},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAppointmentRepo{appt: testAppointment(tt.from)}
			uc := NewUseCase(repo, &mockLoyaltyRepo{}, mockNotifyClient{}, directTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				AppointmentID: "appt-1",
				NextStatus:    string(tt.to),
			})

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestExecute_UnknownStatus(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockLoyaltyRepo{}, mockNotifyClient{}, directTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "appt-1",
		NextStatus:    "done",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	repo := &mockAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	uc := NewUseCase(repo, &mockLoyaltyRepo{}, mockNotifyClient{}, directTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: "missing",
		NextStatus:    string(domain.StatusConfirmed),
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
