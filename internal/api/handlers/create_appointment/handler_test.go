package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	createAppointment "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/create_appointment"
)

type mockUseCase struct {
	gotReq *createAppointment.Request
	resp   *createAppointment.Response
	err    error
}

func (m *mockUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	m.gotReq = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateAppointmentUseCase, body interface{}, actor *domain.Actor) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(raw))
	if actor != nil {
		req = req.WithContext(middleware.ContextWithActor(req.Context(), *actor))
	}

	recorder := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(recorder, req)
	return recorder
}

func client() *domain.Actor {
	return &domain.Actor{UserID: 7, Role: domain.RoleClient}
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2026, 3, 24, 14, 30, 0, 0, time.UTC)
	uc := &mockUseCase{
		resp: &createAppointment.Response{
			ID:              "new-appt-id",
			EstablishmentID: 1,
			UserID:          7,
			BarberID:        2,
			ServiceID:       3,
			StartTime:       start,
			EndTime:         start.Add(30 * time.Minute),
			DurationMinutes: 30,
			Status:          string(domain.StatusPending),
			ServiceName:     "Мужская стрижка",
			ServicePrice:    1500,
		},
	}

	recorder := doRequest(t, uc, map[string]interface{}{
		"barberId":  2,
		"serviceId": 3,
		"startTime": start.Format(time.RFC3339),
	}, client())

	assert.Equal(t, http.StatusCreated, recorder.Code)

	// userID берётся из токена, а не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.UserID)
	assert.Equal(t, start, uc.gotReq.StartTime)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "new-appt-id", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, start.Add(30*time.Minute).Format(time.RFC3339), resp.EndTime)
}

func TestHandle_RequiresAuthentication(t *testing.T) {
	recorder := doRequest(t, &mockUseCase{}, map[string]interface{}{
		"barberId": 2, "serviceId": 3, "startTime": "2026-03-24T14:30:00Z",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandle_InvalidStartTime(t *testing.T) {
	recorder := doRequest(t, &mockUseCase{}, map[string]interface{}{
		"barberId": 2, "serviceId": 3, "startTime": "24.03.2026 14:30",
	}, client())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	recorder := doRequest(t, &mockUseCase{}, map[string]interface{}{
		"barberId": 2, "serviceId": 3, "startTime": "2026-03-24T14:30:00Z", "userId": 99,
	}, client())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"slot conflict", createAppointment.ErrSlotConflict, http.StatusConflict},
		{"concurrent conflict", createAppointment.ErrConcurrentConflict, http.StatusConflict},
		{"conflict error with id", &createAppointment.ConflictError{AppointmentID: "x"}, http.StatusConflict},
		{"barber not found", createAppointment.ErrBarberNotFound, http.StatusNotFound},
		{"service not found", createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{"service at other establishment", createAppointment.ErrServiceNotAtEstablishment, http.StatusBadRequest},
		{"outside business hours", createAppointment.ErrOutsideBusinessHours, http.StatusBadRequest},
		{"day off", createAppointment.ErrDayOff, http.StatusBadRequest},
		{"insufficient lead time", createAppointment.ErrInsufficientLeadTime, http.StatusBadRequest},
		{"too far in advance", createAppointment.ErrTooFarInAdvance, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.useCaseErr}

			recorder := doRequest(t, uc, map[string]interface{}{
				"barberId": 2, "serviceId": 3, "startTime": "2026-03-24T14:30:00Z",
			}, client())

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}
