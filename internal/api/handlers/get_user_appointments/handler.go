package get_user_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	appointmentsService "github.com/agendasis/AgendaSIS-BookingService/internal/service/appointments"
)

const (
	msgUnauthorized     = "требуется аутентификация"
	msgInvalidUserID    = "некорректный идентификатор пользователя"
	msgInvalidStatus    = "некорректный статус в фильтре"
	msgPermissionDenied = "нет прав на просмотр записей этого пользователя"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/appointments?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var status *domain.AppointmentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.AppointmentStatus(raw)
		if !s.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &s
	}

	appts, err := h.service.GetByUser(r.Context(), userID, status, actor)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrPermissionDenied):
			h.logger.Warn("GET /users/{userId}/appointments - Permission denied: user_id=%d, actor=%d",
				userID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("GET /users/{userId}/appointments - Failed to get appointments: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(userID, appts))
}
