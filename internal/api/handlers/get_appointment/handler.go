package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	appointmentsService "github.com/agendasis/AgendaSIS-BookingService/internal/service/appointments"
)

const (
	msgUnauthorized        = "требуется аутентификация"
	msgAppointmentNotFound = "запись не найдена"
	msgPermissionDenied    = "нет прав на просмотр этой записи"
	msgMissingID           = "не указан идентификатор записи"
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

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	appt, err := h.service.GetByID(r.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrPermissionDenied):
			h.logger.Warn("GET /appointments/{id} - Permission denied: id=%s, user_id=%d", id, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(appt))
}
