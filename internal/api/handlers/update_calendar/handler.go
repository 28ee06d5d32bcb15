package update_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	calendarService "github.com/agendasis/AgendaSIS-BookingService/internal/service/calendar"
)

const (
	msgUnauthorized           = "требуется аутентификация"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidEstablishmentID = "некорректный идентификатор заведения"
	msgInvalidCalendar        = "некорректная конфигурация календаря"
	msgPermissionDenied       = "изменение календаря доступно только владельцу"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/establishments/{establishmentId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	establishmentID, err := strconv.ParseInt(mux.Vars(r)["establishmentId"], 10, 64)
	if err != nil || establishmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	var req UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /establishments/{establishmentId}/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.ToDomain(establishmentID), actor)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidCalendar):
			h.logger.Warn("PUT /establishments/{establishmentId}/calendar - Invalid calendar: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidCalendar)

		case errors.Is(err, calendarService.ErrPermissionDenied):
			h.logger.Warn("PUT /establishments/{establishmentId}/calendar - Permission denied: establishment_id=%d, user_id=%d",
				establishmentID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("PUT /establishments/{establishmentId}/calendar - Failed to update calendar: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /establishments/{establishmentId}/calendar - Calendar updated: establishment_id=%d, by user_id=%d",
		establishmentID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
