package get_calendar

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
)

const (
	msgInvalidEstablishmentID = "некорректный идентификатор заведения"
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

// Handle GET /api/v1/establishments/{establishmentId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := strconv.ParseInt(mux.Vars(r)["establishmentId"], 10, 64)
	if err != nil || establishmentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	cal, err := h.service.Get(r.Context(), establishmentID)
	if err != nil {
		h.logger.Error("GET /establishments/{establishmentId}/calendar - Failed to get calendar: establishment_id=%d, error=%v",
			establishmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(cal))
}
