package get_barber_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	appointmentsService "github.com/agendasis/AgendaSIS-BookingService/internal/service/appointments"
)

const (
	msgUnauthorized     = "требуется аутентификация"
	msgInvalidBarberID  = "некорректный идентификатор барбера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus    = "некорректный статус в фильтре"
	msgPermissionDenied = "расписание барбера доступно только персоналу"
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

// Handle GET /api/v1/barbers/{barberId}/appointments?from=YYYY-MM-DD&to=YYYY-MM-DD&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	filter := domain.BarberAppointmentsFilter{BarberID: barberID}
	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = &to
	}

	if raw := query.Get("status"); raw != "" {
		s := domain.AppointmentStatus(raw)
		if !s.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &s
	}

	filter.IncludeInactive = query.Get("includeInactive") == "true"

	appts, err := h.service.GetByBarber(r.Context(), filter, actor)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrPermissionDenied):
			h.logger.Warn("GET /barbers/{barberId}/appointments - Permission denied: barber_id=%d, actor=%d",
				barberID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("GET /barbers/{barberId}/appointments - Failed to get appointments: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(barberID, appts))
}
