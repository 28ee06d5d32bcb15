package create_appointment

import (
	"errors"
	"net/http"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	createAppointment "github.com/agendasis/AgendaSIS-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "некорректный формат времени начала, ожидается RFC3339"
	msgUnauthorized         = "требуется аутентификация"
	msgBarberNotFound       = "барбер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceNotAvailable  = "услуга недоступна в этом заведении"
	msgInvalidDuration      = "недопустимая длительность услуги"
	msgOutsideBusinessHours = "запись выходит за рабочие часы заведения"
	msgDayOff               = "заведение закрыто в выбранный день"
	msgInsufficientLeadTime = "слишком поздно для записи на это время"
	msgTooFarInAdvance      = "дата записи слишком далеко в будущем"
	msgSlotConflict         = "выбранное время уже занято"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.UserID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: user_id=%d, barber_id=%d", actor.UserID, req.BarberID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrConcurrentConflict):
			h.logger.Warn("POST /appointments - Concurrent booking conflict: user_id=%d, barber_id=%d", actor.UserID, req.BarberID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotAtEstablishment):
			h.logger.Warn("POST /appointments - Service not at establishment: barber_id=%d, service_id=%d",
				req.BarberID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidServiceDuration):
			h.logger.Warn("POST /appointments - Invalid service duration: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: user_id=%d, start=%s", actor.UserID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrDayOff):
			h.logger.Warn("POST /appointments - Day off: user_id=%d, start=%s", actor.UserID, req.StartTime)
			handlers.RespondBadRequest(w, msgDayOff)

		case errors.Is(err, createAppointment.ErrInsufficientLeadTime):
			h.logger.Warn("POST /appointments - Insufficient lead time: user_id=%d, start=%s", actor.UserID, req.StartTime)
			handlers.RespondBadRequest(w, msgInsufficientLeadTime)

		case errors.Is(err, createAppointment.ErrTooFarInAdvance):
			h.logger.Warn("POST /appointments - Too far in advance: user_id=%d, start=%s", actor.UserID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooFarInAdvance)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, barber_id=%d, error=%v",
				actor.UserID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, user_id=%d, barber_id=%d",
		result.ID, actor.UserID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
