package get_loyalty_points

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	loyaltyService "github.com/agendasis/AgendaSIS-BookingService/internal/service/loyalty"
)

const (
	msgUnauthorized     = "требуется аутентификация"
	msgInvalidUserID    = "некорректный идентификатор пользователя"
	msgPermissionDenied = "нет прав на просмотр баллов этого пользователя"
)

// LoyaltySummaryResponse HTTP response model
type LoyaltySummaryResponse struct {
	UserID                int64 `json:"userId"`
	Points                int   `json:"points"`
	AvailableDiscounts    int   `json:"availableDiscounts"`
	PointsForNextDiscount int   `json:"pointsForNextDiscount"`
	DiscountPercent       int   `json:"discountPercent"`
}

type Handler struct {
	service LoyaltyService
	logger  Logger
}

func NewHandler(service LoyaltyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/loyalty
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

	summary, err := h.service.GetSummary(r.Context(), userID, actor)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyService.ErrPermissionDenied):
			h.logger.Warn("GET /users/{userId}/loyalty - Permission denied: user_id=%d, actor=%d",
				userID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("GET /users/{userId}/loyalty - Failed to get summary: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &LoyaltySummaryResponse{
		UserID:                userID,
		Points:                summary.Points,
		AvailableDiscounts:    summary.AvailableDiscounts,
		PointsForNextDiscount: summary.PointsForNextDiscount,
		DiscountPercent:       summary.DiscountPercent,
	})
}
