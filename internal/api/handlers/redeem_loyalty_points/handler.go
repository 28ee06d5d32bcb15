package redeem_loyalty_points

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/api/middleware"
	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	loyaltyService "github.com/agendasis/AgendaSIS-BookingService/internal/service/loyalty"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidUserID      = "некорректный идентификатор пользователя"
	msgPermissionDenied   = "списать баллы можно только со своего счёта"
	msgInsufficientPoints = "недостаточно баллов для получения скидки"
)

// RedeemResponse HTTP response model
type RedeemResponse struct {
	UserID          int64 `json:"userId"`
	PointsRedeemed  int   `json:"pointsRedeemed"`
	PointsRemaining int   `json:"pointsRemaining"`
	DiscountPercent int   `json:"discountPercent"`
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

// Handle POST /api/v1/users/{userId}/loyalty/redeem
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

	remaining, err := h.service.Redeem(r.Context(), userID, actor)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyService.ErrPermissionDenied):
			h.logger.Warn("POST /users/{userId}/loyalty/redeem - Permission denied: user_id=%d, actor=%d",
				userID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, loyaltyService.ErrInsufficientPoints):
			h.logger.Warn("POST /users/{userId}/loyalty/redeem - Insufficient points: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientPoints)

		default:
			h.logger.Error("POST /users/{userId}/loyalty/redeem - Failed to redeem: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{userId}/loyalty/redeem - Points redeemed: user_id=%d, remaining=%d", userID, remaining)
	handlers.RespondJSON(w, http.StatusOK, &RedeemResponse{
		UserID:          userID,
		PointsRedeemed:  domain.LoyaltyPointsForDiscount,
		PointsRemaining: remaining,
		DiscountPercent: domain.LoyaltyDiscountPercent,
	})
}
