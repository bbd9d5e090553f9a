package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

type SubscribeHandler struct {
	BalanceService *service.BalanceService
}

func (h *SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req miniappsdk.SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.TgID == 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "tg_id is required",
		})
		return
	}

	// Activation is the default when the flag is omitted.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user, err := h.BalanceService.SetSubscription(ctx, req.TgID, active)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, miniappsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "User not found",
			})
		default:
			log.Error("failed to update subscription", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to update subscription",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, miniappsdk.BalanceResponse{
		TgID:       user.TgID,
		Balance:    user.Balance,
		Subscribed: user.Subscribed,
	})
}
