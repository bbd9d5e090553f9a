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

type BalanceAddHandler struct {
	BalanceService *service.BalanceService
}

func (h *BalanceAddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req miniappsdk.BalanceChangeRequest
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

	user, err := h.BalanceService.Add(ctx, req.TgID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, miniappsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "User not found",
			})
		default:
			log.Error("failed to change balance", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to change balance",
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
