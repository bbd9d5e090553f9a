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

type InviteCreateHandler struct {
	InviteService *service.InviteService
}

func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req miniappsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	// Validate required fields
	if req.FromTgID == 0 || req.ToTgID == 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "from_tg_id and to_tg_id are required",
		})
		return
	}

	invite, err := h.InviteService.Create(ctx, req.FromTgID, req.ToTgID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfInvite):
			httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Cannot invite yourself",
			})
		default:
			log.Error("failed to create invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to create invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvite(invite))
}
