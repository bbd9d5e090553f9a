package http

import (
	"net/http"
	"strconv"

	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

type InvitesListHandler struct {
	InviteService *service.InviteService
}

func (h *InvitesListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tgID, err := strconv.ParseInt(r.URL.Query().Get("tg_id"), 10, 64)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "tg_id query parameter is required",
		})
		return
	}

	invites, err := h.InviteService.ListForUser(ctx, tgID)
	if err != nil {
		log.Error("failed to list invites", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list invites",
		})
		return
	}

	result := make([]miniappsdk.Invite, 0, len(invites))
	for _, inv := range invites {
		result = append(result, toInvite(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}
