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

type MessageSendHandler struct {
	MessageService *service.MessageService
}

func (h *MessageSendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req miniappsdk.MessageRequest
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
	if req.Text == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "text is required",
		})
		return
	}

	message, err := h.MessageService.Send(ctx, req.FromTgID, req.ToTgID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, miniappsdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Sender profile not found",
			})
		case errors.Is(err, service.ErrChatNotAllowed):
			httpx.WriteJSON(w, http.StatusForbidden, miniappsdk.ErrorResponse{
				Error:            "forbidden",
				ErrorDescription: "Chat requires mutual invite or active subscription",
			})
		default:
			log.Error("failed to send message", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to send message",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMessage(message))
}
