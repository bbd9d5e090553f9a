package http

import (
	"net/http"
	"strconv"

	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

type ChatHistoryHandler struct {
	MessageService *service.MessageService
}

func (h *ChatHistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user1, err1 := strconv.ParseInt(r.URL.Query().Get("user1"), 10, 64)
	user2, err2 := strconv.ParseInt(r.URL.Query().Get("user2"), 10, 64)
	if err1 != nil || err2 != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "user1 and user2 query parameters are required",
		})
		return
	}

	messages, err := h.MessageService.History(ctx, user1, user2)
	if err != nil {
		log.Error("failed to fetch chat history", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to fetch chat history",
		})
		return
	}

	result := make([]miniappsdk.Message, 0, len(messages))
	for _, m := range messages {
		result = append(result, toMessage(m))
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}
