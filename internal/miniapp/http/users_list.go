package http

import (
	"net/http"

	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

type UsersListHandler struct {
	ProfileService *service.ProfileService
}

func (h *UsersListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.ProfileService.List(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to list users",
		})
		return
	}

	profiles := make([]miniappsdk.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toProfile(u))
	}

	httpx.WriteJSON(w, http.StatusOK, profiles)
}
