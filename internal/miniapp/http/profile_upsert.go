package http

import (
	"encoding/json"
	"net/http"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
	"github.com/kompanion-app/kompanion/internal/miniapp/service"
	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
	"github.com/kompanion-app/kompanion/pkg/slogx"
)

type ProfileUpsertHandler struct {
	ProfileService *service.ProfileService
}

func (h *ProfileUpsertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req miniappsdk.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	// Validate required fields
	if req.TgID == 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "tg_id is required",
		})
		return
	}
	if req.FirstName == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, miniappsdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "first_name is required",
		})
		return
	}

	user, err := h.ProfileService.Upsert(ctx, domain.User{
		TgID:       req.TgID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Age:        req.Age,
		About:      req.About,
		Drinks:     req.Drinks,
		Topics:     req.Topics,
		Location:   req.Location,
	})
	if err != nil {
		log.Error("failed to upsert profile", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, miniappsdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to save profile",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(user))
}
