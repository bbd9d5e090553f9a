package http

import (
	"net/http"

	"github.com/kompanion-app/kompanion/pkg/httpx"
	"github.com/kompanion-app/kompanion/pkg/miniappsdk"
)

// HealthHandler is the liveness probe. It answers as long as the process is
// serving requests and reports nothing about dependencies.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, miniappsdk.HealthResponse{
			Status: "ok",
		})
	}
}
