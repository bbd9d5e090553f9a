package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

var landingTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// LandingHandler serves the static landing page at the service root.
func LandingHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := landingTemplate.Execute(w, nil); err != nil {
			logger.Error("failed to render landing page", "err", err)
		}
	}
}
