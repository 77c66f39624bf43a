package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes mounts the Slack endpoints and the health probe.
func SetupRoutes(router chi.Router, slackHandler *SlackHandler) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Route("/slack", func(r chi.Router) {
		r.Post("/commands", slackHandler.HandleSlashCommand)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
}
