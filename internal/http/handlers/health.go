package handlers

import (
	"net/http"
	"time"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": a.now().UTC().Format(time.RFC3339),
	})
}

// Healthz is the bare liveness probe.
func (a *App) Healthz(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
