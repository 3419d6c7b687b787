package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startTime: time.Now()}
}

// Health reports process liveness and uptime. The catalog API is an
// external dependency and deliberately not probed here: its failures are
// surfaced inline on the pages that need it.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
