package api

import (
	"net/http"
	"time"

	"github.com/ecosort/ecosort/internal/api/respond"
)

// ServiceHealth is the read side of the health aggregator.
type ServiceHealth interface {
	IsHealthy() bool
}

// HealthHandler handles GET /api/health.
type HealthHandler struct {
	svc ServiceHealth
}

// NewHealthHandler creates a health handler. A nil aggregator reports UP,
// which keeps test servers simple.
func NewHealthHandler(svc ServiceHealth) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	healthy := h.svc == nil || h.svc.IsHealthy()
	body := map[string]interface{}{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if healthy {
		respond.WriteJSON(w, http.StatusOK, body)
		return
	}
	body["status"] = "DOWN"
	respond.WriteJSON(w, http.StatusServiceUnavailable, body)
}
