package v1

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	now := h.clock.Now().UTC()
	if err := h.health.Check(ctx); err != nil {
		respondJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Timestamp: now,
			Error:     err.Error(),
		})
		return
	}

	respondJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now,
	})
}
