package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gitforum/app-trending-api/internal/forum"
	"github.com/gitforum/app-trending-api/internal/store"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	client *forum.Client
	store  *store.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(client *forum.Client, st *store.Store) *HealthHandler {
	return &HealthHandler{client: client, store: st}
}

// Liveness godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness godoc
// @Summary Readiness probe
// @Description Checks the forum backend and the local snapshot store. The
// @Description service stays ready while at least one post source is healthy.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	checks := gin.H{}
	healthy := 0

	if err := h.client.Ping(ctx); err != nil {
		checks["forum"] = err.Error()
	} else {
		checks["forum"] = "ok"
		healthy++
	}

	if err := h.store.Ping(ctx); err != nil {
		checks["snapshot"] = err.Error()
	} else {
		checks["snapshot"] = "ok"
		healthy++
	}

	status := http.StatusOK
	if healthy == 0 {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": statusWord(status), "checks": checks})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ready"
	}
	return "unavailable"
}
