package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

// NewHealthHandler checks the database and, when cache is non-nil, Redis.
// A cache outage degrades the service but does not make it unhealthy.
func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	resp := gin.H{"status": "healthy", "database": "connected"}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			resp["cache"] = "disconnected"
			resp["status"] = "degraded"
		} else {
			resp["cache"] = "connected"
		}
	}

	if err := h.db.Ping(ctx); err != nil {
		resp["database"] = "disconnected"
		resp["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
