package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthResponse is the /health body
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// handleHealth reports database health
func (h *Handler) handleHealth(c *fiber.Ctx) error {
	resp := HealthResponse{
		Status:   "ok",
		Database: "not configured",
		Time:     time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("Database health check failed", zap.Error(err))
			resp.Status = "unhealthy"
			resp.Database = "unhealthy"
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
		resp.Database = "healthy"
	}

	return c.JSON(resp)
}
