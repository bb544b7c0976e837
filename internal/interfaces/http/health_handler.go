package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/review-insights-api/internal/application/dto"
)

// Health godoc
// @Summary  Liveness
// @Tags     health
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Router   /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "healthy"})
}
