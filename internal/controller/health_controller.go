package controller

import (
	"mindful-campus-be/internal/dto"
	"mindful-campus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	healthService service.IHealthService
}

func NewHealthController(healthService service.IHealthService) IHealthController {
	return &healthController{healthService: healthService}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/healthz", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	if err := c.healthService.Check(ctx.UserContext()); err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable"})
	}
	return ctx.JSON(dto.HealthResponse{Status: "ok"})
}
