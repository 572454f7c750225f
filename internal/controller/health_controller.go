package controller

import (
	"ai-productivity-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Check)
}

// Check touches nothing; it answers as long as the process serves HTTP.
func (c *healthController) Check(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "healthy"})
}
