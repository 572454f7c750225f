package controller

import (
	"ai-productivity-be/internal/dto"
	"ai-productivity-be/internal/pkg/apperror"
	"ai-productivity-be/internal/pkg/serverutils"
	"ai-productivity-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DeleteAll(ctx *fiber.Ctx) error
}

type generationController struct {
	service service.IGenerationService
}

func NewGenerationController(service service.IGenerationService) IGenerationController {
	return &generationController{service: service}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate", c.Generate)

	h := r.Group("/history")
	h.Get("", c.History)
	h.Delete("", c.DeleteAll)
	h.Delete("/:generation_id", c.Delete)
}

func (c *generationController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateContentRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *generationController) History(ctx *fiber.Ctx) error {
	skip, err := queryInt(ctx, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(ctx, "limit", service.DefaultHistoryLimit)
	if err != nil {
		return err
	}

	res, err := c.service.History(ctx.UserContext(), dto.HistoryQuery{Skip: skip, Limit: &limit})
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *generationController) Delete(ctx *fiber.Ctx) error {
	id, ok, err := pathInt(ctx, "generation_id")
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Generation not found")
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse{Message: "Generation deleted successfully"})
}

func (c *generationController) DeleteAll(ctx *fiber.Ctx) error {
	if err := c.service.DeleteAll(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse{Message: "All history deleted successfully"})
}
