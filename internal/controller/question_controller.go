package controller

import (
	"ai-productivity-be/internal/dto"
	"ai-productivity-be/internal/pkg/serverutils"
	"ai-productivity-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	r.Post("/ask", c.Ask)
	r.Get("/questions/:summary_id", c.History)
}

func (c *questionController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ask(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *questionController) History(ctx *fiber.Ctx) error {
	summaryId, ok, err := pathInt(ctx, "summary_id")
	if err != nil {
		return err
	}
	if !ok {
		return ctx.JSON([]*dto.QuestionHistoryResponse{})
	}

	res, err := c.service.History(ctx.UserContext(), summaryId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
