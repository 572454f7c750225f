package controller

import (
	"fmt"
	"strconv"

	"ai-productivity-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Validation("Invalid request body")
	}
	return nil
}

// pathInt parses an integer path parameter. ok is false for negative values,
// which can never match a stored row.
func pathInt(ctx *fiber.Ctx, name string) (id uint, ok bool, err error) {
	value, err := strconv.Atoi(ctx.Params(name))
	if err != nil {
		return 0, false, apperror.Validation(fmt.Sprintf("%s must be an integer", name))
	}
	if value < 0 {
		return 0, false, nil
	}
	return uint(value), true, nil
}

// queryInt returns fallback when the parameter is absent.
func queryInt(ctx *fiber.Ctx, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation(fmt.Sprintf("%s must be an integer", name))
	}
	return value, nil
}
