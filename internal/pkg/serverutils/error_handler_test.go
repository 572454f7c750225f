package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"ai-productivity-be/internal/pkg/apperror"
	"ai-productivity-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMiddlewareMapsKinds(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/validation", func(c *fiber.Ctx) error { return apperror.Validation("Text cannot be empty") })
	app.Get("/missing", func(c *fiber.Ctx) error { return apperror.NotFound("Generation not found") })
	app.Get("/oracle", func(c *fiber.Ctx) error {
		return apperror.Oracle("Error generating content", errors.New("empty response from AI model"))
	})
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("boom") })

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/validation", 400, "Text cannot be empty"},
		{"/missing", 404, "Generation not found"},
		{"/oracle", 500, "Error generating content: empty response from AI model"},
		{"/plain", 500, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			var body ErrorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.message, body.Detail)
		})
	}
}

func TestErrorHandlerMiddlewareUnknownRoute(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
