package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ApiKeyHeaderName = "X-Api-Key"

// New guards pprof, cache pruning and every POST with the api key. An
// empty key locks those routes entirely.
func New(apiKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !needsApiKey(ctx) {
			return ctx.Next()
		}

		if apiKey == "" || ctx.Get(ApiKeyHeaderName) != apiKey {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		return ctx.Next()
	}
}

func needsApiKey(ctx *fiber.Ctx) bool {
	return strings.Contains(ctx.Path(), "pprof") ||
		strings.HasPrefix(ctx.Path(), "/caches") ||
		ctx.Method() == fiber.MethodPost
}
