package handler

import (
	"net/http"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
)

func RedirectSwagger(ctx *fiber.Ctx) error {
	return ctx.Redirect("/swagger/index.html", http.StatusPermanentRedirect)
}

// RegisterSwagger serves the generated API docs under /swagger.
func RegisterSwagger(app *fiber.App) {
	app.Get("/", RedirectSwagger)
	route := app.Group("/swagger")
	route.Get("*", swagger.HandlerDefault)
}
