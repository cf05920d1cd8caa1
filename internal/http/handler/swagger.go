package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	// Registers the generated OpenAPI document with swag.
	_ "spouseshowcase/docs"
)

// RegisterSwagger serves Swagger UI and doc.json under /swagger/*.
// The document leaves host and schemes empty, so the UI targets the origin
// it was loaded from.
func RegisterSwagger(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
