// Package web serves the browser client: a single page with the submission
// form and the gallery. The page receives the schema rule table inline so
// the form checks the same constraints the API enforces.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"spouseshowcase/internal/schema"
)

//go:embed templates/index.html static
var content embed.FS

// Config controls asset caching. Production sets a long max-age on /static.
type Config struct {
	Title      string
	Production bool
}

type pageData struct {
	Title string
	Rules []schema.Rule
	// APIPath is where the page lists and creates spouses.
	APIPath string
}

// Register mounts GET / and /static/* on app.
func Register(app *fiber.App, cfg Config) error {
	tmpl, err := template.ParseFS(content, "templates/index.html")
	if err != nil {
		return fmt.Errorf("parse index template: %w", err)
	}
	static, err := fs.Sub(content, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	if cfg.Title == "" {
		cfg.Title = "Upload your cult of the lamb spouse!"
	}

	// The page only depends on the rule table, so render it once.
	var page bytes.Buffer
	if err := tmpl.Execute(&page, pageData{Title: cfg.Title, Rules: schema.Rules(), APIPath: "/api/spouses"}); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	html := page.Bytes()

	maxAge := 0
	if cfg.Production {
		maxAge = 3600
	}
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(static),
		MaxAge: maxAge,
	}))
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(html)
	})
	return nil
}
