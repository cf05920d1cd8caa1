package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, cfg Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	require.NoError(t, Register(app, cfg))
	return app
}

func TestIndex(t *testing.T) {
	app := newApp(t, Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	assert.Contains(t, page, "Upload your cult of the lamb spouse!")
	// Rule table shared with the server-side schema.
	assert.Contains(t, page, `"field":"userName","min":2`)
	assert.Contains(t, page, "Username must be at least 2 characters")
	assert.Contains(t, page, `/static/app.js`)
}

func TestStaticAssets(t *testing.T) {
	t.Run("development disables caching", func(t *testing.T) {
		app := newApp(t, Config{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Cache-Control"))
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "readAsDataURL")
	})

	t.Run("production caches", func(t *testing.T) {
		app := newApp(t, Config{Production: true})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))
	})

	t.Run("missing asset", func(t *testing.T) {
		app := newApp(t, Config{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/nope.js", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
