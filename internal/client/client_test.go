package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spouseshowcase/internal/http/handler"
	"spouseshowcase/internal/model"
	"spouseshowcase/internal/repository/memory"
	"spouseshowcase/internal/schema"
	"spouseshowcase/internal/service"
)

var alice = schema.SpouseInput{
	UserName:   "Alice",
	SpouseName: "Dumbledore",
	ImageData:  "data:image/png;base64,iVBORw==",
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newServer runs the real handlers over the in-memory repository.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(discard)})
	svc := service.NewSpouseService(memory.NewSpouseMemory(), nil, discard)
	handler.RegisterRoutes(app, svc, handler.RouteConfig{Options: handler.Options{Development: true, Logger: discard}})

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	_, err := New("localhost:3000")
	assert.Error(t, err)

	c, err := New("http://localhost:3000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", c.base.String())
}

func TestClient_RoundTrip(t *testing.T) {
	srv := newServer(t)
	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	ctx := context.Background()

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	created, err := c.Create(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, &model.Spouse{ID: 1, UserName: "Alice", SpouseName: "Dumbledore", ImageData: alice.ImageData}, created)

	items, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Spouse{*created}, items)
}

func TestClient_CreateValidatesLocally(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Create(context.Background(), schema.SpouseInput{UserName: "A", SpouseName: "B", ImageData: "x"})

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("userName"))
	assert.Zero(t, hits)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "Failed to fetch spouses",
			"details": "Failed to fetch spouses from database",
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.List(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Failed to fetch spouses", apiErr.Message)
	assert.Equal(t, "500: Failed to fetch spouses (Failed to fetch spouses from database)", apiErr.Error())
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Create(context.Background(), alice)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "502: Bad Gateway", apiErr.Error())
}
