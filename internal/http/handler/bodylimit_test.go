package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"

	serviceMocks "spouseshowcase/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The body cap is enforced by the server while reading the request, before
// any handler runs, so it is only visible over a real connection.
func TestCreateSpouse_BodyTooLarge(t *testing.T) {
	app := fiber.New(fiber.Config{
		BodyLimit:             64,
		ErrorHandler:          ErrorHandler(discard),
		DisableStartupMessage: true,
	})
	mockSvc := new(serviceMocks.MockSpouseService)
	RegisterRoutes(app, mockSvc, RouteConfig{Options: devOpts()})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	payload := `{"userName":"Alice","spouseName":"Dumbledore","imageData":"data:image/png;base64,` +
		strings.Repeat("A", 200) + `"}`
	resp, err := http.Post("http://"+ln.Addr().String()+"/api/spouses", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, errorPayload{Message: "Request body too large"}, body)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
