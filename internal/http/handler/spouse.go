package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"spouseshowcase/internal/http/middleware"
	"spouseshowcase/internal/schema"
	"spouseshowcase/internal/service"
)

const (
	msgListFailed   = "Failed to fetch spouses"
	msgCreateFailed = "Failed to add spouse"
)

// Options controls how much the spouse handlers reveal about failures.
type Options struct {
	// Development adds the error text as "details" on 500 responses.
	Development bool
	Logger      *slog.Logger
}

type spouseHandler struct {
	svc    service.SpouseService
	dev    bool
	logger *slog.Logger
}

func newSpouseHandler(svc service.SpouseService, opts Options) *spouseHandler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &spouseHandler{
		svc:    svc,
		dev:    opts.Development,
		logger: logger.With(slog.String("component", "http.spouse")),
	}
}

// ListSpouses handles GET /api/spouses.
//
//	@Summary	List all spouses
//	@Tags		spouses
//	@Produce	json
//	@Success	200	{array}		model.Spouse
//	@Failure	500	{object}	errorPayload
//	@Router		/api/spouses [get]
func ListSpouses(svc service.SpouseService, opts Options) fiber.Handler {
	h := newSpouseHandler(svc, opts)
	return func(c *fiber.Ctx) error {
		items, err := h.svc.List(c.UserContext())
		if err != nil {
			return h.fail(c, err, "Error fetching spouses", msgListFailed)
		}
		return c.JSON(items)
	}
}

// CreateSpouse handles POST /api/spouses.
//
//	@Summary	Add a spouse
//	@Tags		spouses
//	@Accept		json
//	@Produce	json
//	@Param		spouse	body		schema.SpouseInput	true	"Submission"
//	@Success	201		{object}	model.Spouse
//	@Failure	400		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/api/spouses [post]
func CreateSpouse(svc service.SpouseService, opts Options) fiber.Handler {
	h := newSpouseHandler(svc, opts)
	return func(c *fiber.Ctx) error {
		in, err := schema.Parse(c.Body())
		if err != nil {
			return h.fail(c, err, "Error creating spouse", msgCreateFailed)
		}

		created, err := h.svc.Create(c.UserContext(), in)
		if err != nil {
			return h.fail(c, err, "Error creating spouse", msgCreateFailed)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// fail logs err and writes the response: 400 with the aggregate validation
// message, or 500 with publicMsg (plus the error text in development).
func (h *spouseHandler) fail(c *fiber.Ctx, err error, logMsg, publicMsg string) error {
	rid := middleware.RequestIDFromCtx(c)

	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		h.logger.WarnContext(c.UserContext(), "Validation error",
			slog.String("request_id", rid),
			slog.String("error", verr.Error()),
		)
		return writeError(c, fiber.StatusBadRequest, verr.Error(), "")
	}

	attrs := []any{
		slog.String("request_id", rid),
		slog.String("error", err.Error()),
	}
	if cause := errors.Unwrap(err); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	h.logger.ErrorContext(c.UserContext(), logMsg, attrs...)

	details := ""
	if h.dev {
		details = err.Error()
	}
	return writeError(c, fiber.StatusInternalServerError, publicMsg, details)
}
