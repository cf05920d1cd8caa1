package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"spouseshowcase/internal/datauri"
	"spouseshowcase/internal/model"
	"spouseshowcase/internal/repository"
	"spouseshowcase/internal/schema"
	"spouseshowcase/internal/storage"
)

// SpouseService defines the use cases for spouse submissions.
type SpouseService interface {
	// List returns every submission.
	List(ctx context.Context) ([]model.Spouse, error)

	// Create validates in and persists it. Validation failures are returned
	// as *schema.ValidationError, persistence failures as *repository.StorageError.
	Create(ctx context.Context, in schema.SpouseInput) (*model.Spouse, error)
}

type spouseService struct {
	repo    repository.SpouseRepository
	archive storage.Storage
	logger  *slog.Logger
}

// NewSpouseService constructs a SpouseService. archive may be nil, in which
// case images are kept in the database only.
func NewSpouseService(repo repository.SpouseRepository, archive storage.Storage, logger *slog.Logger) SpouseService {
	return &spouseService{
		repo:    repo,
		archive: archive,
		logger:  logger.With(slog.String("component", "service.spouse")),
	}
}

func (s *spouseService) List(ctx context.Context) ([]model.Spouse, error) {
	return s.repo.List(ctx)
}

func (s *spouseService) Create(ctx context.Context, in schema.SpouseInput) (*model.Spouse, error) {
	if err := schema.Validate(in); err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("spouse.id", stored.ID))

	if s.archive != nil {
		if err := s.archiveImage(ctx, stored); err != nil {
			s.logger.WarnContext(ctx, "image archive failed",
				slog.Int64("spouse_id", stored.ID),
				slog.String("error", err.Error()),
			)
		}
	}
	return stored, nil
}

// archiveImage copies the decoded image to object storage under
// spouses/<id>-<uuid><ext>. Failures never reach the caller.
func (s *spouseService) archiveImage(ctx context.Context, sp *model.Spouse) error {
	mediaType, data, err := datauri.Decode(sp.ImageData)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	key := fmt.Sprintf("spouses/%d-%s%s", sp.ID, uuid.NewString(), datauri.Extension(data))
	_, err = s.archive.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: mediaType,
		Metadata:    map[string]string{"spouse-id": strconv.FormatInt(sp.ID, 10)},
	})
	if err != nil {
		return fmt.Errorf("upload to storage: %w", err)
	}
	return nil
}
