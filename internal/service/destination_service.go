package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/gateway"
	"github.com/spec-kit/travel-api/internal/repository"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// DestinationService manages the destination catalog, including bulk
// ingestion and synchronization from the ML service.
type DestinationService struct {
	destinations repository.DestinationRepository
	ml           gateway.MLClient
	logger       *zap.Logger
}

// NewDestinationService builds the service.
func NewDestinationService(destinations repository.DestinationRepository, ml gateway.MLClient, logger *zap.Logger) *DestinationService {
	return &DestinationService{destinations: destinations, ml: ml, logger: logger}
}

// List returns all destinations.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.List(ctx)
}

// Get returns one destination by id.
func (s *DestinationService) Get(ctx context.Context, id string) (*domain.Destination, error) {
	dest, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("destination")
		}
		return nil, err
	}
	return dest, nil
}

// ListByCategory returns destinations matching a category type. An empty
// result is a 404, matching the public surface.
func (s *DestinationService) ListByCategory(ctx context.Context, categoryType string) ([]domain.Destination, error) {
	dests, err := s.destinations.ListByCategory(ctx, categoryType)
	if err != nil {
		return nil, err
	}
	if len(dests) == 0 {
		return nil, apperrors.NewNotFound("destinations for this category")
	}
	return dests, nil
}

// Delete removes one destination.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.destinations.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("destination")
		}
		return err
	}
	return nil
}

// DeleteAll wipes the destination catalog.
func (s *DestinationService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.destinations.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.NewNotFound("destinations to delete")
	}
	return count, nil
}

// DestinationInput describes one destination to ingest.
type DestinationInput struct {
	Name         string
	CategoryType string
	City         string
	Location     string
	Description  string
	OpeningHours string
	ClosingHours string
}

// BulkAdd inserts destinations that are not already present, deduplicating
// by name against existing records. Returns the number inserted.
func (s *DestinationService) BulkAdd(ctx context.Context, inputs []DestinationInput) (int, error) {
	saved := 0
	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return saved, apperrors.NewValidationError("destination name is required")
		}
		exists, err := s.destinations.ExistsByName(ctx, name)
		if err != nil {
			return saved, err
		}
		if exists {
			continue
		}
		dest := &domain.Destination{
			Name:         name,
			CategoryType: input.CategoryType,
			City:         input.City,
			Location:     input.Location,
			Description:  input.Description,
			OpeningHours: input.OpeningHours,
			ClosingHours: input.ClosingHours,
		}
		if err := s.destinations.Create(ctx, dest); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				continue
			}
			return saved, err
		}
		saved++
	}
	return saved, nil
}

// Sync pulls the destination catalog from the ML service and inserts it
// non-strictly: individual duplicate or invalid records are skipped, not
// fatal to the batch.
func (s *DestinationService) Sync(ctx context.Context) (int, error) {
	records, err := s.ml.FetchDestinations(ctx)
	if err != nil {
		return 0, apperrors.NewUpstreamError("failed to sync destinations", err)
	}

	inserted := 0
	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			s.logger.Warn("skipping destination without name from ml service")
			continue
		}
		dest := &domain.Destination{
			Name:         name,
			CategoryType: record.Category,
			City:         record.City,
			Location:     record.Location,
			Description:  record.Description,
			OpeningHours: record.OpeningHours,
			ClosingHours: record.ClosingHours,
			Rating:       record.Rating,
		}
		if err := s.destinations.Create(ctx, dest); err != nil {
			if errors.Is(err, repository.ErrDuplicateName) {
				continue
			}
			s.logger.Warn("skipping destination", zap.String("name", name), zap.Error(err))
			continue
		}
		inserted++
	}
	return inserted, nil
}
