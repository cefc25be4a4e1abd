package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/events"
	"github.com/spec-kit/travel-api/internal/repository"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// ReviewService manages reviews. Every mutation publishes an event so the
// rating reconciler can refresh the owning destination's aggregate; the
// review write is the primary operation and the refresh is best-effort.
type ReviewService struct {
	reviews      repository.ReviewRepository
	destinations repository.DestinationRepository
	dispatcher   events.Dispatcher
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository, destinations repository.DestinationRepository, dispatcher events.Dispatcher) *ReviewService {
	return &ReviewService{reviews: reviews, destinations: destinations, dispatcher: dispatcher}
}

// ReviewInput describes a review creation payload.
type ReviewInput struct {
	UserID        string
	DestinationID string
	Rating        int
	Comment       string
}

// Add creates a review after verifying the destination exists.
func (s *ReviewService) Add(ctx context.Context, input ReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be an integer between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, apperrors.NewValidationError("comment is required")
	}

	if _, err := s.destinations.GetByID(ctx, input.DestinationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("destination")
		}
		return nil, err
	}

	review := &domain.Review{
		UserID:        input.UserID,
		DestinationID: input.DestinationID,
		Rating:        input.Rating,
		Comment:       input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventReviewCreated, review)
	return review, nil
}

// ListByDestination returns all reviews for a destination with reviewer
// usernames joined in.
func (s *ReviewService) ListByDestination(ctx context.Context, destinationID string) ([]domain.ReviewWithAuthor, error) {
	return s.reviews.ListByDestination(ctx, destinationID)
}

// Update changes a review's rating and comment.
func (s *ReviewService) Update(ctx context.Context, reviewID string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be an integer between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidationError("comment is required")
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("review")
		}
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviews.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("review")
		}
		return nil, err
	}

	s.publish(ctx, events.EventReviewUpdated, review)
	return review, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("review")
		}
		return err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("review")
		}
		return err
	}

	s.publish(ctx, events.EventReviewDeleted, review)
	return nil
}

func (s *ReviewService) publish(ctx context.Context, eventType events.EventType, review *domain.Review) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		ReviewID:      review.ID,
		DestinationID: review.DestinationID,
		Timestamp:     time.Now(),
	})
}
