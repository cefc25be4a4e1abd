package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/events"
	"github.com/spec-kit/travel-api/internal/repository"
)

// RatingReconciler recomputes a destination's aggregate rating from its
// reviews. Recompute is idempotent and safe to re-run after any review
// mutation; ordering relative to the triggering mutation does not matter.
type RatingReconciler struct {
	reviews      repository.ReviewRepository
	destinations repository.DestinationRepository
	logger       *zap.Logger
}

// NewRatingReconciler builds the reconciler.
func NewRatingReconciler(reviews repository.ReviewRepository, destinations repository.DestinationRepository, logger *zap.Logger) *RatingReconciler {
	return &RatingReconciler{reviews: reviews, destinations: destinations, logger: logger}
}

// Recompute sets the destination's rating to the mean of its current
// reviews, or 0 when none remain. A missing destination is an
// inconsistency: it is logged and skipped, never surfaced to the caller,
// because the triggering review write already succeeded.
func (r *RatingReconciler) Recompute(ctx context.Context, destinationID string) error {
	ratings, err := r.reviews.ListRatings(ctx, destinationID)
	if err != nil {
		return err
	}

	rating := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, value := range ratings {
			sum += value
		}
		rating = float64(sum) / float64(len(ratings))
	}

	if err := r.destinations.UpdateRating(ctx, destinationID, rating); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			r.logger.Warn("destination missing during rating refresh",
				zap.String("destination_id", destinationID))
			return nil
		}
		return err
	}
	return nil
}

// HandleEvent adapts Recompute to the event dispatcher. Failures are logged;
// the rating refresh never fails the review mutation that triggered it.
func (r *RatingReconciler) HandleEvent(ctx context.Context, event events.Event) error {
	if err := r.Recompute(ctx, event.DestinationID); err != nil {
		r.logger.Error("rating refresh failed",
			zap.String("destination_id", event.DestinationID),
			zap.Error(err))
		return err
	}
	return nil
}
