package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/events"
	"github.com/spec-kit/travel-api/internal/repository/memory"
	"github.com/spec-kit/travel-api/internal/service"
)

func TestStartRatingWorker_SubscribesAllReviewEvents(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	dests := memory.NewDestinationRepository()
	reviews := memory.NewReviewRepository(users)
	dispatcher := events.NewInMemoryDispatcher()

	dest := &domain.Destination{Name: "Bromo"}
	require.NoError(t, dests.Create(ctx, dest))

	reconciler := service.NewRatingReconciler(reviews, dests, zap.NewNop())
	StartRatingWorker(dispatcher, reconciler)

	review := &domain.Review{UserID: "u1", DestinationID: dest.ID, Rating: 4, Comment: "x"}
	require.NoError(t, reviews.Create(ctx, review))

	for _, eventType := range []events.EventType{
		events.EventReviewCreated,
		events.EventReviewUpdated,
		events.EventReviewDeleted,
	} {
		require.NoError(t, dests.UpdateRating(ctx, dest.ID, 0))
		require.NoError(t, dispatcher.Publish(ctx, events.Event{Type: eventType, DestinationID: dest.ID}))

		refreshed, err := dests.GetByID(ctx, dest.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, refreshed.Rating, 1e-9)
	}
}

func TestStartRatingWorker_NilReconciler(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	StartRatingWorker(dispatcher, nil)
	assert.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventReviewCreated}))
}
