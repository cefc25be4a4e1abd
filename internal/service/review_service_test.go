package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/events"
	"github.com/spec-kit/travel-api/internal/repository/memory"
)

type reviewFixture struct {
	reviews      *ReviewService
	reconciler   *RatingReconciler
	destinations *memory.DestinationRepository
	destination  *domain.Destination
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	users := memory.NewUserRepository()
	dests := memory.NewDestinationRepository()
	reviews := memory.NewReviewRepository(users)
	dispatcher := events.NewInMemoryDispatcher()

	reconciler := NewRatingReconciler(reviews, dests, zap.NewNop())
	for _, eventType := range []events.EventType{
		events.EventReviewCreated,
		events.EventReviewUpdated,
		events.EventReviewDeleted,
	} {
		dispatcher.Subscribe(eventType, reconciler.HandleEvent)
	}

	dest := &domain.Destination{Name: "Borobudur", CategoryType: "Budaya", City: "Magelang"}
	require.NoError(t, dests.Create(context.Background(), dest))

	return &reviewFixture{
		reviews:      NewReviewService(reviews, dests, dispatcher),
		reconciler:   reconciler,
		destinations: dests,
		destination:  dest,
	}
}

func (f *reviewFixture) currentRating(t *testing.T) float64 {
	t.Helper()
	dest, err := f.destinations.GetByID(context.Background(), f.destination.ID)
	require.NoError(t, err)
	return dest.Rating
}

func TestReviewAdd_RefreshesDestinationRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	for _, rating := range []int{5, 3, 4} {
		_, err := f.reviews.Add(ctx, ReviewInput{
			UserID:        "u1",
			DestinationID: f.destination.ID,
			Rating:        rating,
			Comment:       "nice",
		})
		require.NoError(t, err)
	}

	assert.InDelta(t, 4.0, f.currentRating(t), 1e-9)
}

func TestReviewDelete_RefreshesDestinationRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	var middle *domain.Review
	for _, rating := range []int{5, 3, 4} {
		review, err := f.reviews.Add(ctx, ReviewInput{
			UserID:        "u1",
			DestinationID: f.destination.ID,
			Rating:        rating,
			Comment:       "nice",
		})
		require.NoError(t, err)
		if rating == 3 {
			middle = review
		}
	}

	require.NoError(t, f.reviews.Delete(ctx, middle.ID))
	assert.InDelta(t, 4.5, f.currentRating(t), 1e-9)
}

func TestReviewDelete_LastReviewResetsRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.reviews.Add(ctx, ReviewInput{
		UserID:        "u1",
		DestinationID: f.destination.ID,
		Rating:        5,
		Comment:       "nice",
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, f.currentRating(t), 1e-9)

	require.NoError(t, f.reviews.Delete(ctx, review.ID))
	assert.InDelta(t, 0.0, f.currentRating(t), 1e-9)
}

func TestReviewUpdate_RefreshesDestinationRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.reviews.Add(ctx, ReviewInput{
		UserID:        "u1",
		DestinationID: f.destination.ID,
		Rating:        2,
		Comment:       "meh",
	})
	require.NoError(t, err)

	updated, err := f.reviews.Update(ctx, review.ID, 5, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.InDelta(t, 5.0, f.currentRating(t), 1e-9)
}

func TestReviewAdd_Validation(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	_, err := f.reviews.Add(ctx, ReviewInput{UserID: "u1", DestinationID: f.destination.ID, Rating: 0, Comment: "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))

	_, err = f.reviews.Add(ctx, ReviewInput{UserID: "u1", DestinationID: f.destination.ID, Rating: 6, Comment: "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))

	_, err = f.reviews.Add(ctx, ReviewInput{UserID: "u1", DestinationID: f.destination.ID, Rating: 3, Comment: "  "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestReviewUpdate_Validation(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.reviews.Add(ctx, ReviewInput{
		UserID:        "u1",
		DestinationID: f.destination.ID,
		Rating:        4,
		Comment:       "original",
	})
	require.NoError(t, err)

	_, err = f.reviews.Update(ctx, review.ID, 6, "still fine")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))

	// A blank comment must not overwrite the stored one.
	_, err = f.reviews.Update(ctx, review.ID, 5, "   ")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))

	stored, err := f.reviews.ListByDestination(ctx, f.destination.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "original", stored[0].Comment)
	assert.Equal(t, 4, stored[0].Rating)
}

func TestReviewAdd_UnknownDestination(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.reviews.Add(context.Background(), ReviewInput{
		UserID:        "u1",
		DestinationID: "missing",
		Rating:        4,
		Comment:       "x",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestRecompute_MissingDestinationIsSkipped(t *testing.T) {
	users := memory.NewUserRepository()
	reviews := memory.NewReviewRepository(users)
	dests := memory.NewDestinationRepository()
	reconciler := NewRatingReconciler(reviews, dests, zap.NewNop())

	// The triggering review write already succeeded, so a vanished
	// destination must not surface as an error.
	assert.NoError(t, reconciler.Recompute(context.Background(), "missing"))
}
