package worker

import (
	"github.com/spec-kit/travel-api/internal/events"
	"github.com/spec-kit/travel-api/internal/service"
)

// StartRatingWorker subscribes the rating reconciler to review mutations so
// every create, update, and delete refreshes the destination aggregate.
func StartRatingWorker(dispatcher events.Dispatcher, reconciler *service.RatingReconciler) {
	if reconciler == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventReviewCreated,
		events.EventReviewUpdated,
		events.EventReviewDeleted,
	} {
		dispatcher.Subscribe(eventType, reconciler.HandleEvent)
	}
}
