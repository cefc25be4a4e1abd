package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReviewCreated EventType = "review_created"
	EventReviewUpdated EventType = "review_updated"
	EventReviewDeleted EventType = "review_deleted"
)

// Event represents a domain event emitted by services. Review events carry
// the destination whose aggregate rating must be reconciled.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	ReviewID      string    `json:"review_id"`
	DestinationID string    `json:"destination_id"`
	Timestamp     time.Time `json:"timestamp"`
}
