package domain

import "time"

// Review rates a destination on a 1..5 integer scale.
type Review struct {
	ID            string
	UserID        string
	DestinationID string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

// ReviewWithAuthor joins the reviewer's username onto a review for listings.
type ReviewWithAuthor struct {
	Review
	Username string
}
