package dto

import (
	"time"

	"github.com/spec-kit/travel-api/internal/domain"
)

// AddReviewRequest payload for POST /reviews.
type AddReviewRequest struct {
	UserID        string `json:"userId"`
	DestinationID string `json:"destinationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// UpdateReviewRequest payload for PUT /reviews/{reviewId}.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse is the public review shape. Username is filled on listings.
type ReviewResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	DestinationID string    `json:"destinationId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Username      string    `json:"username,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewReviewResponse maps a domain review to its public shape.
func NewReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID,
		UserID:        review.UserID,
		DestinationID: review.DestinationID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}

// NewReviewResponses maps joined review listings.
func NewReviewResponses(reviews []domain.ReviewWithAuthor) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		item := NewReviewResponse(&reviews[i].Review)
		item.Username = reviews[i].Username
		out = append(out, item)
	}
	return out
}
