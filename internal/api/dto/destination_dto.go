package dto

import (
	"time"

	"github.com/spec-kit/travel-api/internal/domain"
)

// Category nests the category type the way destination documents expose it.
type Category struct {
	Type string `json:"type"`
}

// DestinationPayload is one destination in a bulk-add request.
type DestinationPayload struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	City         string   `json:"city"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	OpeningHours string   `json:"openingHours"`
	ClosingHours string   `json:"closingHours"`
}

// BulkAddDestinationsRequest payload for POST /destinations.
type BulkAddDestinationsRequest struct {
	Destinations []DestinationPayload `json:"destinations"`
}

// DestinationResponse is the public destination shape.
type DestinationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	City         string    `json:"city"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	OpeningHours string    `json:"openingHours"`
	ClosingHours string    `json:"closingHours"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewDestinationResponse maps a domain destination to its public shape.
func NewDestinationResponse(dest *domain.Destination) DestinationResponse {
	return DestinationResponse{
		ID:           dest.ID,
		Name:         dest.Name,
		Category:     Category{Type: dest.CategoryType},
		City:         dest.City,
		Location:     dest.Location,
		Description:  dest.Description,
		OpeningHours: dest.OpeningHours,
		ClosingHours: dest.ClosingHours,
		Rating:       dest.Rating,
		CreatedAt:    dest.CreatedAt,
		UpdatedAt:    dest.UpdatedAt,
	}
}

// NewDestinationResponses maps a slice of destinations.
func NewDestinationResponses(dests []domain.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(dests))
	for i := range dests {
		out = append(out, NewDestinationResponse(&dests[i]))
	}
	return out
}
