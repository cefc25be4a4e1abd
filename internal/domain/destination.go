package domain

import "time"

// Destination is a bookable travel destination. Rating is a denormalized
// aggregate recomputed from reviews, never authored directly.
type Destination struct {
	ID           string
	Name         string
	CategoryType string
	City         string
	Location     string
	Description  string
	OpeningHours string
	ClosingHours string
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
