package dto

import "encoding/json"

// RecommendationRequest payload for POST /recommendation.
type RecommendationRequest struct {
	City string `json:"city"`
}

// RecommendationResponse relays the ML service payload.
type RecommendationResponse struct {
	Success        bool            `json:"success"`
	Recommendation json.RawMessage `json:"recommendation"`
}
