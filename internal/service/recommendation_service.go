package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spec-kit/travel-api/internal/gateway"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// RecommendationService forwards city names to the external ML service and
// relays its recommendation payload. Stateless: no retry, no caching.
type RecommendationService struct {
	ml gateway.MLClient
}

// NewRecommendationService builds the service.
func NewRecommendationService(ml gateway.MLClient) *RecommendationService {
	return &RecommendationService{ml: ml}
}

// Recommend validates the city and performs one synchronous upstream call.
func (s *RecommendationService) Recommend(ctx context.Context, city string) (json.RawMessage, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apperrors.NewValidationError("field \"city\" must be a non-empty string")
	}

	recommendation, err := s.ml.Predict(ctx, city)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to get recommendation", err)
	}
	return recommendation, nil
}
