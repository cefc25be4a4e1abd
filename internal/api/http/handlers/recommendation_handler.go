package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/dto"
	"github.com/spec-kit/travel-api/internal/service"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// RecommendationHandler forwards recommendation requests to the ML service.
type RecommendationHandler struct {
	recommendations *service.RecommendationService
}

// NewRecommendationHandler constructs handler.
func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendationService}
}

// Recommend handles POST /recommendation.
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	recommendation, err := h.recommendations.Recommend(c.UserContext(), req.City)
	if err != nil {
		return err
	}
	return c.JSON(dto.RecommendationResponse{Success: true, Recommendation: recommendation})
}
