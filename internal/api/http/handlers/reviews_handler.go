package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/dto"
	"github.com/spec-kit/travel-api/internal/service"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// ReviewsHandler exposes review endpoints. Every mutation triggers a refresh
// of the destination's aggregate rating.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// Add handles POST /reviews.
func (h *ReviewsHandler) Add(c *fiber.Ctx) error {
	var req dto.AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.UserID == "" || req.DestinationID == "" || req.Comment == "" {
		return apperrors.NewValidationError("userId, destinationId, comment required")
	}

	review, err := h.reviews.Add(c.UserContext(), service.ReviewInput{
		UserID:        req.UserID,
		DestinationID: req.DestinationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewReviewResponse(review))
}

// ListByDestination handles GET /reviews/destination/:destinationId.
func (h *ReviewsHandler) ListByDestination(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListByDestination(c.UserContext(), c.Params("destinationId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReviewResponses(reviews))
}

// Update handles PUT /reviews/:reviewId.
func (h *ReviewsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	review, err := h.reviews.Update(c.UserContext(), c.Params("reviewId"), req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReviewResponse(review))
}

// Delete handles DELETE /reviews/:reviewId.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.reviews.Delete(c.UserContext(), c.Params("reviewId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
