package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/dto"
	"github.com/spec-kit/travel-api/internal/service"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// DestinationsHandler exposes the destination catalog.
type DestinationsHandler struct {
	destinations *service.DestinationService
}

// NewDestinationsHandler constructs handler.
func NewDestinationsHandler(destinationService *service.DestinationService) *DestinationsHandler {
	return &DestinationsHandler{destinations: destinationService}
}

// List handles GET /destinations.
func (h *DestinationsHandler) List(c *fiber.Ctx) error {
	dests, err := h.destinations.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDestinationResponses(dests))
}

// Get handles GET /destinations/id/:id.
func (h *DestinationsHandler) Get(c *fiber.Ctx) error {
	dest, err := h.destinations.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDestinationResponse(dest))
}

// ListByCategory handles GET /destinations/category/:category.
func (h *DestinationsHandler) ListByCategory(c *fiber.Ctx) error {
	dests, err := h.destinations.ListByCategory(c.UserContext(), c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDestinationResponses(dests))
}

// Delete handles DELETE /destinations/:id (admin only).
func (h *DestinationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.destinations.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Destination deleted successfully"})
}

// DeleteAll handles DELETE /destinations (admin only).
func (h *DestinationsHandler) DeleteAll(c *fiber.Ctx) error {
	if _, err := h.destinations.DeleteAll(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "All destinations deleted successfully"})
}

// BulkAdd handles POST /destinations (admin only).
func (h *DestinationsHandler) BulkAdd(c *fiber.Ctx) error {
	var req dto.BulkAddDestinationsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Destinations == nil {
		return apperrors.NewValidationError("destinations data must be an array")
	}

	inputs := make([]service.DestinationInput, 0, len(req.Destinations))
	for _, item := range req.Destinations {
		inputs = append(inputs, service.DestinationInput{
			Name:         item.Name,
			CategoryType: item.Category.Type,
			City:         item.City,
			Location:     item.Location,
			Description:  item.Description,
			OpeningHours: item.OpeningHours,
			ClosingHours: item.ClosingHours,
		})
	}

	saved, err := h.destinations.BulkAdd(c.UserContext(), inputs)
	if err != nil {
		return err
	}
	if saved == 0 {
		return c.JSON(fiber.Map{"success": true, "message": "No new destinations to save"})
	}
	return c.JSON(fiber.Map{"success": true, "message": fmt.Sprintf("%d new destinations saved", saved)})
}

// Sync handles POST /sync-destinations (admin only).
func (h *DestinationsHandler) Sync(c *fiber.Ctx) error {
	inserted, err := h.destinations.Sync(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Destination sync complete", "inserted": inserted})
}
