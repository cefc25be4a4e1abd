package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/dto"
	"github.com/spec-kit/travel-api/internal/service"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// TicketsHandler exposes ticket booking endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService}
}

// Create handles POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.UserID == "" || req.DestinationID == "" || req.TicketQuantity == 0 {
		return apperrors.NewValidationError("userId, destinationId and ticketQuantity are required")
	}

	ticket, err := h.tickets.Create(c.UserContext(), service.TicketInput{
		UserID:         req.UserID,
		DestinationID:  req.DestinationID,
		Phone:          req.Phone,
		TicketQuantity: req.TicketQuantity,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Ticket successfully booked",
		"ticket":  dto.NewTicketResponse(ticket),
	})
}

// ListAll handles GET /tickets (admin only).
func (h *TicketsHandler) ListAll(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": dto.NewTicketDetailResponses(tickets)})
}

// ListByUser handles GET /tickets/user/:userId (self or admin).
func (h *TicketsHandler) ListByUser(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": dto.NewTicketDetailResponses(tickets)})
}

// Cancel handles DELETE /tickets/:ticketId.
func (h *TicketsHandler) Cancel(c *fiber.Ctx) error {
	if err := h.tickets.Cancel(c.UserContext(), c.Params("ticketId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Ticket successfully cancelled"})
}
