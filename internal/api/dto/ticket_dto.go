package dto

import (
	"time"

	"github.com/spec-kit/travel-api/internal/domain"
)

// CreateTicketRequest payload for POST /tickets.
type CreateTicketRequest struct {
	UserID         string `json:"userId"`
	DestinationID  string `json:"destinationId"`
	Phone          string `json:"phone"`
	TicketQuantity int    `json:"ticketQuantity"`
}

// TicketUser is the joined user fragment on ticket listings.
type TicketUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TicketDestination is the joined destination fragment on ticket listings.
type TicketDestination struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// TicketResponse is the public booking shape.
type TicketResponse struct {
	ID             string             `json:"id"`
	BookingCode    string             `json:"bookingCode"`
	UserID         string             `json:"userId"`
	DestinationID  string             `json:"destinationId"`
	Phone          string             `json:"phone"`
	TicketQuantity int                `json:"ticketQuantity"`
	CreatedAt      time.Time          `json:"createdAt"`
	User           *TicketUser        `json:"user,omitempty"`
	Destination    *TicketDestination `json:"destination,omitempty"`
}

// NewTicketResponse maps a bare booking.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:             ticket.ID,
		BookingCode:    ticket.BookingCode,
		UserID:         ticket.UserID,
		DestinationID:  ticket.DestinationID,
		Phone:          ticket.Phone,
		TicketQuantity: ticket.TicketQuantity,
		CreatedAt:      ticket.CreatedAt,
	}
}

// NewTicketDetailResponses maps joined booking listings.
func NewTicketDetailResponses(tickets []domain.TicketDetail) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		item := NewTicketResponse(&tickets[i].Ticket)
		item.User = &TicketUser{Username: tickets[i].Username, Email: tickets[i].UserEmail}
		item.Destination = &TicketDestination{Name: tickets[i].DestinationName, Location: tickets[i].Location}
		out = append(out, item)
	}
	return out
}
