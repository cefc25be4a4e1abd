package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/repository"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// TicketService coordinates ticket bookings.
type TicketService struct {
	tickets      repository.TicketRepository
	users        repository.UserRepository
	destinations repository.DestinationRepository
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository, users repository.UserRepository, destinations repository.DestinationRepository) *TicketService {
	return &TicketService{tickets: tickets, users: users, destinations: destinations}
}

// TicketInput describes a booking payload.
type TicketInput struct {
	UserID         string
	DestinationID  string
	Phone          string
	TicketQuantity int
}

// Create books a ticket. Both referenced entities must exist; nothing is
// written when either is missing.
func (s *TicketService) Create(ctx context.Context, input TicketInput) (*domain.Ticket, error) {
	if input.TicketQuantity <= 0 {
		return nil, apperrors.NewValidationError("ticket quantity must be a positive integer")
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user or destination")
		}
		return nil, err
	}
	if _, err := s.destinations.GetByID(ctx, input.DestinationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user or destination")
		}
		return nil, err
	}

	ticket := &domain.Ticket{
		BookingCode:    uuid.NewString(),
		UserID:         input.UserID,
		DestinationID:  input.DestinationID,
		Phone:          input.Phone,
		TicketQuantity: input.TicketQuantity,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListAll returns every booking with user and destination fields joined.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.TicketDetail, error) {
	return s.tickets.ListAll(ctx)
}

// ListByUser returns a user's bookings. No bookings is a 404, matching the
// public surface.
func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]domain.TicketDetail, error) {
	tickets, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, apperrors.NewNotFound("tickets for this user")
	}
	return tickets, nil
}

// Cancel deletes a booking.
func (s *TicketService) Cancel(ctx context.Context, ticketID string) error {
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("ticket")
		}
		return err
	}
	return nil
}
