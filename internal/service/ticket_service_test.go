package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/repository/memory"
)

type ticketFixture struct {
	tickets     *TicketService
	ticketsRepo *memory.TicketRepository
	user        *domain.User
	destination *domain.Destination
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepository()
	dests := memory.NewDestinationRepository()
	ticketsRepo := memory.NewTicketRepository(users, dests)

	user := &domain.User{Username: "joe", Email: "joe@x.com", Status: domain.UserStatusActive, Role: domain.RoleUser}
	require.NoError(t, users.Create(ctx, user))

	dest := &domain.Destination{Name: "Prambanan", City: "Yogyakarta", Location: "Sleman"}
	require.NoError(t, dests.Create(ctx, dest))

	return &ticketFixture{
		tickets:     NewTicketService(ticketsRepo, users, dests),
		ticketsRepo: ticketsRepo,
		user:        user,
		destination: dest,
	}
}

func TestTicketCreate(t *testing.T) {
	f := newTicketFixture(t)

	ticket, err := f.tickets.Create(context.Background(), TicketInput{
		UserID:         f.user.ID,
		DestinationID:  f.destination.ID,
		Phone:          "0800",
		TicketQuantity: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.NotEmpty(t, ticket.BookingCode)
	assert.Equal(t, 2, ticket.TicketQuantity)
}

func TestTicketCreate_MissingReferences(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	_, err := f.tickets.Create(ctx, TicketInput{
		UserID:         "missing",
		DestinationID:  f.destination.ID,
		TicketQuantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))

	_, err = f.tickets.Create(ctx, TicketInput{
		UserID:         f.user.ID,
		DestinationID:  "missing",
		TicketQuantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))

	// Neither failed attempt may leave a booking behind.
	all, err := f.ticketsRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTicketCreate_InvalidQuantity(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.tickets.Create(context.Background(), TicketInput{
		UserID:         f.user.ID,
		DestinationID:  f.destination.ID,
		TicketQuantity: 0,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestTicketListByUser(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	_, err := f.tickets.Create(ctx, TicketInput{
		UserID:         f.user.ID,
		DestinationID:  f.destination.ID,
		TicketQuantity: 1,
	})
	require.NoError(t, err)

	details, err := f.tickets.ListByUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "joe", details[0].Username)
	assert.Equal(t, "Prambanan", details[0].DestinationName)
}

func TestTicketListByUser_NoBookings(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.tickets.ListByUser(context.Background(), f.user.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestTicketCancel(t *testing.T) {
	f := newTicketFixture(t)
	ctx := context.Background()

	ticket, err := f.tickets.Create(ctx, TicketInput{
		UserID:         f.user.ID,
		DestinationID:  f.destination.ID,
		TicketQuantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, f.tickets.Cancel(ctx, ticket.ID))

	err = f.tickets.Cancel(ctx, ticket.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}
