package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/travel-api/internal/domain"
)

// TicketRepository defines persistence access for ticket bookings.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.TicketDetail, error)
	ListByUser(ctx context.Context, userID string) ([]domain.TicketDetail, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository returns a Postgres-backed implementation.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (booking_code, user_id, destination_id, phone, ticket_quantity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		ticket.BookingCode,
		ticket.UserID,
		ticket.DestinationID,
		ticket.Phone,
		ticket.TicketQuantity,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, booking_code, user_id, destination_id, phone, ticket_quantity, created_at
        FROM tickets WHERE id=$1`

	var ticket domain.Ticket
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.BookingCode,
		&ticket.UserID,
		&ticket.DestinationID,
		&ticket.Phone,
		&ticket.TicketQuantity,
		&ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const ticketDetailQuery = `
        SELECT t.id, t.booking_code, t.user_id, t.destination_id, t.phone, t.ticket_quantity, t.created_at,
               COALESCE(u.username, ''), COALESCE(u.email, ''),
               COALESCE(d.name, ''), COALESCE(d.location, '')
        FROM tickets t
        LEFT JOIN users u ON u.id = t.user_id
        LEFT JOIN destinations d ON d.id = t.destination_id`

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.TicketDetail, error) {
	return r.queryDetails(ctx, ticketDetailQuery+` ORDER BY t.created_at DESC`)
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]domain.TicketDetail, error) {
	return r.queryDetails(ctx, ticketDetailQuery+` WHERE t.user_id=$1 ORDER BY t.created_at DESC`, userID)
}

func (r *ticketRepository) queryDetails(ctx context.Context, sql string, args ...any) ([]domain.TicketDetail, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.TicketDetail, 0)
	for rows.Next() {
		var detail domain.TicketDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.BookingCode,
			&detail.UserID,
			&detail.DestinationID,
			&detail.Phone,
			&detail.TicketQuantity,
			&detail.CreatedAt,
			&detail.Username,
			&detail.UserEmail,
			&detail.DestinationName,
			&detail.Location,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, detail)
	}
	return tickets, rows.Err()
}
