package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/travel-api/internal/domain"
)

// ReviewRepository defines persistence access for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	ListByDestination(ctx context.Context, destinationID string) ([]domain.ReviewWithAuthor, error)
	ListRatings(ctx context.Context, destinationID string) ([]int, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a Postgres-backed implementation.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (user_id, destination_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		review.UserID,
		review.DestinationID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	const query = `
        SELECT id, user_id, destination_id, rating, comment, created_at
        FROM reviews WHERE id=$1`

	var review domain.Review
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.DestinationID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE reviews SET rating=$1, comment=$2 WHERE id=$3`,
		review.Rating, review.Comment, review.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reviewRepository) ListByDestination(ctx context.Context, destinationID string) ([]domain.ReviewWithAuthor, error) {
	const query = `
        SELECT r.id, r.user_id, r.destination_id, r.rating, r.comment, r.created_at,
               COALESCE(u.username, '')
        FROM reviews r
        LEFT JOIN users u ON u.id = r.user_id
        WHERE r.destination_id=$1
        ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.ReviewWithAuthor, 0)
	for rows.Next() {
		var review domain.ReviewWithAuthor
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.DestinationID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.Username,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) ListRatings(ctx context.Context, destinationID string) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT rating FROM reviews WHERE destination_id=$1`, destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]int, 0)
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
