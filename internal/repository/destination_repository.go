package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/travel-api/internal/domain"
)

// DestinationRepository defines persistence access for destinations.
type DestinationRepository interface {
	Create(ctx context.Context, dest *domain.Destination) error
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	ListByCategory(ctx context.Context, categoryType string) ([]domain.Destination, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	UpdateRating(ctx context.Context, id string, rating float64) error
}

type destinationRepository struct {
	pool *pgxpool.Pool
}

// NewDestinationRepository returns a Postgres-backed implementation.
func NewDestinationRepository(pool *pgxpool.Pool) DestinationRepository {
	return &destinationRepository{pool: pool}
}

const destinationColumns = `id, name, category_type, city, location, description, opening_hours, closing_hours, rating, created_at, updated_at`

func scanDestination(row pgx.Row, dest *domain.Destination) error {
	return row.Scan(
		&dest.ID,
		&dest.Name,
		&dest.CategoryType,
		&dest.City,
		&dest.Location,
		&dest.Description,
		&dest.OpeningHours,
		&dest.ClosingHours,
		&dest.Rating,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	)
}

func (r *destinationRepository) Create(ctx context.Context, dest *domain.Destination) error {
	const query = `
        INSERT INTO destinations (name, category_type, city, location, description, opening_hours, closing_hours, rating)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		dest.Name,
		dest.CategoryType,
		dest.City,
		dest.Location,
		dest.Description,
		dest.OpeningHours,
		dest.ClosingHours,
		dest.Rating,
	).Scan(&dest.ID, &dest.CreatedAt, &dest.UpdatedAt)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	var dest domain.Destination
	err := scanDestination(r.pool.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id=$1`, id), &dest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	return r.query(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY name`)
}

func (r *destinationRepository) ListByCategory(ctx context.Context, categoryType string) ([]domain.Destination, error) {
	return r.query(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE category_type=$1 ORDER BY name`, categoryType)
}

func (r *destinationRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Destination, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dests := make([]domain.Destination, 0)
	for rows.Next() {
		var dest domain.Destination
		if err := scanDestination(rows, &dest); err != nil {
			return nil, err
		}
		dests = append(dests, dest)
	}
	return dests, rows.Err()
}

func (r *destinationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM destinations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *destinationRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM destinations`)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *destinationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM destinations WHERE name=$1)`, name).Scan(&exists)
	return exists, err
}

func (r *destinationRepository) UpdateRating(ctx context.Context, id string, rating float64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE destinations SET rating=$1, updated_at=NOW() WHERE id=$2`, rating, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
