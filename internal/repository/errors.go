package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Typed store errors. Unique-index violations from Postgres are translated to
// these so callers can treat the constraint as the authoritative conflict
// signal instead of trusting a prior existence check.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateName     = errors.New("name already exists")
)

const uniqueViolationCode = "23505"

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return ErrDuplicateEmail
	case "users_username_key":
		return ErrDuplicateUsername
	case "destinations_name_key":
		return ErrDuplicateName
	}
	return err
}
