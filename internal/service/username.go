package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/repository"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

const maxUsernameAttempts = 1000

// createWithUsername inserts the account under a collision-free username
// derived from base: base, base1, base2, ... with the smallest free suffix.
// A pre-check skips obviously taken names, but the store's unique-index
// violation is the authoritative conflict signal: when a concurrent
// registration wins the race, the insert retries with the next suffix
// instead of failing.
func (s *AuthService) createWithUsername(ctx context.Context, user *domain.User, base string) error {
	candidate := base
	counter := 0

	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		exists, err := s.users.UsernameExists(ctx, candidate)
		if err != nil {
			return err
		}
		if !exists {
			user.Username = candidate
			err = s.users.Create(ctx, user)
			if !errors.Is(err, repository.ErrDuplicateUsername) {
				return err
			}
		}
		counter++
		candidate = fmt.Sprintf("%s%d", base, counter)
	}
	return apperrors.NewConflict("could not allocate a unique username")
}
