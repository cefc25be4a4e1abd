// Package memory provides in-memory implementations of the repository
// interfaces. They enforce the same uniqueness constraints and return the
// same typed errors as the Postgres implementations, so services can be
// exercised in tests without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/repository"
)

// UserRepository is an in-memory repository.UserRepository.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

// NewUserRepository constructs an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *UserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) EmailExists(_ context.Context, email string, role domain.Role) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.Role == role {
			return true, nil
		}
	}
	return false, nil
}

// DestinationRepository is an in-memory repository.DestinationRepository.
type DestinationRepository struct {
	mu    sync.Mutex
	dests map[string]*domain.Destination
}

// NewDestinationRepository constructs an empty store.
func NewDestinationRepository() *DestinationRepository {
	return &DestinationRepository{dests: make(map[string]*domain.Destination)}
}

func (r *DestinationRepository) Create(_ context.Context, dest *domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.dests {
		if existing.Name == dest.Name {
			return repository.ErrDuplicateName
		}
	}
	dest.ID = uuid.NewString()
	dest.CreatedAt = time.Now()
	dest.UpdatedAt = dest.CreatedAt
	clone := *dest
	r.dests[dest.ID] = &clone
	return nil
}

func (r *DestinationRepository) GetByID(_ context.Context, id string) (*domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dest, ok := r.dests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *dest
	return &clone, nil
}

func (r *DestinationRepository) List(_ context.Context) ([]domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dests := make([]domain.Destination, 0, len(r.dests))
	for _, dest := range r.dests {
		dests = append(dests, *dest)
	}
	return dests, nil
}

func (r *DestinationRepository) ListByCategory(_ context.Context, categoryType string) ([]domain.Destination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dests := make([]domain.Destination, 0)
	for _, dest := range r.dests {
		if dest.CategoryType == categoryType {
			dests = append(dests, *dest)
		}
	}
	return dests, nil
}

func (r *DestinationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dests[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.dests, id)
	return nil
}

func (r *DestinationRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := int64(len(r.dests))
	r.dests = make(map[string]*domain.Destination)
	return count, nil
}

func (r *DestinationRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dest := range r.dests {
		if dest.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *DestinationRepository) UpdateRating(_ context.Context, id string, rating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dest, ok := r.dests[id]
	if !ok {
		return repository.ErrNotFound
	}
	dest.Rating = rating
	dest.UpdatedAt = time.Now()
	return nil
}

// ReviewRepository is an in-memory repository.ReviewRepository.
type ReviewRepository struct {
	mu      sync.Mutex
	reviews map[string]*domain.Review
	users   *UserRepository
}

// NewReviewRepository constructs an empty store. The user repository is
// optional and only used to join usernames onto listings.
func NewReviewRepository(users *UserRepository) *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]*domain.Review), users: users}
}

func (r *ReviewRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.ID = uuid.NewString()
	review.CreatedAt = time.Now()
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *ReviewRepository) GetByID(_ context.Context, id string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *review
	return &clone, nil
}

func (r *ReviewRepository) Update(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.reviews[review.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Rating = review.Rating
	existing.Comment = review.Comment
	*review = *existing
	return nil
}

func (r *ReviewRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID string) ([]domain.ReviewWithAuthor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ReviewWithAuthor, 0)
	for _, review := range r.reviews {
		if review.DestinationID != destinationID {
			continue
		}
		item := domain.ReviewWithAuthor{Review: *review}
		if r.users != nil {
			if user, err := r.users.GetByID(ctx, review.UserID); err == nil {
				item.Username = user.Username
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ReviewRepository) ListRatings(_ context.Context, destinationID string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ratings := make([]int, 0)
	for _, review := range r.reviews {
		if review.DestinationID == destinationID {
			ratings = append(ratings, review.Rating)
		}
	}
	return ratings, nil
}

// TicketRepository is an in-memory repository.TicketRepository.
type TicketRepository struct {
	mu      sync.Mutex
	tickets map[string]*domain.Ticket
	users   *UserRepository
	dests   *DestinationRepository
}

// NewTicketRepository constructs an empty store. User and destination
// repositories are optional and only used to join listing fields.
func NewTicketRepository(users *UserRepository, dests *DestinationRepository) *TicketRepository {
	return &TicketRepository{tickets: make(map[string]*domain.Ticket), users: users, dests: dests}
}

func (r *TicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket.ID = uuid.NewString()
	ticket.CreatedAt = time.Now()
	clone := *ticket
	r.tickets[ticket.ID] = &clone
	return nil
}

func (r *TicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *ticket
	return &clone, nil
}

func (r *TicketRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]domain.TicketDetail, error) {
	r.mu.Lock()
	tickets := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		tickets = append(tickets, *ticket)
	}
	r.mu.Unlock()
	return r.join(ctx, tickets), nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.TicketDetail, error) {
	r.mu.Lock()
	tickets := make([]domain.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.UserID == userID {
			tickets = append(tickets, *ticket)
		}
	}
	r.mu.Unlock()
	return r.join(ctx, tickets), nil
}

func (r *TicketRepository) join(ctx context.Context, tickets []domain.Ticket) []domain.TicketDetail {
	out := make([]domain.TicketDetail, 0, len(tickets))
	for _, ticket := range tickets {
		detail := domain.TicketDetail{Ticket: ticket}
		if r.users != nil {
			if user, err := r.users.GetByID(ctx, ticket.UserID); err == nil {
				detail.Username = user.Username
				detail.UserEmail = user.Email
			}
		}
		if r.dests != nil {
			if dest, err := r.dests.GetByID(ctx, ticket.DestinationID); err == nil {
				detail.DestinationName = dest.Name
				detail.Location = dest.Location
			}
		}
		out = append(out, detail)
	}
	return out
}
