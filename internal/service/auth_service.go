package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/spec-kit/travel-api/internal/auth"
	"github.com/spec-kit/travel-api/internal/config"
	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/repository"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// AuthService coordinates registration and login flows for users and admins.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	google     auth.GoogleVerifier
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	GoogleVerifier auth.GoogleVerifier
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.UserTokenTTLMinutes, cfg.Auth.AdminTokenTTLMinutes),
		google:     deps.GoogleVerifier,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RegisterInput describes an account registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Phone     *string
	Address   *string
}

// Register creates a new end-user account. The requested username is
// resolved to a collision-free one; a duplicate email is a conflict.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: &hash,
		Phone:        input.Phone,
		Address:      input.Address,
		Status:       domain.UserStatusActive,
		Role:         domain.RoleUser,
	}
	if err := s.createWithUsername(ctx, user, input.Username); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("user with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

// CreateAdmin creates an admin account. Admins cannot self-register; the
// route is admin-protected.
func (s *AuthService) CreateAdmin(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: &hash,
		Status:       domain.UserStatusActive,
		Role:         domain.RoleAdmin,
	}
	if err := s.createWithUsername(ctx, admin, input.Username); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("admin with this email already exists")
		}
		return nil, err
	}
	return admin, nil
}

// Login authenticates an account by email and password. The role narrows the
// lookup so the admin login path never matches end-user accounts and vice
// versa. Banned accounts are rejected regardless of credential correctness.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewNotFound(string(role))
		}
		return nil, "", time.Time{}, err
	}
	if user.Role != role {
		return nil, "", time.Time{}, apperrors.NewNotFound(string(role))
	}
	if user.Banned() {
		return nil, "", time.Time{}, apperrors.NewForbidden("your account is banned, please contact support")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewDomainError("INVALID_CREDENTIALS", "incorrect email or password", http.StatusBadRequest)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// LoginWithGoogle verifies an external identity token, matching an existing
// account by email or creating a password-less one.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, string, time.Time, error) {
	profile, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("google login failed")
	}

	user, err := s.users.GetByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		if user.Banned() {
			return nil, "", time.Time{}, apperrors.NewForbidden("your account is banned, please contact support")
		}
	case errors.Is(err, repository.ErrNotFound):
		base := profile.Name
		if base == "" {
			base = strings.SplitN(profile.Email, "@", 2)[0]
		}
		user = &domain.User{
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Email:     profile.Email,
			Status:    domain.UserStatusActive,
			Role:      domain.RoleUser,
		}
		if err := s.createWithUsername(ctx, user, base); err != nil {
			return nil, "", time.Time{}, err
		}
	default:
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// CheckEmail reports whether an account with this email and role exists.
func (s *AuthService) CheckEmail(ctx context.Context, email string, role domain.Role) (bool, error) {
	return s.users.EmailExists(ctx, email, role)
}

// ResetPassword replaces the password of the account matching email and role.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string, role domain.Role) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound(string(role))
		}
		return err
	}
	if user.Role != role {
		return apperrors.NewNotFound(string(role))
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	return s.users.Update(ctx, user)
}
