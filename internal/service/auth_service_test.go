package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/travel-api/internal/auth"
	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/repository/memory"
)

func newAuthService(google auth.GoogleVerifier) (*AuthService, *memory.UserRepository) {
	users := memory.NewUserRepository()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users, GoogleVerifier: google})
	return svc, users
}

func registerInput(username, email string) RegisterInput {
	return RegisterInput{
		FirstName: "J",
		LastName:  "Doe",
		Username:  username,
		Email:     email,
		Password:  "secret123",
	}
}

func TestRegister_ResolvesUsernameCollisions(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	first, err := svc.Register(ctx, registerInput("joe", "joe1@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "joe", first.Username)

	second, err := svc.Register(ctx, registerInput("joe", "joe2@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "joe1", second.Username)

	third, err := svc.Register(ctx, registerInput("joe", "joe3@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "joe2", third.Username)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput("jane", "joe@x.com"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _ := newAuthService(nil)

	_, err := svc.Register(context.Background(), registerInput("joe", "not-an-email"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	loggedIn, token, _, err := svc.Login(ctx, "joe@x.com", "secret123", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "joe@x.com", "wrong", domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(nil)

	_, _, _, err := svc.Login(context.Background(), "nobody@x.com", "secret123", domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestLogin_BannedAccount(t *testing.T) {
	svc, users := newAuthService(nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	user.Status = domain.UserStatusBanned
	require.NoError(t, users.Update(ctx, user))

	// Banned wins over credential correctness.
	_, _, _, err = svc.Login(ctx, "joe@x.com", "secret123", domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpStatus(err))
}

func TestLogin_RoleMismatch(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	// An end-user account must not authenticate through the admin login.
	_, _, _, err = svc.Login(ctx, "joe@x.com", "secret123", domain.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestCreateAdmin_IssuesShortLivedTokens(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, registerInput("root", "root@x.com"))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	_, token, _, err := svc.Login(ctx, "root@x.com", "secret123", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginWithGoogle_CreatesPasswordlessAccount(t *testing.T) {
	verifier := &fakeGoogleVerifier{profile: &auth.GoogleProfile{
		Email:      "g@x.com",
		Name:       "Gina Traveler",
		GivenName:  "Gina",
		FamilyName: "Traveler",
	}}
	svc, _ := newAuthService(verifier)
	ctx := context.Background()

	user, token, _, err := svc.LoginWithGoogle(ctx, "opaque-token")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "g@x.com", user.Email)
	assert.Nil(t, user.PasswordHash)

	// A password-less account can never log in by password.
	_, _, _, err = svc.Login(ctx, "g@x.com", "anything", domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestLoginWithGoogle_MatchesExistingByEmail(t *testing.T) {
	verifier := &fakeGoogleVerifier{profile: &auth.GoogleProfile{Email: "joe@x.com", Name: "Joe"}}
	svc, _ := newAuthService(verifier)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	user, _, _, err := svc.LoginWithGoogle(ctx, "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginWithGoogle_BannedAccount(t *testing.T) {
	verifier := &fakeGoogleVerifier{profile: &auth.GoogleProfile{Email: "joe@x.com"}}
	svc, users := newAuthService(verifier)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)
	user.Status = domain.UserStatusBanned
	require.NoError(t, users.Update(ctx, user))

	_, _, _, err = svc.LoginWithGoogle(ctx, "opaque-token")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpStatus(err))
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, "joe@x.com", "newsecret", domain.RoleUser))

	_, _, _, err = svc.Login(ctx, "joe@x.com", "secret123", domain.RoleUser)
	require.Error(t, err)
	_, _, _, err = svc.Login(ctx, "joe@x.com", "newsecret", domain.RoleUser)
	assert.NoError(t, err)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(nil)

	err := svc.ResetPassword(context.Background(), "nobody@x.com", "newsecret", domain.RoleUser)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestCheckEmail(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("joe", "joe@x.com"))
	require.NoError(t, err)

	exists, err := svc.CheckEmail(ctx, "joe@x.com", domain.RoleUser)
	require.NoError(t, err)
	assert.True(t, exists)

	// The account is an end-user, not an admin.
	exists, err = svc.CheckEmail(ctx, "joe@x.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.CheckEmail(ctx, "nobody@x.com", domain.RoleUser)
	require.NoError(t, err)
	assert.False(t, exists)
}
