package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/travel-api/internal/domain"
)

func testUser(role domain.Role) *domain.User {
	return &domain.User{
		ID:     "user-1",
		Email:  "u@example.com",
		Role:   role,
		Status: domain.UserStatusActive,
	}
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager("secret", 1440, 60)

	token, exp, err := tm.GenerateToken(testUser(domain.RoleUser))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_RoleTTL(t *testing.T) {
	tm := NewTokenManager("secret", 1440, 60)

	_, userExp, err := tm.GenerateToken(testUser(domain.RoleUser))
	require.NoError(t, err)
	_, adminExp, err := tm.GenerateToken(testUser(domain.RoleAdmin))
	require.NoError(t, err)

	// Admin tokens expire on the order of an hour, user tokens a day.
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), userExp, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), adminExp, 5*time.Second)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", 1440, 60)

	claims := &Claims{
		Email: "u@example.com",
		Role:  domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm1 := NewTokenManager("secret-one", 1440, 60)
	tm2 := NewTokenManager("secret-two", 1440, 60)

	token, _, err := tm1.GenerateToken(testUser(domain.RoleUser))
	require.NoError(t, err)

	_, err = tm2.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_WrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("secret", 1440, 60)

	claims := &Claims{
		Role: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}
