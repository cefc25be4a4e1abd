package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/travel-api/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens. Lifetime depends
// on the subject's role: admins get short-lived tokens, users longer ones.
type TokenManager struct {
	secret   []byte
	userTTL  time.Duration
	adminTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, userTTLMinutes, adminTTLMinutes int) *TokenManager {
	if userTTLMinutes <= 0 {
		userTTLMinutes = 1440
	}
	if adminTTLMinutes <= 0 {
		adminTTLMinutes = 60
	}
	return &TokenManager{
		secret:   []byte(secret),
		userTTL:  time.Duration(userTTLMinutes) * time.Minute,
		adminTTL: time.Duration(adminTTLMinutes) * time.Minute,
	}
}

// Claims describes JWT payload.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the account.
func (tm *TokenManager) GenerateToken(user *domain.User) (string, time.Time, error) {
	ttl := tm.userTTL
	if user.Role == domain.RoleAdmin {
		ttl = tm.adminTTL
	}
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
