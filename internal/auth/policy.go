package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/domain"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as carried by the token.
type Principal struct {
	UserID string
	Email  string
	Role   domain.Role
}

// DecisionCode tags the outcome of a policy evaluation.
type DecisionCode int

const (
	DecisionAllow DecisionCode = iota
	DecisionUnauthorized
	DecisionForbidden
)

// Decision is the result of evaluating a policy against a principal.
type Decision struct {
	Code   DecisionCode
	Reason string
}

// Policy describes what a protected route requires. RequireRole restricts to
// that role; OwnerParam names a route parameter whose value must match the
// principal's user id unless the principal is an admin.
type Policy struct {
	RequireRole domain.Role
	OwnerParam  string
}

// Evaluate produces a single tagged decision consumed uniformly by all
// protected routes.
func Evaluate(principal *Principal, policy Policy, ownerID string) Decision {
	if principal == nil {
		return Decision{Code: DecisionUnauthorized, Reason: "not authorized, token missing"}
	}
	if policy.RequireRole != "" && principal.Role != policy.RequireRole {
		return Decision{Code: DecisionForbidden, Reason: "not authorized, " + string(policy.RequireRole) + " role required"}
	}
	if policy.OwnerParam != "" && principal.Role != domain.RoleAdmin && principal.UserID != ownerID {
		return Decision{Code: DecisionForbidden, Reason: "not authorized for this resource"}
	}
	return Decision{Code: DecisionAllow}
}

// Middleware validates bearer tokens and enforces policies.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware around a token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Require returns a handler enforcing the given policy. Missing and invalid
// tokens are distinct 401s; a valid token with the wrong role or ownership
// is a 403.
func (m *Middleware) Require(policy Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("not authorized, token missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.NewUnauthorized("not authorized, malformed authorization header")
		}

		claims, err := m.tokens.ParseToken(parts[1])
		if err != nil {
			return apperrors.NewUnauthorized("not authorized, token failed")
		}

		principal := &Principal{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   claims.Role,
		}

		ownerID := ""
		if policy.OwnerParam != "" {
			ownerID = c.Params(policy.OwnerParam)
		}

		switch decision := Evaluate(principal, policy, ownerID); decision.Code {
		case DecisionAllow:
		case DecisionForbidden:
			return apperrors.NewForbidden(decision.Reason)
		default:
			return apperrors.NewUnauthorized(decision.Reason)
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
