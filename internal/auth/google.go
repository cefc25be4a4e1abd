package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleProfile carries the identity fields extracted from a verified
// Google ID token.
type GoogleProfile struct {
	Email      string
	Name       string
	GivenName  string
	FamilyName string
}

// GoogleVerifier validates external identity tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleProfile, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier builds a verifier bound to the configured OAuth client id.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("verify google id token: %w", err)
	}

	profile := &GoogleProfile{
		Email:      claimString(payload.Claims, "email"),
		Name:       claimString(payload.Claims, "name"),
		GivenName:  claimString(payload.Claims, "given_name"),
		FamilyName: claimString(payload.Claims, "family_name"),
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("google id token missing email claim")
	}
	return profile, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}
