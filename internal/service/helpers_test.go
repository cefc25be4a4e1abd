package service

import (
	"context"
	"encoding/json"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/travel-api/internal/auth"
	"github.com/spec-kit/travel-api/internal/config"
	"github.com/spec-kit/travel-api/internal/gateway"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret",
			UserTokenTTLMinutes:  60,
			AdminTokenTTLMinutes: 5,
			BcryptCost:           bcrypt.MinCost,
		},
	}
}

type fakeGoogleVerifier struct {
	profile *auth.GoogleProfile
	err     error
}

func (f *fakeGoogleVerifier) Verify(context.Context, string) (*auth.GoogleProfile, error) {
	return f.profile, f.err
}

type fakeMLClient struct {
	recommendation json.RawMessage
	destinations   []gateway.MLDestination
	err            error
}

func (f *fakeMLClient) Predict(context.Context, string) (json.RawMessage, error) {
	return f.recommendation, f.err
}

func (f *fakeMLClient) FetchDestinations(context.Context) ([]gateway.MLDestination, error) {
	return f.destinations, f.err
}

func httpStatus(err error) int {
	return apperrors.ToDomainError(err).HTTPStatus
}
