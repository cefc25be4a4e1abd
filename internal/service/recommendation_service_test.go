package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	ml := &fakeMLClient{recommendation: json.RawMessage(`["Bromo","Ijen"]`)}
	svc := NewRecommendationService(ml)

	out, err := svc.Recommend(context.Background(), " Malang ")
	require.NoError(t, err)
	assert.JSONEq(t, `["Bromo","Ijen"]`, string(out))
}

func TestRecommend_EmptyCity(t *testing.T) {
	svc := NewRecommendationService(&fakeMLClient{})

	_, err := svc.Recommend(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestRecommend_UpstreamFailure(t *testing.T) {
	ml := &fakeMLClient{err: errors.New("timeout")}
	svc := NewRecommendationService(ml)

	_, err := svc.Recommend(context.Background(), "Malang")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpStatus(err))
}
