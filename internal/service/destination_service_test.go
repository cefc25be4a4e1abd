package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/gateway"
	"github.com/spec-kit/travel-api/internal/repository/memory"
)

func newDestinationService(ml gateway.MLClient) (*DestinationService, *memory.DestinationRepository) {
	dests := memory.NewDestinationRepository()
	return NewDestinationService(dests, ml, zap.NewNop()), dests
}

func TestDestinationBulkAdd_DeduplicatesByName(t *testing.T) {
	svc, dests := newDestinationService(nil)
	ctx := context.Background()

	require.NoError(t, dests.Create(ctx, &domain.Destination{Name: "Bromo"}))

	saved, err := svc.BulkAdd(ctx, []DestinationInput{
		{Name: "Bromo", City: "Probolinggo"},
		{Name: "Ijen", City: "Banyuwangi"},
		{Name: "Ijen", City: "Banyuwangi"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	all, err := dests.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDestinationBulkAdd_RequiresName(t *testing.T) {
	svc, _ := newDestinationService(nil)

	_, err := svc.BulkAdd(context.Background(), []DestinationInput{{Name: "  "}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))
}

func TestDestinationSync_InsertsNonStrictly(t *testing.T) {
	ml := &fakeMLClient{destinations: []gateway.MLDestination{
		{Name: "Bromo", Category: "Alam", City: "Probolinggo", Rating: 4.5},
		{Name: "Bromo", Category: "Alam", City: "Probolinggo"},
		{Name: "", City: "Nowhere"},
		{Name: "Ijen", Category: "Alam", City: "Banyuwangi"},
	}}
	svc, dests := newDestinationService(ml)
	ctx := context.Background()

	inserted, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	all, err := dests.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDestinationSync_UpstreamFailure(t *testing.T) {
	ml := &fakeMLClient{err: errors.New("connection refused")}
	svc, _ := newDestinationService(ml)

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpStatus(err))
}

func TestDestinationListByCategory(t *testing.T) {
	svc, dests := newDestinationService(nil)
	ctx := context.Background()

	require.NoError(t, dests.Create(ctx, &domain.Destination{Name: "Bromo", CategoryType: "Alam"}))
	require.NoError(t, dests.Create(ctx, &domain.Destination{Name: "Borobudur", CategoryType: "Budaya"}))

	matched, err := svc.ListByCategory(ctx, "Alam")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Bromo", matched[0].Name)

	_, err = svc.ListByCategory(ctx, "Bahari")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestDestinationDeleteAll(t *testing.T) {
	svc, dests := newDestinationService(nil)
	ctx := context.Background()

	require.NoError(t, dests.Create(ctx, &domain.Destination{Name: "Bromo"}))
	require.NoError(t, dests.Create(ctx, &domain.Destination{Name: "Ijen"}))

	count, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A second wipe has nothing to remove.
	_, err = svc.DeleteAll(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestDestinationGet_Unknown(t *testing.T) {
	svc, _ := newDestinationService(nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}
