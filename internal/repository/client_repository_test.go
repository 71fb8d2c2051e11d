package repository_test

import (
	"context"
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClientRepository_FindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()
	created := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "Ana@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClientRepository_GetByIDPreloadsRequests(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusPending)
	testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLineDemo, domain.StatusPending)

	found, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, found.Requests, 2)
}

func TestClientRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()
	testutil.CreateTestClient(t, db, "Ana Pérez", "ana@example.com")
	testutil.CreateTestClient(t, db, "Luis Gómez", "luis@example.com")

	clients, total, err := repo.List(ctx, 1, 10, "luis")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, clients, 1)
	assert.Equal(t, "luis@example.com", clients[0].Email)
}
