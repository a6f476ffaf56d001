package seed

import (
	"context"
	"testing"

	"stayscape/config"
	"stayscape/internal/domain/repository"
	"stayscape/internal/infra/persistence/memory"
	mockService "stayscape/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	properties := memory.NewPropertyRepository(store)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("secret").Return("hashed", nil).Once()

	cfg := &config.SeedConfig{Enabled: true, HostUsername: "demo-host", HostPassword: "secret"}

	created, err := Run(ctx, cfg, users, properties, hasher)
	require.NoError(t, err)
	assert.Equal(t, 8, created)

	host, err := users.FindUserByUsername(ctx, "demo-host")
	require.NoError(t, err)
	assert.Equal(t, "hashed", host.PasswordHash)

	listed, err := properties.ListProperties(ctx, repository.PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 8)
	for _, p := range listed {
		assert.Equal(t, host.ID, p.HostID)
		assert.Nil(t, p.Rating, p.Title)
		assert.Zero(t, p.ReviewCount)
		assert.True(t, p.HasCoordinates(), p.Title)
	}

	t.Run("second run leaves the store alone", func(t *testing.T) {
		created, err := Run(ctx, cfg, users, properties, hasher)
		require.NoError(t, err)
		assert.Zero(t, created)
	})
}

func TestRun_ReusesExistingHost(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	hasher := mockService.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("secret").Return("hashed", nil).Once()

	cfg := &config.SeedConfig{HostUsername: "demo-host", HostPassword: "secret"}
	first, err := ensureHost(ctx, cfg, users, hasher)
	require.NoError(t, err)

	again, err := ensureHost(ctx, cfg, users, hasher)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestCatalogue_ReturnsFreshCopies(t *testing.T) {
	a := catalogue()
	a[0].Title = "changed"

	assert.NotEqual(t, "changed", catalogue()[0].Title)
}
