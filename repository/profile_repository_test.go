package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack/repository/testutil"
	"blackjack/service"
)

func TestProfileRepository_GetByClientID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProfileRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown client", func(t *testing.T) {
		profile, err := repo.GetByClientID(ctx, "missing-client")
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("existing client", func(t *testing.T) {
		created, err := repo.Create(ctx, "client-a", 500)
		require.NoError(t, err)

		profile, err := repo.GetByClientID(ctx, "client-a")
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, "client-a", profile.ClientID)
		assert.Equal(t, int64(500), profile.Chips)
		assert.Equal(t, created.CreatedAt, profile.CreatedAt)
	})
}

func TestProfileRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProfileRepository(testDB.DB)
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		profile, err := repo.Create(ctx, "client-b", 500)
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, "client-b", profile.ClientID)
		assert.Equal(t, int64(500), profile.Chips)
		assert.False(t, profile.CreatedAt.IsZero())
		assert.False(t, profile.UpdatedAt.IsZero())
	})

	t.Run("duplicate client ID", func(t *testing.T) {
		_, err := repo.Create(ctx, "client-c", 500)
		require.NoError(t, err)

		_, err = repo.Create(ctx, "client-c", 500)
		assert.Error(t, err)
	})

	t.Run("negative starting balance rejected by schema", func(t *testing.T) {
		_, err := repo.Create(ctx, "client-d", -5)
		assert.Error(t, err)
	})
}

func TestProfileRepository_IncrementChips(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProfileRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, "client-e", 500)
	require.NoError(t, err)

	t.Run("positive delta", func(t *testing.T) {
		chips, err := repo.IncrementChips(ctx, "client-e", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(510), chips)
	})

	t.Run("negative delta", func(t *testing.T) {
		chips, err := repo.IncrementChips(ctx, "client-e", -30)
		require.NoError(t, err)
		assert.Equal(t, int64(480), chips)
	})

	t.Run("zero delta reads current balance", func(t *testing.T) {
		chips, err := repo.IncrementChips(ctx, "client-e", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(480), chips)
	})

	t.Run("overdraw rejected", func(t *testing.T) {
		_, err := repo.IncrementChips(ctx, "client-e", -481)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInsufficientChips)

		profile, err := repo.GetByClientID(ctx, "client-e")
		require.NoError(t, err)
		assert.Equal(t, int64(480), profile.Chips, "balance must be unchanged after a rejected overdraw")
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := repo.IncrementChips(ctx, "missing-client", 10)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrInsufficientChips)
	})
}

// Concurrent settlements for the same client must not lose updates; each
// increment is a single atomic UPDATE.
func TestProfileRepository_IncrementChipsConcurrent(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProfileRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, "client-f", 1000)
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		delta := int64(10)
		if i%2 == 1 {
			delta = -10
		}
		go func(delta int64) {
			defer wg.Done()
			_, err := repo.IncrementChips(ctx, "client-f", delta)
			assert.NoError(t, err)
		}(delta)
	}
	wg.Wait()

	profile, err := repo.GetByClientID(ctx, "client-f")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), profile.Chips)
}
