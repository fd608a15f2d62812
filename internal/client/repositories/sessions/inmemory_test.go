package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_PutGetClear(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Put(ctx, testSession("tok", time.Now().Add(time.Hour))))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok", got.AccessToken)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemory_LazyExpiry(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testSession("stale", time.Now().Add(-time.Second))))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "no resurrection")
}

func TestInMemory_GetReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testSession("tok", time.Now().Add(time.Hour))))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	got.AccessToken = "mutated"

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", again.AccessToken)
}
