package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/cache"
	"github.com/avc-dev/terabis-bot/internal/model"
	"github.com/avc-dev/terabis-bot/internal/store"
)

// fakeCache - кеш в памяти для проверки read-through и инвалидации
type fakeCache struct {
	entries map[model.UserID]model.APIKey
	gets    int
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[model.UserID]model.APIKey)}
}

func (f *fakeCache) GetCredential(_ context.Context, userID model.UserID) (model.APIKey, error) {
	f.gets++
	key, ok := f.entries[userID]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return key, nil
}

func (f *fakeCache) SetCredential(_ context.Context, userID model.UserID, apiKey model.APIKey) error {
	f.sets++
	f.entries[userID] = apiKey
	return nil
}

func (f *fakeCache) DeleteCredential(_ context.Context, userID model.UserID) error {
	f.deletes++
	delete(f.entries, userID)
	return nil
}

func TestGetCredential_ReadThrough(t *testing.T) {
	ctx := context.Background()
	memStore := store.NewMemoryStore()
	fake := newFakeCache()
	repo := New(memStore, fake, zap.NewNop())

	require.NoError(t, memStore.SetCredential(ctx, 42, "key-42"))

	// Первое чтение - промах кеша, поход в хранилище, запись в кеш
	key, err := repo.GetCredential(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.APIKey("key-42"), key)
	assert.Equal(t, 1, fake.sets)

	// Второе чтение обслуживается кешем
	key, err = repo.GetCredential(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.APIKey("key-42"), key)
	assert.Equal(t, 2, fake.gets)
	assert.Equal(t, 1, fake.sets)
}

func TestSetCredential_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	memStore := store.NewMemoryStore()
	fake := newFakeCache()
	repo := New(memStore, fake, zap.NewNop())

	require.NoError(t, repo.SetCredential(ctx, 42, "old"))
	assert.Equal(t, 1, fake.deletes)

	// Прогреваем кеш и меняем ключ: кеш должен быть сброшен
	_, err := repo.GetCredential(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, repo.SetCredential(ctx, 42, "new"))

	key, err := repo.GetCredential(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.APIKey("new"), key)
}

func TestDeleteCredential_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	memStore := store.NewMemoryStore()
	fake := newFakeCache()
	repo := New(memStore, fake, zap.NewNop())

	require.NoError(t, repo.SetCredential(ctx, 42, "key"))
	_, err := repo.GetCredential(ctx, 42)
	require.NoError(t, err)

	existed, err := repo.DeleteCredential(ctx, 42)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = repo.GetCredential(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetCredential_NoCache(t *testing.T) {
	ctx := context.Background()
	memStore := store.NewMemoryStore()
	repo := New(memStore, nil, zap.NewNop())

	require.NoError(t, repo.SetCredential(ctx, 1, "key"))

	key, err := repo.GetCredential(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.APIKey("key"), key)
}
