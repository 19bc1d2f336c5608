package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc-dev/terabis-bot/internal/model"
)

func TestSetCredential_Idempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Повторная запись того же ключа не меняет результат
	require.NoError(t, s.SetCredential(ctx, 42, "key-1"))
	require.NoError(t, s.SetCredential(ctx, 42, "key-1"))

	key, err := s.GetCredential(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.APIKey("key-1"), key)
}

func TestSetCredential_Overwrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Повторный connect с новым ключом молча заменяет старый
	require.NoError(t, s.SetCredential(ctx, 42, "old-key"))
	require.NoError(t, s.SetCredential(ctx, 42, "new-key"))

	key, err := s.GetCredential(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.APIKey("new-key"), key)
}

func TestGetCredential_NotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetCredential(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCredential(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Удаление несуществующего ключа - no-op, возвращает false
	existed, err := s.DeleteCredential(ctx, 42)
	require.NoError(t, err)
	assert.False(t, existed)

	require.NoError(t, s.SetCredential(ctx, 42, "key"))

	existed, err = s.DeleteCredential(ctx, 42)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = s.GetCredential(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.UpsertAccount(ctx, model.UserAccount{UserID: 3, DisplayName: "C"}))
	require.NoError(t, s.UpsertAccount(ctx, model.UserAccount{UserID: 1, DisplayName: "A"}))
	require.NoError(t, s.UpsertAccount(ctx, model.UserAccount{UserID: 2, DisplayName: "B"}))
	require.NoError(t, s.SetCredential(ctx, 2, "key"))

	all, err := s.ListAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.UserID{1, 2, 3}, all)

	credentialed, err := s.ListCredentialedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.UserID{2}, credentialed)
}

func TestUpsertAccount_Idempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.UpsertAccount(ctx, model.UserAccount{UserID: 7, DisplayName: "old"}))
	require.NoError(t, s.UpsertAccount(ctx, model.UserAccount{UserID: 7, DisplayName: "new"}))

	all, err := s.ListAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.UserID{7}, all)
}
