package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/avc-dev/terabis-bot/internal/model"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Store - хранилище учетных записей и ключей API
// user_id уникален и в таблице аккаунтов, и в таблице ключей
type Store interface {
	UpsertAccount(ctx context.Context, account model.UserAccount) error
	GetCredential(ctx context.Context, userID model.UserID) (model.APIKey, error)
	SetCredential(ctx context.Context, userID model.UserID, key model.APIKey) error
	DeleteCredential(ctx context.Context, userID model.UserID) (bool, error)
	ListAllUsers(ctx context.Context) ([]model.UserID, error)
	ListCredentialedUsers(ctx context.Context) ([]model.UserID, error)
}

// MemoryStore - хранилище в памяти
// Используется в тестах и при запуске без DATABASE_DSN
type MemoryStore struct {
	accounts    map[model.UserID]model.UserAccount
	credentials map[model.UserID]model.APIKey
	mutex       sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:    make(map[model.UserID]model.UserAccount),
		credentials: make(map[model.UserID]model.APIKey),
	}
}

func (s *MemoryStore) UpsertAccount(_ context.Context, account model.UserAccount) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.accounts[account.UserID] = account

	return nil
}

func (s *MemoryStore) GetCredential(_ context.Context, userID model.UserID) (model.APIKey, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key, ok := s.credentials[userID]
	if !ok {
		return "", fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	return key, nil
}

// SetCredential сохраняет ключ, перезаписывая существующий (последняя запись побеждает)
func (s *MemoryStore) SetCredential(_ context.Context, userID model.UserID, key model.APIKey) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.credentials[userID] = key

	return nil
}

// DeleteCredential удаляет ключ и сообщает, существовал ли он
func (s *MemoryStore) DeleteCredential(_ context.Context, userID model.UserID) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.credentials[userID]
	delete(s.credentials, userID)

	return ok, nil
}

func (s *MemoryStore) ListAllUsers(_ context.Context) ([]model.UserID, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]model.UserID, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

func (s *MemoryStore) ListCredentialedUsers(_ context.Context) ([]model.UserID, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]model.UserID, 0, len(s.credentials))
	for id := range s.credentials {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
