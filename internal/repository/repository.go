package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
	"github.com/avc-dev/terabis-bot/internal/store"
)

// CredentialCache - необязательный кеш ключей API перед основным хранилищем
// Ошибки кеша не критичны: логируются и проглатываются
type CredentialCache interface {
	GetCredential(ctx context.Context, userID model.UserID) (model.APIKey, error)
	SetCredential(ctx context.Context, userID model.UserID, apiKey model.APIKey) error
	DeleteCredential(ctx context.Context, userID model.UserID) error
}

// Repository оборачивает Store, добавляя кеширование и оборачивание ошибок
type Repository struct {
	underlying store.Store
	cache      CredentialCache
	logger     *zap.Logger
}

// New создает Repository
// cache может быть nil - тогда все чтения идут в хранилище
func New(underlying store.Store, cache CredentialCache, logger *zap.Logger) *Repository {
	return &Repository{
		underlying: underlying,
		cache:      cache,
		logger:     logger,
	}
}
