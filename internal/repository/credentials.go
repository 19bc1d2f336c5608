package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/cache"
	"github.com/avc-dev/terabis-bot/internal/model"
)

// GetCredential возвращает ключ API пользователя
// Отсутствие ключа - не ошибка вызывающего потока: проверяется через store.ErrNotFound
func (r *Repository) GetCredential(ctx context.Context, userID model.UserID) (model.APIKey, error) {
	if r.cache != nil {
		key, err := r.cache.GetCredential(ctx, userID)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("credential cache read failed",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
		}
	}

	key, err := r.underlying.GetCredential(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.SetCredential(ctx, userID, key); err != nil {
			r.logger.Warn("credential cache write failed",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
		}
	}

	return key, nil
}

// SetCredential сохраняет ключ с семантикой перезаписи
func (r *Repository) SetCredential(ctx context.Context, userID model.UserID, key model.APIKey) error {
	if err := r.underlying.SetCredential(ctx, userID, key); err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}

	r.invalidate(ctx, userID)

	return nil
}

// DeleteCredential удаляет ключ и сообщает, существовал ли он
func (r *Repository) DeleteCredential(ctx context.Context, userID model.UserID) (bool, error) {
	existed, err := r.underlying.DeleteCredential(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete credential: %w", err)
	}

	r.invalidate(ctx, userID)

	return existed, nil
}

// invalidate сбрасывает запись кеша после изменения хранилища
func (r *Repository) invalidate(ctx context.Context, userID model.UserID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeleteCredential(ctx, userID); err != nil {
		r.logger.Warn("credential cache invalidation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}
