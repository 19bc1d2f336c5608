package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// UpsertAccount создает или обновляет учетную запись
// Идемпотентна; вызывающий код трактует ошибку как некритичную
func (r *Repository) UpsertAccount(ctx context.Context, userID model.UserID, displayName string) error {
	err := r.underlying.UpsertAccount(ctx, model.UserAccount{
		UserID:      userID,
		DisplayName: displayName,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	return nil
}
