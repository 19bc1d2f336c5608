package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// ListAllUsers возвращает всех известных пользователей для рассылки
func (r *Repository) ListAllUsers(ctx context.Context) ([]model.UserID, error) {
	ids, err := r.underlying.ListAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return ids, nil
}

// ListCredentialedUsers возвращает пользователей с подключенным ключом
func (r *Repository) ListCredentialedUsers(ctx context.Context) ([]model.UserID, error) {
	ids, err := r.underlying.ListCredentialedUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentialed users: %w", err)
	}
	return ids, nil
}
