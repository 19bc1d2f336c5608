package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avc-dev/terabis-bot/internal/config/db"
	"github.com/avc-dev/terabis-bot/internal/model"
)

// DatabaseStore реализует Store поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

// UpsertAccount создает или обновляет учетную запись пользователя
func (ds *DatabaseStore) UpsertAccount(ctx context.Context, account model.UserAccount) error {
	query := `
		INSERT INTO accounts (user_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = now()
	`

	_, err := ds.pool.Exec(ctx, query, int64(account.UserID), account.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	return nil
}

// GetCredential читает сохраненный ключ API пользователя
func (ds *DatabaseStore) GetCredential(ctx context.Context, userID model.UserID) (model.APIKey, error) {
	var apiKey string

	query := `
		SELECT api_key
		FROM credentials
		WHERE user_id = $1
	`

	err := ds.pool.QueryRow(ctx, query, int64(userID)).Scan(&apiKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	return model.APIKey(apiKey), nil
}

// SetCredential сохраняет ключ, перезаписывая существующий
// Атомарность upsert по user_id - единственная нужная гарантия консистентности
func (ds *DatabaseStore) SetCredential(ctx context.Context, userID model.UserID, key model.APIKey) error {
	query := `
		INSERT INTO credentials (user_id, api_key)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET api_key = EXCLUDED.api_key, updated_at = now()
	`

	_, err := ds.pool.Exec(ctx, query, int64(userID), string(key))
	if err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}

	return nil
}

// DeleteCredential удаляет ключ и сообщает, существовал ли он
func (ds *DatabaseStore) DeleteCredential(ctx context.Context, userID model.UserID) (bool, error) {
	query := `
		DELETE FROM credentials
		WHERE user_id = $1
	`

	tag, err := ds.pool.Exec(ctx, query, int64(userID))
	if err != nil {
		return false, fmt.Errorf("failed to delete credential: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListAllUsers возвращает идентификаторы всех известных пользователей
func (ds *DatabaseStore) ListAllUsers(ctx context.Context) ([]model.UserID, error) {
	query := `
		SELECT user_id
		FROM accounts
		ORDER BY user_id
	`

	return ds.listIDs(ctx, query)
}

// ListCredentialedUsers возвращает идентификаторы пользователей с подключенным ключом
func (ds *DatabaseStore) ListCredentialedUsers(ctx context.Context) ([]model.UserID, error) {
	query := `
		SELECT user_id
		FROM credentials
		ORDER BY user_id
	`

	return ds.listIDs(ctx, query)
}

func (ds *DatabaseStore) listIDs(ctx context.Context, query string) ([]model.UserID, error) {
	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []model.UserID
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, model.UserID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return ids, nil
}
