// internal/store/postgres/settings.go
package postgres

import (
	"context"
	"database/sql"

	apperrors "sabi-consults/internal/common/errors"
)

type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM site_settings`)
	if err != nil {
		return nil, apperrors.NewStorageError("settings.get_all", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, apperrors.NewStorageError("settings.get_all", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("settings.get_all", err)
	}
	return values, nil
}

func (s *SettingsStore) SetAll(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("settings.set_all", err)
	}
	defer tx.Rollback()

	for key, value := range values {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
		if err != nil {
			return apperrors.NewStorageError("settings.set_all", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("settings.set_all", err)
	}
	return nil
}
