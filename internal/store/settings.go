package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// lastQueryKey is the settings key for the last entered query text.
const lastQueryKey = "last_query"

// LastQuery returns the persisted query text, or "" when none was saved.
func (s *Store) LastQuery(ctx context.Context) (string, error) {
	return s.setting(ctx, lastQueryKey)
}

// SaveLastQuery persists the query text. Empty text is stored as-is and
// reads back as "no filter".
func (s *Store) SaveLastQuery(ctx context.Context, text string) error {
	return s.putSetting(ctx, lastQueryKey, text)
}

func (s *Store) setting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = ?
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) putSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("write setting %q: %w", key, err)
	}
	return nil
}
