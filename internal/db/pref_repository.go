package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Preference keys persisted for the theme-state holder.
const (
	PrefColorTheme = "color_theme"
	PrefDarkMode   = "dark_mode"
)

// PrefRepository handles the persisted key/value theme preferences.
type PrefRepository struct {
	db *DB
}

// NewPrefRepository creates a new PrefRepository.
func NewPrefRepository(db *DB) *PrefRepository {
	return &PrefRepository{db: db}
}

// Get returns the value for key; ok is false when the key is unset.
func (r *PrefRepository) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read pref %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores key=value, replacing any previous value.
func (r *PrefRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write pref %s: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (r *PrefRepository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM prefs`)
	if err != nil {
		return nil, fmt.Errorf("list prefs: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan pref: %w", err)
		}
		prefs[key] = value
	}
	return prefs, rows.Err()
}

// BoundStore binds a PrefRepository to a context so it can serve as the
// theme-state holder's storage capability, whose operations carry no
// context of their own.
type BoundStore struct {
	repo *PrefRepository
	ctx  context.Context
}

// Bound returns a context-bound view of the repository.
func (r *PrefRepository) Bound(ctx context.Context) *BoundStore {
	return &BoundStore{repo: r, ctx: ctx}
}

// Get implements state.Store.
func (s *BoundStore) Get(key string) (string, bool, error) {
	return s.repo.Get(s.ctx, key)
}

// Set implements state.Store.
func (s *BoundStore) Set(key, value string) error {
	return s.repo.Set(s.ctx, key, value)
}
