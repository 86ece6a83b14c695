// Package store provides SQLite persistence for display settings profiles.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store handles database operations.
type Store struct {
	db *sql.DB
}

// Profile represents a named set of persisted display settings.
type Profile struct {
	ID           string
	Name         string
	CreatedAt    time.Time
	LastActiveAt time.Time
}

// Open opens the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_active_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			profile_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile_id, key),
			FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
		);
	`)
	return err
}

// CreateProfile creates a new profile.
func (s *Store) CreateProfile(id, name string) error {
	query := `
		INSERT INTO profiles (id, name, created_at, last_active_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	_, err := s.db.Exec(query, id, name)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// GetProfileByName retrieves a profile by name. It returns nil when no such
// profile exists.
func (s *Store) GetProfileByName(name string) (*Profile, error) {
	query := `
		SELECT id, name, created_at, last_active_at
		FROM profiles
		WHERE name = ?
	`

	var p Profile
	err := s.db.QueryRow(query, name).Scan(
		&p.ID,
		&p.Name,
		&p.CreatedAt,
		&p.LastActiveAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile by name: %w", err)
	}

	return &p, nil
}

// ListProfiles returns profiles ordered by most recent use.
func (s *Store) ListProfiles(limit int) ([]Profile, error) {
	query := `
		SELECT id, name, created_at, last_active_at
		FROM profiles
		ORDER BY last_active_at DESC, name ASC
		LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.LastActiveAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// TouchProfile updates the last_active_at timestamp.
func (s *Store) TouchProfile(id string) error {
	query := `UPDATE profiles SET last_active_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := s.db.Exec(query, id)
	return err
}

// DeleteProfileByName deletes a profile and all its settings.
func (s *Store) DeleteProfileByName(name string) error {
	query := `DELETE FROM profiles WHERE name = ?`
	result, err := s.db.Exec(query, name)
	if err != nil {
		return fmt.Errorf("delete profile by name: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("profile '%s' not found", name)
	}

	return nil
}

// SetSetting stores a setting value for a profile, replacing any previous value.
func (s *Store) SetSetting(profileID, key, value string) error {
	query := `
		INSERT INTO settings (profile_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(profile_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := s.db.Exec(query, profileID, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetSetting retrieves a setting value. ok is false when the key was never set.
func (s *Store) GetSetting(profileID, key string) (value string, ok bool, err error) {
	query := `SELECT value FROM settings WHERE profile_id = ? AND key = ?`
	err = s.db.QueryRow(query, profileID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, true, nil
}

// DeleteSettings removes every setting stored for a profile.
func (s *Store) DeleteSettings(profileID string) error {
	query := `DELETE FROM settings WHERE profile_id = ?`
	_, err := s.db.Exec(query, profileID)
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
