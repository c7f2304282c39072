package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const preferencesSchema = `
CREATE TABLE IF NOT EXISTS preferences (
	session_id TEXT PRIMARY KEY,
	theme      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// PreferenceStore persists per-session display preferences
type PreferenceStore interface {
	GetTheme(ctx context.Context, session string) (Theme, error)
	SetTheme(ctx context.Context, session string, theme Theme) error
}

// SQLiteStore keeps preferences in a SQLite database
type SQLiteStore struct {
	db  *sql.DB
	log *logrus.Entry
	now func() time.Time
}

// OpenStore opens (creating if needed) the preference database at path
func OpenStore(ctx context.Context, path string, log *logrus.Entry) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, preferencesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}

	log.WithField("path", path).Info("preference store ready")
	return &SQLiteStore{db: db, log: log, now: time.Now}, nil
}

// GetTheme returns the stored theme, or ErrNotFound
func (s *SQLiteStore) GetTheme(ctx context.Context, session string) (Theme, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT theme FROM preferences WHERE session_id = ?`, session).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}

	theme, err := ParseTheme(raw)
	if err != nil {
		s.log.WithError(err).WithField("session", session).Warn("ignoring stored theme")
		return "", ErrNotFound
	}
	return theme, nil
}

// SetTheme stores the theme for session, replacing any previous value
func (s *SQLiteStore) SetTheme(ctx context.Context, session string, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (session_id, theme, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at`,
		session, string(theme), s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
