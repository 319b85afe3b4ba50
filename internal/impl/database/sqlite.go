package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS conversation (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	created_by TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS message (
	id TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_message_conversation ON message(conversation_id, created_at);
`

// SQLiteDB wraps the embedded SQLite handle and owns schema creation.
// Timestamps are stored as unix microseconds.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database file at path and ensures
// the schema exists.
func NewSQLiteDB(path string, logger *zap.Logger) (*SQLiteDB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("Failed to open SQLite database", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping SQLite database", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		logger.Error("Failed to create schema", zap.Error(err))
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("Successfully opened SQLite database", zap.String("path", path))

	return &SQLiteDB{db: db}, nil
}

// DB returns the underlying handle for repositories.
func (s *SQLiteDB) DB() *sql.DB {
	return s.db
}

// Kind names the backend for diagnostics.
func (s *SQLiteDB) Kind() string {
	return "sqlite"
}

// Ping verifies the database file is still usable.
func (s *SQLiteDB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collections lists the user tables present in the database.
func (s *SQLiteDB) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
