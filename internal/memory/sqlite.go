package memory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists memory records in a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the SQLite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate memory database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	if _, err := s.db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS memories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL DEFAULT 'fact',
		content TEXT NOT NULL,
		reasoning TEXT,
		importance REAL NOT NULL DEFAULT 5.0,
		tags TEXT,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_memories_type ON memories(type);
	CREATE INDEX IF NOT EXISTS idx_memories_importance ON memories(importance DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Name identifies the backend.
func (s *SQLiteStore) Name() string { return "sqlite" }

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Insert persists a record.
func (s *SQLiteStore) Insert(ctx context.Context, rec Record) error {
	var reasoning sql.NullString
	if rec.Reasoning != "" {
		reasoning = sql.NullString{String: rec.Reasoning, Valid: true}
	}
	var tags sql.NullString
	if len(rec.Tags) > 0 {
		tags = sql.NullString{String: string(rec.Tags), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO memories (type, content, reasoning, importance, tags)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Type, rec.Content, reasoning, rec.Importance, tags)
	return err
}

// Search returns records matching the query, ordered by importance descending.
// SQLite LIKE is case-insensitive for ASCII, matching the remote ilike filter.
func (s *SQLiteStore) Search(ctx context.Context, q Query) ([]Record, error) {
	sqlStr := `SELECT type, content, importance FROM memories WHERE 1=1`
	var params []interface{}

	if q.Type != "" {
		sqlStr += ` AND type = ?`
		params = append(params, q.Type)
	}
	if q.Text != "" {
		sqlStr += ` AND content LIKE ?`
		params = append(params, "%"+q.Text+"%")
	}

	sqlStr += ` ORDER BY importance DESC LIMIT ?`
	params = append(params, q.Limit)

	rows, err := s.db.QueryContext(ctx, sqlStr, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Type, &r.Content, &r.Importance); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// Delete removes records whose content contains match and returns the count.
func (s *SQLiteStore) Delete(ctx context.Context, match string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE content LIKE ?`, "%"+match+"%")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
