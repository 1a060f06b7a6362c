package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
	"github.com/mbenaiss/whatsapp-helpdesk/session"
)

// DB stores session states in SQLite. With the default in-memory DSN nothing outlives
// the process.
type DB interface {
	session.Store
	session.Expirer
}

type db struct {
	db *sql.DB
}

// NewDB opens the SQLite database at dsn and creates the sessions table
func NewDB(ctx context.Context, dsn string) (DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %v", err)
	}

	// an in-memory database lives as long as its last connection
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	db := &db{conn}
	if err := db.initDB(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	return db, nil
}

func (s *db) initDB(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);`)
	if err != nil {
		return fmt.Errorf("failed to create updated_at index: %v", err)
	}

	return nil
}

func (s *db) Close() error {
	return s.db.Close()
}

// Load returns the state stored for a session
func (s *db) Load(ctx context.Context, id string) (*dashboard.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT state FROM sessions WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var st dashboard.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &st, nil
}

// Save stores the state of a session
func (s *db) Save(ctx context.Context, id string, st *dashboard.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO sessions (id, state, updated_at) VALUES (?, ?, ?)",
		id, string(data), time.Now().UTC(),
	)
	return err
}

// Delete removes a session
func (s *db) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	return err
}

// Count returns the number of stored sessions
func (s *db) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}

// Expire removes sessions not updated since olderThan
func (s *db) Expire(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE updated_at < ?", olderThan.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
