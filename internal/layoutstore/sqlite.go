package layoutstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cardtable/facecard"
)

const defaultLocalDBName = "cardtable_local.db"

// SQLiteStore persists layout documents in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStoreFromEnv() (*SQLiteStore, error) {
	dbPath, err := localDatabasePathFromEnv()
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(dbPath)
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, name string, layout facecard.PipLayout) error {
	doc, err := facecard.MarshalLayout(layout)
	if err != nil {
		return err
	}
	nowMs := time.Now().UTC().UnixMilli()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO card_layouts (name, doc, updated_at_ms)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    doc = excluded.doc,
    updated_at_ms = excluded.updated_at_ms
`, name, string(doc), nowMs)
	return err
}

func (s *SQLiteStore) Load(ctx context.Context, name string) (facecard.PipLayout, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `
SELECT doc
FROM card_layouts
WHERE name = ?
`, name).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, err
	}
	return facecard.ParseLayout([]byte(doc))
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS card_layouts (
    name TEXT PRIMARY KEY,
    doc TEXT NOT NULL,
    updated_at_ms INTEGER NOT NULL
)`)
	return err
}

func localDatabasePathFromEnv() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("LAYOUT_DATABASE_PATH")),
		strings.TrimSpace(os.Getenv("LOCAL_DATABASE_PATH")),
	}
	for _, candidate := range candidates {
		if candidate != "" {
			return filepath.Clean(candidate), nil
		}
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "CardTable", defaultLocalDBName), nil
}
