package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/argossea/courier/internal/common"
	"github.com/argossea/courier/internal/dbx"
	"github.com/argossea/courier/internal/models"
	"github.com/argossea/courier/internal/storage/migrations"
)

// collectionKey names the single registry document inside the mailbox
// table. The portal kept everything under one localStorage-style key;
// the table preserves those whole-value get/set semantics.
const collectionKey = "messages"

// SQLiteStore implements Store on top of a mailbox(name, doc) table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a store bound to an already-migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (or creates) the SQLite database at dsn, applies pending
// migrations and returns a ready store. Pass ":memory:" for tests.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Single connection avoids "database is locked" errors and keeps
	// the in-memory DSN pointing at one database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return NewSQLiteStore(db), nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadAll(ctx context.Context) ([]models.Message, error) {
	return loadDoc(ctx, s.db)
}

func (s *SQLiteStore) Append(ctx context.Context, m models.Message) ([]models.Message, error) {
	var updated []models.Message
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := loadDoc(ctx, tx)
		if err != nil {
			return err
		}
		updated = append([]models.Message{m}, current...)
		return saveDoc(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SQLiteStore) ReplaceAll(ctx context.Context, msgs []models.Message) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return saveDoc(ctx, tx, msgs)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM mailbox WHERE name = ?`, collectionKey)
	if err != nil {
		return fmt.Errorf("%w: failed to clear mailbox[%s]: %v", common.ErrPersistence, collectionKey, err)
	}
	return nil
}

func (s *SQLiteStore) Snapshot(ctx context.Context) ([]byte, error) {
	msgs, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize snapshot: %v", common.ErrPersistence, err)
	}
	return doc, nil
}

// loadDoc reads and decodes the registry document. A missing row is an
// empty collection.
func loadDoc(ctx context.Context, q dbx.DBTX) ([]models.Message, error) {
	var doc []byte
	err := q.QueryRowContext(ctx, `SELECT doc FROM mailbox WHERE name = ?`, collectionKey).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read mailbox[%s]: %v", common.ErrPersistence, collectionKey, err)
	}

	var msgs []models.Message
	if err := json.Unmarshal(doc, &msgs); err != nil {
		return nil, fmt.Errorf("%w: corrupt mailbox document: %v", common.ErrPersistence, err)
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}

// saveDoc encodes msgs and upserts the registry document in a single
// statement. This replace is the atomicity boundary for every write.
func saveDoc(ctx context.Context, tx dbx.DBTX, msgs []models.Message) error {
	if msgs == nil {
		msgs = []models.Message{}
	}
	doc, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize mailbox document: %v", common.ErrPersistence, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO mailbox (name, doc) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET doc = excluded.doc
	`, collectionKey, doc)
	if err != nil {
		return fmt.Errorf("%w: failed to write mailbox[%s]: %v", common.ErrPersistence, collectionKey, err)
	}
	return nil
}
