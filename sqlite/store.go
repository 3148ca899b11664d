package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/storelist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ storelist.StoreWriter = (*StoreService)(nil)

// Run is one recorded extraction run.
type Run struct {
	ID        string
	Source    string
	CreatedAt time.Time
	Count     int
}

// StoreService records extraction runs and their stores.
type StoreService struct {
	db     *DB
	source string
	lastID string
}

// NewStoreService creates a new StoreService.
// source is stored with every run to record which file or directory it read.
func NewStoreService(db *DB, source string) *StoreService {
	return &StoreService{db: db, source: source}
}

// LastRunID returns the ID of the most recent run written by this service.
func (s *StoreService) LastRunID() string {
	return s.lastID
}

// WriteStores records stores as a new run in a single transaction.
func (s *StoreService) WriteStores(ctx context.Context, stores []storelist.Store) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, created_at)
		VALUES (?, ?, ?)
	`, id, s.source, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stores (run_id, position, file, name, address)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, store := range stores {
		if _, err := stmt.ExecContext(ctx, id, i, store.File, store.Name, store.Address); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.lastID = id
	return nil
}

// FindStores returns the stores of a run in their original order.
// Returns ENOTFOUND if the run does not exist.
func (s *StoreService) FindStores(ctx context.Context, runID string) ([]storelist.Store, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storelist.Errorf(storelist.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT file, name, address
		FROM stores
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]storelist.Store, 0)
	for rows.Next() {
		var store storelist.Store
		if err := rows.Scan(&store.File, &store.Name, &store.Address); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}

// FindRuns returns all recorded runs, newest first.
func (s *StoreService) FindRuns(ctx context.Context) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.source, r.created_at, COUNT(s.position)
		FROM runs r
		LEFT JOIN stores s ON s.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Source, &createdAt, &run.Count); err != nil {
			return nil, err
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
