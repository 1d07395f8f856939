// Package store persists the budget snapshot in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"bcalc/internal/budget"
	"bcalc/internal/model"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite-backed snapshot store.
type Store struct {
	db            *sql.DB
	defaultMonths int
}

// DefaultPath returns the XDG data path for the budget database.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "bcalc", "budget.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, defaultMonths: budget.DefaultTimeFrameMonths}, nil
}

// SetDefaultTimeFrame sets the time frame a fresh or repaired snapshot
// falls back to, normally the configured default. Non-positive values are
// ignored.
func (s *Store) SetDefaultTimeFrame(months int) {
	if months > 0 {
		s.defaultMonths = months
	}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted snapshot. Missing pieces fall back field-by-field
// to the seed defaults: a missing snapshot row yields empty income and the
// default time frame, an empty categories table yields the seed categories.
func (s *Store) Load() (model.Snapshot, error) {
	snap := model.Snapshot{
		Income:          "",
		Amounts:         make(map[string]string),
		Colors:          make(map[string]string),
		TimeFrameMonths: s.defaultMonths,
	}

	row := s.db.QueryRow("SELECT income, time_frame_months FROM snapshot WHERE id = 1")
	switch err := row.Scan(&snap.Income, &snap.TimeFrameMonths); err {
	case nil, sql.ErrNoRows:
	default:
		return model.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	if snap.TimeFrameMonths <= 0 {
		snap.TimeFrameMonths = s.defaultMonths
	}

	rows, err := s.db.Query("SELECT id, amount, color FROM categories ORDER BY position")
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, amount, color string
		if err := rows.Scan(&id, &amount, &color); err != nil {
			return model.Snapshot{}, fmt.Errorf("scanning category: %w", err)
		}
		snap.Amounts[id] = amount
		snap.Colors[id] = color
		snap.Order = append(snap.Order, id)
	}
	if err := rows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("reading categories: %w", err)
	}

	// At least one category must always exist.
	if len(snap.Order) == 0 {
		seed := budget.DefaultSnapshot()
		snap.Amounts = seed.Amounts
		snap.Colors = seed.Colors
		snap.Order = seed.Order
	}

	return snap, nil
}

// Save writes the full snapshot in one transaction. On failure nothing is
// written and the caller's in-memory snapshot is untouched.
func (s *Store) Save(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT OR REPLACE INTO snapshot (id, income, time_frame_months) VALUES (1, ?, ?)`,
		snap.Income, snap.TimeFrameMonths)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}
	for pos, id := range snap.Order {
		_, err := tx.Exec(`INSERT INTO categories (id, amount, color, position) VALUES (?, ?, ?, ?)`,
			id, snap.Amounts[id], snap.Colors[id], pos)
		if err != nil {
			return fmt.Errorf("writing category %q: %w", id, err)
		}
	}

	return tx.Commit()
}

// Clear discards all persisted state. The next Load returns the defaults.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM categories"); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM snapshot"); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return tx.Commit()
}
