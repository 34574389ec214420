// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AddItem persists a new item, filling in ID, timestamp and defaults.
func (s *SQLiteStore) AddItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.AddedAt == 0 {
		item.AddedAt = time.Now().UnixNano()
	}
	if item.Category == "" {
		item.Category = "uncategorized"
	}
	if item.Quantity == "" {
		item.Quantity = "1"
	}
	if item.Priority == "" {
		item.Priority = models.PriorityNormal
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, owner_id, name, category, quantity, priority, completed, added_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		item.ID, item.OwnerID, item.Name, item.Category, item.Quantity, string(item.Priority), item.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// ListItems retrieves the owner's items with the documented ordering.
func (s *SQLiteStore) ListItems(ctx context.Context, ownerID string, includeCompleted bool) ([]models.Item, error) {
	query := `SELECT id, owner_id, name, category, quantity, priority, completed, added_at, completed_at
		FROM items WHERE owner_id = ? AND completed = 0
		ORDER BY category ASC, added_at DESC, rowid DESC`
	if includeCompleted {
		query = `SELECT id, owner_id, name, category, quantity, priority, completed, added_at, completed_at
			FROM items WHERE owner_id = ?
			ORDER BY completed ASC, category ASC, added_at DESC, rowid DESC`
	}

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var completed int
		var completedAt sql.NullInt64
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Category,
			&item.Quantity, &item.Priority, &completed, &item.AddedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Completed = completed != 0
		if completedAt.Valid {
			item.CompletedAt = completedAt.Int64
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// CountOpen returns the number of open items for the owner.
func (s *SQLiteStore) CountOpen(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE owner_id = ? AND completed = 0",
		ownerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open items: %w", err)
	}
	return count, nil
}

// CompleteFirstMatch marks the first open item whose name contains the
// token (case-insensitive) as completed. Returns ok=false when no open
// item matches.
func (s *SQLiteStore) CompleteFirstMatch(ctx context.Context, ownerID, token string) (string, bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`UPDATE items SET completed = 1, completed_at = ?
		 WHERE id = (
		     SELECT id FROM items
		     WHERE owner_id = ? AND completed = 0
		       AND instr(lower(name), lower(?)) > 0
		     ORDER BY added_at ASC, rowid ASC
		     LIMIT 1
		 )
		 RETURNING name`,
		time.Now().UnixNano(), ownerID, token,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to complete item: %w", err)
	}
	return name, true, nil
}

// ClearOpen deletes all open items for the owner.
func (s *SQLiteStore) ClearOpen(ctx context.Context, ownerID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM items WHERE owner_id = ? AND completed = 0",
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear open items: %w", err)
	}
	return nil
}

// AddPlace persists a new place, filling in ID and timestamp.
func (s *SQLiteStore) AddPlace(ctx context.Context, place *models.Place) error {
	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	if place.CreatedAt == 0 {
		place.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO places (id, owner_id, name, latitude, longitude, radius_meters, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		place.ID, place.OwnerID, place.Name, place.Latitude, place.Longitude, place.RadiusMeters, place.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}
	return nil
}

// ListPlaces retrieves the owner's places in insertion order.
func (s *SQLiteStore) ListPlaces(ctx context.Context, ownerID string) ([]models.Place, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, latitude, longitude, radius_meters, created_at
		 FROM places WHERE owner_id = ? ORDER BY rowid ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var p models.Place
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Latitude, &p.Longitude, &p.RadiusMeters, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}
	return places, nil
}
