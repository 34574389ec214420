// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/shopassist/internal/models"
)

// Store defines the interface for shopping-list and place storage.
// This abstraction allows swapping storage backends (SQLite, in-memory,
// PostgreSQL, etc.) without changing the service layer.
//
// Every operation is scoped to the owner it is given; implementations must
// never read or mutate records belonging to a different owner. Errors
// returned by a Store are infrastructure errors (broken connection,
// malformed query); "nothing matched" is expressed through empty results,
// not errors.
type Store interface {
	// AddItem persists a new item. Missing ID, AddedAt, Category,
	// Quantity and Priority fields are populated with defaults.
	AddItem(ctx context.Context, item *models.Item) error

	// ListItems returns the owner's items. When includeCompleted is
	// false only open items are returned, ordered by category ascending
	// then most-recently-added first. When true, completed items come
	// last, with the same category/recency ordering inside each group.
	ListItems(ctx context.Context, ownerID string, includeCompleted bool) ([]models.Item, error)

	// CountOpen returns the number of the owner's open items.
	CountOpen(ctx context.Context, ownerID string) (int, error)

	// CompleteFirstMatch marks as completed the first open item (in
	// insertion order) whose name contains token case-insensitively,
	// and returns its stored name. ok is false when nothing matched;
	// that is not an error.
	CompleteFirstMatch(ctx context.Context, ownerID, token string) (name string, ok bool, err error)

	// ClearOpen deletes all of the owner's open items. Completed items
	// and other owners' items are untouched. A no-op when nothing is
	// open.
	ClearOpen(ctx context.Context, ownerID string) error

	// AddPlace persists a new place. Missing ID and CreatedAt fields are
	// populated. Names are not deduplicated; registering the same name
	// twice creates two records.
	AddPlace(ctx context.Context, place *models.Place) error

	// ListPlaces returns the owner's places in insertion order.
	ListPlaces(ctx context.Context, ownerID string) ([]models.Place, error)

	// Close releases any resources held by the store.
	Close() error
}
