// Package memory provides an in-memory implementation of the storage.Store
// interface for tests and local development. It mirrors the SQLite store's
// ordering and matching semantics.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

type storedItem struct {
	models.Item
	seq int // insertion order, the recency tiebreaker
}

// MemoryStore implements storage.Store with mutex-guarded slices.
type MemoryStore struct {
	mu      sync.Mutex
	items   []storedItem
	places  []models.Place
	nextSeq int
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{}
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// AddItem appends a new item, filling in ID, timestamp and defaults.
func (s *MemoryStore) AddItem(_ context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

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

	s.items = append(s.items, storedItem{Item: *item, seq: s.nextSeq})
	s.nextSeq++
	return nil
}

// ListItems returns the owner's items with the documented ordering.
func (s *MemoryStore) ListItems(_ context.Context, ownerID string, includeCompleted bool) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var selected []storedItem
	for _, it := range s.items {
		if it.OwnerID != ownerID {
			continue
		}
		if !includeCompleted && it.Completed {
			continue
		}
		selected = append(selected, it)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if includeCompleted && a.Completed != b.Completed {
			return !a.Completed // open items first
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.seq > b.seq // most recent first
	})

	items := make([]models.Item, len(selected))
	for i, it := range selected {
		items[i] = it.Item
	}
	return items, nil
}

// CountOpen returns the number of open items for the owner.
func (s *MemoryStore) CountOpen(_ context.Context, ownerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.items {
		if it.OwnerID == ownerID && !it.Completed {
			count++
		}
	}
	return count, nil
}

// CompleteFirstMatch marks the first open item (in insertion order) whose
// name contains the token case-insensitively as completed.
func (s *MemoryStore) CompleteFirstMatch(_ context.Context, ownerID, token string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(token)
	for i := range s.items {
		it := &s.items[i]
		if it.OwnerID != ownerID || it.Completed {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name), needle) {
			it.Completed = true
			it.CompletedAt = time.Now().UnixNano()
			return it.Name, true, nil
		}
	}
	return "", false, nil
}

// ClearOpen deletes all open items for the owner.
func (s *MemoryStore) ClearOpen(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.OwnerID == ownerID && !it.Completed {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return nil
}

// AddPlace appends a new place, filling in ID and timestamp.
func (s *MemoryStore) AddPlace(_ context.Context, place *models.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	if place.CreatedAt == 0 {
		place.CreatedAt = time.Now().Unix()
	}
	s.places = append(s.places, *place)
	return nil
}

// ListPlaces returns the owner's places in insertion order.
func (s *MemoryStore) ListPlaces(_ context.Context, ownerID string) ([]models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var places []models.Place
	for _, p := range s.places {
		if p.OwnerID == ownerID {
			places = append(places, p)
		}
	}
	return places, nil
}
