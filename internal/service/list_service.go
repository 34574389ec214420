package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/shopassist/internal/category"
	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/storage"
)

// SplitItems breaks raw item text on the separators the assistant accepts:
// ASCII and fullwidth commas, the ideographic comma, and the conjunction
// と. Tokens are trimmed and empty tokens dropped.
func SplitItems(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ',', '，', '、', 'と':
			return true
		}
		return false
	})

	tokens := parts[:0]
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ListService owns the per-user shopping list operations.
type ListService struct {
	store storage.Store
}

// NewListService creates a ListService with the given storage backend.
func NewListService(store storage.Store) *ListService {
	return &ListService{store: store}
}

// AddItems splits rawText into item names, categorizes each and inserts
// them in token order. Duplicate names become separate items; there is no
// merging.
func (s *ListService) AddItems(ctx context.Context, ownerID, rawText string) (*models.AddResult, error) {
	tokens := SplitItems(rawText)

	added := make([]models.AddedItem, 0, len(tokens))
	for _, name := range tokens {
		item := &models.Item{
			OwnerID:  ownerID,
			Name:     name,
			Category: category.Categorize(name),
		}
		if err := s.store.AddItem(ctx, item); err != nil {
			return nil, fmt.Errorf("add item %q: %w", name, err)
		}
		added = append(added, models.AddedItem{Name: item.Name, Category: item.Category})
	}

	total, err := s.store.CountOpen(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count open items: %w", err)
	}

	slog.Debug("items added", "owner_id", ownerID, "count", len(added), "total_open", total)
	return &models.AddResult{
		Added:     added,
		TotalOpen: total,
		Message:   fmt.Sprintf("added %d item(s), %d open", len(added), total),
	}, nil
}

// ListItems returns the owner's items grouped by category. Items without a
// category fall under "uncategorized"; the store's fallback should prevent
// that, but the grouping handles it anyway.
func (s *ListService) ListItems(ctx context.Context, ownerID string, includeCompleted bool) (*models.ListResult, error) {
	items, err := s.store.ListItems(ctx, ownerID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	grouped := make(map[string][]models.GroupedItem)
	var categories []string
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = category.Uncategorized
		}
		if _, seen := grouped[cat]; !seen {
			categories = append(categories, cat)
		}
		grouped[cat] = append(grouped[cat], models.GroupedItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Completed: item.Completed,
		})
	}

	return &models.ListResult{
		Items:      items,
		Grouped:    grouped,
		TotalCount: len(items),
		Categories: categories,
	}, nil
}

// CompleteItems splits rawText the same way as AddItems and, for each
// token, completes the first open item whose name contains it. Tokens that
// match nothing are silently skipped; a token matching several open items
// completes exactly one.
func (s *ListService) CompleteItems(ctx context.Context, ownerID, rawText string) (*models.CompleteResult, error) {
	tokens := SplitItems(rawText)

	var completed []string
	for _, token := range tokens {
		name, ok, err := s.store.CompleteFirstMatch(ctx, ownerID, token)
		if err != nil {
			return nil, fmt.Errorf("complete item %q: %w", token, err)
		}
		if ok {
			completed = append(completed, name)
		}
	}

	remaining, err := s.store.CountOpen(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count open items: %w", err)
	}

	message := fmt.Sprintf("completed %d item(s), %d remaining", len(completed), remaining)
	if remaining == 0 {
		message = "all items done"
	}

	slog.Debug("items completed", "owner_id", ownerID, "count", len(completed), "remaining", remaining)
	return &models.CompleteResult{
		Completed:     completed,
		RemainingOpen: remaining,
		Message:       message,
	}, nil
}

// ClearOpenItems deletes every open item for the owner. Completed items
// are kept as history. Idempotent.
func (s *ListService) ClearOpenItems(ctx context.Context, ownerID string) (*models.ClearResult, error) {
	if err := s.store.ClearOpen(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("clear open items: %w", err)
	}
	slog.Debug("list cleared", "owner_id", ownerID)
	return &models.ClearResult{Message: "list cleared"}, nil
}
