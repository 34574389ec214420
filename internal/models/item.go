package models

// Priority indicates how urgently an item is needed.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Item represents one entry on a user's shopping list.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// OwnerID identifies the user whose list this item belongs to.
	// Immutable after creation.
	OwnerID string `json:"ownerId"`

	// Name is the item text as the user phrased it (e.g., "牛乳", "bread").
	Name string `json:"name"`

	// Category is the label assigned by the keyword categorizer.
	// "uncategorized" when no keyword matched.
	Category string `json:"category"`

	// Quantity is a free-form amount string. Defaults to "1".
	Quantity string `json:"quantity"`

	// Priority defaults to PriorityNormal.
	Priority Priority `json:"priority"`

	// Completed marks the item as bought.
	Completed bool `json:"completed"`

	// AddedAt is the Unix nanosecond timestamp when the item was added.
	// It doubles as the recency sort key for list ordering.
	AddedAt int64 `json:"addedAt"`

	// CompletedAt is the Unix nanosecond timestamp when the item was
	// completed. Zero if and only if Completed is false.
	CompletedAt int64 `json:"completedAt,omitempty"`
}

// GroupedItem is the per-item view inside a category group of a ListResult.
type GroupedItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Completed bool   `json:"completed"`
}

// AddedItem is one item recorded by an add operation.
type AddedItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AddResult is the structured outcome of adding items.
type AddResult struct {
	// Added lists the inserted items in input token order.
	Added []AddedItem `json:"added"`

	// TotalOpen is the owner's open-item count after the insertions.
	TotalOpen int `json:"totalOpen"`

	// Message is a short human-readable summary fed to the synthesizer.
	Message string `json:"message"`
}

// ListResult is the structured outcome of listing items.
type ListResult struct {
	// Items in store order: category ascending then most recent first
	// (completion status first when completed items are included).
	Items []Item `json:"items"`

	// Grouped maps category label to the items in that category.
	// Items with no category fall under "uncategorized".
	Grouped map[string][]GroupedItem `json:"grouped"`

	// TotalCount is the number of items returned.
	TotalCount int `json:"totalCount"`

	// Categories lists the group keys in first-encounter order.
	Categories []string `json:"categories"`
}

// CompleteResult is the structured outcome of completing items.
type CompleteResult struct {
	// Completed holds the stored names of the items marked done, in the
	// order their tokens matched. Tokens matching nothing contribute
	// no entry.
	Completed []string `json:"completed"`

	// RemainingOpen is the owner's open-item count after the updates.
	RemainingOpen int `json:"remainingOpen"`

	// Message is a short human-readable summary fed to the synthesizer.
	Message string `json:"message"`
}

// ClearResult is the structured outcome of clearing open items.
type ClearResult struct {
	Message string `json:"message"`
}

// UnknownResult is the fixed outcome for a turn whose action could not be
// determined.
type UnknownResult struct {
	Message string `json:"message"`
}
