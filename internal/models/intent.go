package models

// Action is the list operation a user message asks for.
type Action string

const (
	ActionAdd      Action = "ADD"
	ActionList     Action = "LIST"
	ActionComplete Action = "COMPLETE"
	ActionClear    Action = "CLEAR"
	ActionUnknown  Action = "UNKNOWN"
)

// ParsedIntent is the classifier's output for a single message.
// Produced fresh per turn and never persisted.
type ParsedIntent struct {
	// Action is always one of the five Action constants; the classifier's
	// fallback guarantees this even for malformed oracle output.
	Action Action

	// ItemText is the comma-joined item names extracted from the message.
	// May be empty, e.g. for LIST and CLEAR.
	ItemText string
}
