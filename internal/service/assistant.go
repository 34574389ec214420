// Package service implements the shopping assistant's business logic: the
// list and place operations and the dispatcher that drives one
// conversational turn.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/shopassist/internal/intent"
	"github.com/mmynk/shopassist/internal/metrics"
	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/oracle"
	"github.com/mmynk/shopassist/internal/storage"
)

// synthesizePrompt renders the structured operation result for the second
// oracle call, which produces the user-facing reply.
const synthesizePrompt = `User message: %q
Resolved action: %q
Extracted items: %q
Operation result: %s

Write a short, friendly reply to the user based on the information above.
You are a shopping assistant: keep it concise, state numbers clearly, and
use an emoji or two where it fits.
`

// Assistant runs one conversational turn: classify the message, execute
// the matching list operation, then synthesize the reply. Each stage runs
// once; there are no retries within a turn.
type Assistant struct {
	lists      *ListService
	classifier *intent.Classifier
	gen        oracle.Generator
}

// NewAssistant wires the dispatcher with its storage backend and oracle.
func NewAssistant(store storage.Store, gen oracle.Generator) *Assistant {
	return &Assistant{
		lists:      NewListService(store),
		classifier: intent.NewClassifier(gen),
		gen:        gen,
	}
}

// ProcessTurn performs the full pipeline for one message and returns the
// final reply text. Any infrastructure failure (oracle or store
// unreachable) fails the turn; no partial reply is fabricated.
func (a *Assistant) ProcessTurn(ctx context.Context, ownerID, message string) (string, error) {
	start := time.Now()

	pi, err := a.classifier.Classify(ctx, message)
	if err != nil {
		metrics.OracleRequestsTotal.WithLabelValues("classify", "error").Inc()
		return "", err
	}
	metrics.OracleRequestsTotal.WithLabelValues("classify", "ok").Inc()
	slog.Debug("intent classified", "owner_id", ownerID, "action", pi.Action, "items", pi.ItemText)

	result, err := a.execute(ctx, ownerID, pi)
	if err != nil {
		return "", err
	}

	text, err := a.synthesize(ctx, message, pi, result)
	if err != nil {
		metrics.OracleRequestsTotal.WithLabelValues("synthesize", "error").Inc()
		return "", err
	}
	metrics.OracleRequestsTotal.WithLabelValues("synthesize", "ok").Inc()

	metrics.TurnsTotal.WithLabelValues(string(pi.Action)).Inc()
	metrics.TurnDuration.Observe(time.Since(start).Seconds())
	return text, nil
}

// execute routes the parsed intent to the matching list operation and
// returns its structured result.
func (a *Assistant) execute(ctx context.Context, ownerID string, pi models.ParsedIntent) (any, error) {
	switch pi.Action {
	case models.ActionAdd:
		return a.lists.AddItems(ctx, ownerID, pi.ItemText)
	case models.ActionList:
		return a.lists.ListItems(ctx, ownerID, false)
	case models.ActionComplete:
		return a.lists.CompleteItems(ctx, ownerID, pi.ItemText)
	case models.ActionClear:
		return a.lists.ClearOpenItems(ctx, ownerID)
	default:
		return models.UnknownResult{Message: "could not determine action"}, nil
	}
}

// synthesize asks the oracle to render the structured result as reply text.
func (a *Assistant) synthesize(ctx context.Context, message string, pi models.ParsedIntent, result any) (string, error) {
	detail, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	text, err := a.gen.Generate(ctx, fmt.Sprintf(synthesizePrompt, message, pi.Action, pi.ItemText, detail))
	if err != nil {
		return "", fmt.Errorf("response synthesis failed: %w", err)
	}
	return text, nil
}
