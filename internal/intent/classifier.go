// Package intent classifies a user message into an action plus extracted
// item text by delegating to the language oracle and enforcing a strict
// output contract on what comes back.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/oracle"
)

// classifyPrompt demands a bare JSON object so the response can be parsed
// without markup handling. Models still sometimes wrap it in a code fence,
// which Classify strips.
const classifyPrompt = `Extract the shopping intent and target items from the user message below.
Reply with a single pure JSON object and nothing else (no Markdown, no backticks).

JSON format:
{
  "action": "ADD" | "LIST" | "COMPLETE" | "CLEAR" | "UNKNOWN",
  "items": "item1,item2" (only when item names were extracted)
}

User message: %q
`

// oracleIntent is the wire shape the oracle is asked to produce.
type oracleIntent struct {
	Action string `json:"action"`
	Items  string `json:"items"`
}

// fallbackOrder is the priority in which action literals are searched for
// in raw oracle output when JSON parsing fails.
var fallbackOrder = []models.Action{
	models.ActionAdd,
	models.ActionList,
	models.ActionComplete,
	models.ActionClear,
}

// Classifier turns a free-form message into a ParsedIntent.
type Classifier struct {
	gen oracle.Generator
}

// NewClassifier creates a Classifier backed by the given generator.
func NewClassifier(gen oracle.Generator) *Classifier {
	return &Classifier{gen: gen}
}

// Classify asks the oracle for an intent and parses the reply. Malformed
// oracle output is recovered via the substring fallback and never surfaces
// as an error; the only error returned is an unreachable oracle.
func (c *Classifier) Classify(ctx context.Context, message string) (models.ParsedIntent, error) {
	raw, err := c.gen.Generate(ctx, fmt.Sprintf(classifyPrompt, message))
	if err != nil {
		return models.ParsedIntent{}, fmt.Errorf("intent classification failed: %w", err)
	}
	return parse(raw), nil
}

// parse applies the two-tier contract: strict JSON first, then the ordered
// substring fallback, then UNKNOWN.
func parse(raw string) models.ParsedIntent {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var wire oracleIntent
	if err := json.Unmarshal([]byte(clean), &wire); err == nil {
		if action, ok := validAction(wire.Action); ok {
			return models.ParsedIntent{Action: action, ItemText: wire.Items}
		}
	}

	for _, action := range fallbackOrder {
		if strings.Contains(raw, string(action)) {
			return models.ParsedIntent{Action: action}
		}
	}
	return models.ParsedIntent{Action: models.ActionUnknown}
}

func validAction(s string) (models.Action, bool) {
	switch a := models.Action(s); a {
	case models.ActionAdd, models.ActionList, models.ActionComplete, models.ActionClear, models.ActionUnknown:
		return a, true
	}
	return "", false
}
