// Package oracle wraps the external text-generation capability used for
// intent classification and response rendering. The model is a black box:
// callers hand it a prompt and get text back, and any failure is an
// infrastructure error.
package oracle

import "context"

// Generator is the language-oracle capability. Both oracle calls in a
// turn (classify, synthesize) go through this interface so tests can
// substitute deterministic text without a real model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
