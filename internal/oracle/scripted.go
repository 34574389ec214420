package oracle

import (
	"context"
	"fmt"
	"sync"
)

// Ensure Scripted implements Generator
var _ Generator = (*Scripted)(nil)

// Scripted is a Generator test double that returns queued responses in
// order and records every prompt it receives.
type Scripted struct {
	mu        sync.Mutex
	responses []string
	err       error

	// Prompts holds every prompt passed to Generate, in call order.
	Prompts []string
}

// NewScripted creates a Scripted generator that will return the given
// responses one per call.
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

// Fail makes every subsequent Generate call return err.
func (s *Scripted) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Generate records the prompt and pops the next queued response.
func (s *Scripted) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", fmt.Errorf("scripted oracle: no responses left")
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}
