package ai

import "context"

// Critique is a structured free-text review produced by an AI provider.
type Critique struct {
	Summary     string
	ActionItems []string
	Raw         string
}

// Reviewer produces free-text critique and rewrites for career text.
// Implementations talk to a remote model; the scoring core never does.
type Reviewer interface {
	Critique(ctx context.Context, text string) (*Critique, error)
	Rewrite(ctx context.Context, text string) (string, error)
}
