package port

import "context"

type TextGenerator interface {
	// GenerateFromPrompt returns a completion for a single user prompt.
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}
