package core

import "context"

// TextGenerator is any service that can produce text from a prompt.
// Implementations may call out over the network; they must honor ctx and
// return a generic error on failure rather than partial output.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
