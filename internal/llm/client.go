package llm

import (
	"context"
)

// LLMClient is the text-generation capability the resonance oracle and the
// narrator consume.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmbedderClient backs the embedding-similarity oracle.
type EmbedderClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
