package resonance

import (
	"context"
	"fmt"
	"math"

	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/llm"
)

// EmbeddingOracle accepts a pair when the cosine similarity of the two
// contents' embeddings clears Threshold. Deterministic as long as the
// embedder is.
type EmbeddingOracle struct {
	Embedder  llm.EmbedderClient
	Threshold float64
}

func NewEmbeddingOracle(embedder llm.EmbedderClient) *EmbeddingOracle {
	return &EmbeddingOracle{
		Embedder:  embedder,
		Threshold: 0.75,
	}
}

func (o *EmbeddingOracle) IsResonant(ctx context.Context, a, b model.ThoughtNode) (bool, error) {
	vecA, err := o.Embedder.Embed(ctx, a.Content)
	if err != nil {
		return false, fmt.Errorf("failed to embed %s: %w", a.ID, err)
	}
	vecB, err := o.Embedder.Embed(ctx, b.Content)
	if err != nil {
		return false, fmt.Errorf("failed to embed %s: %w", b.ID, err)
	}

	sim, err := cosineSimilarity(vecA, vecB)
	if err != nil {
		return false, err
	}
	return sim >= o.Threshold, nil
}

func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
