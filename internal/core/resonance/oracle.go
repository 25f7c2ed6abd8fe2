package resonance

import (
	"context"

	"github.com/agenthands/insight/internal/core/model"
)

// Oracle judges whether a direct connection between two nodes would be
// meaningful rather than arbitrary noise. A pure predicate over node
// contents: implementations must be deterministic for a fixed pair unless
// the caller knowingly opts into a stochastic one (e.g. a sampling LLM).
type Oracle interface {
	IsResonant(ctx context.Context, a, b model.ThoughtNode) (bool, error)
}

// AlwaysResonant is the declared placeholder default. It accepts every
// shortcut; real deployments swap in a tag, embedding, or LLM oracle.
type AlwaysResonant struct{}

func (AlwaysResonant) IsResonant(ctx context.Context, a, b model.ThoughtNode) (bool, error) {
	return true, nil
}
