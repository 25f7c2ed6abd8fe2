package narrate

import (
	"context"
	"fmt"

	"github.com/agenthands/insight/internal/core/common"
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/llm"
)

const defaultNarrationPrompt = `A reasoning engine found a shortcut between two distant thoughts.

Thought A: %s
Thought B: %s
Standard path length: %s steps, compression %.1fx, classified %s.

Write one short paragraph explaining why connecting these two thoughts directly is illuminating.
Return a JSON object: { "narration": "..." }`

type narration struct {
	Narration string `json:"narration"`
}

// Narrator turns an accepted tunnel into a human-readable explanation.
// Strictly presentation: detection never depends on it.
type Narrator struct {
	LLM    llm.LLMClient
	Prompt string // fmt template; empty means the default
}

func NewNarrator(client llm.LLMClient) *Narrator {
	return &Narrator{LLM: client}
}

func (n *Narrator) Narrate(ctx context.Context, source, target model.ThoughtNode, result model.TunnelResult) (string, error) {
	promptTemplate := n.Prompt
	if promptTemplate == "" {
		promptTemplate = defaultNarrationPrompt
	}

	steps := "unreachable"
	if !result.SurfaceDistance.Unreachable {
		steps = fmt.Sprintf("%g", result.SurfaceDistance.Steps)
	}

	prompt := fmt.Sprintf(promptTemplate,
		source.Content,
		target.Content,
		steps,
		float64(result.CompressionRatio),
		result.Magnitude,
	)

	response, err := n.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate narration: %w", err)
	}

	parsed, err := common.ParseJSON[narration](response)
	if err != nil {
		return "", fmt.Errorf("failed to parse narration: %w", err)
	}

	return parsed.Narration, nil
}
