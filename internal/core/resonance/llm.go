package resonance

import (
	"context"
	"fmt"

	"github.com/agenthands/insight/internal/core/common"
	"github.com/agenthands/insight/internal/core/model"
	"github.com/agenthands/insight/internal/llm"
)

const defaultResonancePrompt = `Two statements from a reasoning graph are far apart via ordinary step-by-step logic.
Decide whether a DIRECT connection between them would make profound sense, or whether it would just be arbitrary noise.
Be conservative: statistically surprising is not the same as meaningful.

Statement A: %s
Statement B: %s

Return a JSON object:
{ "resonant": true, "reason": "one short sentence" }`

type resonanceJudgment struct {
	Resonant bool   `json:"resonant"`
	Reason   string `json:"reason"`
}

// LLMOracle asks a language model whether the hypothetical edge rings true.
// Whatever cancellation and timeout semantics the underlying client has
// propagate through the context; they are never hidden here.
type LLMOracle struct {
	LLM    llm.LLMClient
	Prompt string // fmt template with two %s slots; empty means the default
}

func NewLLMOracle(client llm.LLMClient) *LLMOracle {
	return &LLMOracle{LLM: client}
}

func (o *LLMOracle) IsResonant(ctx context.Context, a, b model.ThoughtNode) (bool, error) {
	promptTemplate := o.Prompt
	if promptTemplate == "" {
		promptTemplate = defaultResonancePrompt
	}

	prompt := fmt.Sprintf(promptTemplate, a.Content, b.Content)

	response, err := o.LLM.Generate(ctx, prompt)
	if err != nil {
		return false, fmt.Errorf("failed to generate resonance judgment: %w", err)
	}

	judgment, err := common.ParseJSON[resonanceJudgment](response)
	if err != nil {
		return false, fmt.Errorf("failed to parse resonance judgment: %w", err)
	}

	return judgment.Resonant, nil
}
