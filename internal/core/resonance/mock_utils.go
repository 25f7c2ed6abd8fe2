package resonance

import (
	"context"
	"fmt"

	"github.com/agenthands/insight/internal/core/model"
)

// MockOracle is a scripted oracle for tests. Verdicts are keyed by the
// pair's ids; unkeyed pairs fall back to Default.
type MockOracle struct {
	Default  bool
	Verdicts map[string]bool // key: "<aID>|<bID>"
	Err      error
	Calls    int
}

func (m *MockOracle) IsResonant(ctx context.Context, a, b model.ThoughtNode) (bool, error) {
	m.Calls++
	if m.Err != nil {
		return false, m.Err
	}
	if verdict, ok := m.Verdicts[fmt.Sprintf("%s|%s", a.ID, b.ID)]; ok {
		return verdict, nil
	}
	return m.Default, nil
}

// MockLLMClient mirrors the llm.LLMClient surface for oracle tests.
type MockLLMClient struct {
	Response string
	Err      error
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockEmbedderClient returns a fixed vector per text, keyed by content.
type MockEmbedderClient struct {
	Vectors map[string][]float32
	Err     error
}

func (m *MockEmbedderClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if vec, ok := m.Vectors[text]; ok {
		return vec, nil
	}
	return nil, fmt.Errorf("no mock vector for %q", text)
}
