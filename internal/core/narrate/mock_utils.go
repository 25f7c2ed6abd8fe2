package narrate

import (
	"context"
)

type MockLLMClient struct {
	Response   string
	LastPrompt string
	Err        error
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
