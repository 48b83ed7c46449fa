package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
}

func (m *MockClient) Query(ctx context.Context, prompt string, temperature float64, systemPrompt string) (string, error) {
	return m.Response, m.Err
}

// ScriptedClient devuelve respuestas en orden y registra los prompts recibidos.
type ScriptedClient struct {
	mu        sync.Mutex
	Responses []string
	Errs      []error
	Prompts   []string
	calls     int
}

func (m *ScriptedClient) Query(ctx context.Context, prompt string, temperature float64, systemPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	i := m.calls
	m.calls++
	var err error
	if i < len(m.Errs) {
		err = m.Errs[i]
	}
	if i < len(m.Responses) {
		return m.Responses[i], err
	}
	return "", err
}

// Calls devuelve la cantidad de consultas recibidas.
func (m *ScriptedClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
