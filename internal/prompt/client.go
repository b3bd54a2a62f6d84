package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Client abstracts the hosted model so it can be swapped or mocked.
type Client interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

var (
	ErrAPIKeyMissing   = errors.New("llm api key missing")
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// Settings configures a concrete client.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewClient builds the client named by s.Provider. An empty provider means Gemini.
func NewClient(ctx context.Context, s Settings) (Client, error) {
	switch strings.ToLower(s.Provider) {
	case ProviderGemini, "":
		c, err := NewGeminiClient(ctx, s)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderOpenAI:
		c, err := NewOpenAIClient(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderMock:
		return MockClient{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, s.Provider)
}

// NewClientOrMock is NewClient that falls back to MockClient, with a warning,
// when the provider has no API key.
func NewClientOrMock(ctx context.Context, s Settings) (Client, error) {
	c, err := NewClient(ctx, s)
	if errors.Is(err, ErrAPIKeyMissing) {
		slog.Warn("llm api key missing, using mock prompt client", "provider", s.Provider)
		return MockClient{}, nil
	}
	return c, err
}
