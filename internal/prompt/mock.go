package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MockClient answers locally without calling a model. Useful for development
// without an API key.
type MockClient struct{}

// Complete returns a canned prompt built from the user message.
func (MockClient) Complete(_ context.Context, p Prompt) (string, error) {
	var genre, keywords string
	for _, line := range strings.Split(p.User, "\n") {
		if v, ok := strings.CutPrefix(line, "Genre: "); ok && strings.TrimSpace(v) != "" {
			genre = strings.TrimSpace(v)
		}
		if v, ok := strings.CutPrefix(line, "Keywords: "); ok && strings.TrimSpace(v) != "" {
			keywords = strings.TrimSpace(v)
		}
	}

	kind := "story"
	if genre != "" {
		kind = genre + " story"
	}
	text := fmt.Sprintf("Write a short %s in which a stranger arrives with a locked box.", kind)
	if keywords != "" {
		text += fmt.Sprintf(" Weave in: %s.", keywords)
	}
	out, err := json.Marshal(map[string]string{"prompt": text})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Name identifies the client in logs and traces.
func (MockClient) Name() string {
	return "mock"
}
