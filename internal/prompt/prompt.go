// Package prompt turns an optional genre and keywords into a creative
// writing prompt by asking a hosted language model.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxGenreLength    = 100
	MaxKeywordsLength = 500

	DefaultTimeout = 30 * time.Second
)

var (
	ErrGenreTooLong    = errors.New("genre must be at most 100 characters")
	ErrKeywordsTooLong = errors.New("keywords must be at most 500 characters")
	ErrEmptyPrompt     = errors.New("model returned an empty prompt")
	ErrUpstream        = errors.New("prompt generation failed")
)

// Request is what the user asks for. Both fields are optional.
type Request struct {
	Genre    string
	Keywords string
}

// Result holds the generated prompt text.
type Result struct {
	Prompt string
}

// Prompt is the message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

const systemInstruction = "You are a creative writing prompt generator. " +
	"Generate a creative writing prompt based on the following information. " +
	"Do not include the words genre or keywords in the prompt. " +
	`Reply with a JSON object of the form {"prompt": "..."}.`

// Build assembles the model messages for req.
func Build(req Request) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Genre: %s\n", strings.TrimSpace(req.Genre))
	fmt.Fprintf(&sb, "Keywords: %s\n", strings.TrimSpace(req.Keywords))
	return Prompt{System: systemInstruction, User: sb.String()}
}

// Validate checks the request against the input limits.
func (r Request) Validate() error {
	if utf8.RuneCountInString(r.Genre) > MaxGenreLength {
		return ErrGenreTooLong
	}
	if utf8.RuneCountInString(r.Keywords) > MaxKeywordsLength {
		return ErrKeywordsTooLong
	}
	return nil
}

// Generator produces writing prompts through a Client.
type Generator struct {
	client  Client
	timeout time.Duration
}

// NewGenerator returns a Generator. A non-positive timeout means DefaultTimeout.
func NewGenerator(client Client, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{client: client, timeout: timeout}
}

// Generate asks the model for one prompt.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.Complete(ctx, Build(req))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	text, err := PostProcess(raw)
	if err != nil {
		return Result{}, err
	}
	return Result{Prompt: text}, nil
}
