package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/randorium/randorium-go/internal/model"
	"github.com/randorium/randorium-go/internal/prompt"
	"github.com/randorium/randorium-go/internal/repository"
	"github.com/randorium/randorium-go/internal/telemetry"
)

var (
	ErrPromptRequired  = errors.New("prompt is required")
	ErrPromptTooLong   = errors.New("prompt must be at most 2000 characters")
	ErrInvalidPromptID = errors.New("invalid prompt_id format")
)

const maxSavedPromptLength = 2000

// PromptService generates writing prompts and manages the prompts users keep.
type PromptService struct {
	gen      *prompt.Generator
	repo     *repository.SavedPromptRepository
	counters *telemetry.Counters
}

// NewPromptService creates a new PromptService. repo may be nil, in which
// case saving prompts is unavailable.
func NewPromptService(gen *prompt.Generator, repo *repository.SavedPromptRepository, counters *telemetry.Counters) *PromptService {
	return &PromptService{gen: gen, repo: repo, counters: counters}
}

// Generate asks the language model for a prompt and renders it to HTML.
func (s *PromptService) Generate(ctx context.Context, req model.PromptRequest) (model.PromptResponse, error) {
	res, err := s.gen.Generate(ctx, prompt.Request{Genre: req.Genre, Keywords: req.Keywords})
	s.counters.PromptGenerated(ctx, err == nil)
	if err != nil {
		return model.PromptResponse{}, err
	}

	html, err := prompt.RenderHTML(res.Prompt)
	if err != nil {
		return model.PromptResponse{}, err
	}

	return model.PromptResponse{Prompt: res.Prompt, PromptHTML: html}, nil
}

// Save stores a prompt in the user's list.
func (s *PromptService) Save(ctx context.Context, userID int64, req model.SavePromptRequest) (model.SavedPromptResponse, error) {
	if s.repo == nil {
		return model.SavedPromptResponse{}, ErrStorageUnavailable
	}

	text := strings.TrimSpace(req.Prompt)
	if text == "" {
		return model.SavedPromptResponse{}, ErrPromptRequired
	}
	if len([]rune(text)) > maxSavedPromptLength {
		return model.SavedPromptResponse{}, ErrPromptTooLong
	}
	if err := (prompt.Request{Genre: req.Genre, Keywords: req.Keywords}).Validate(); err != nil {
		return model.SavedPromptResponse{}, err
	}

	p := &model.SavedPrompt{
		UserID:    userID,
		PromptID:  uuid.NewString(),
		Genre:     strings.TrimSpace(req.Genre),
		Keywords:  strings.TrimSpace(req.Keywords),
		Prompt:    text,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return model.SavedPromptResponse{}, err
	}

	return toSavedPromptResponse(*p), nil
}

// List returns the saved prompts of a user, newest first.
func (s *PromptService) List(ctx context.Context, userID int64) ([]model.SavedPromptResponse, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}

	prompts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.SavedPromptResponse, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, toSavedPromptResponse(p))
	}
	return out, nil
}

// Delete soft-deletes a saved prompt of the user.
func (s *PromptService) Delete(ctx context.Context, userID int64, promptID string) error {
	if s.repo == nil {
		return ErrStorageUnavailable
	}
	if _, err := uuid.Parse(promptID); err != nil {
		return ErrInvalidPromptID
	}
	return s.repo.SoftDelete(ctx, userID, promptID)
}

func toSavedPromptResponse(p model.SavedPrompt) model.SavedPromptResponse {
	return model.SavedPromptResponse{
		PromptID:  p.PromptID,
		Genre:     p.Genre,
		Keywords:  p.Keywords,
		Prompt:    p.Prompt,
		CreatedAt: p.CreatedAt,
	}
}
