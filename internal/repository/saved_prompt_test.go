package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/randorium/randorium-go/internal/model"
)

func TestSavedPromptLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := mustCreateUser(t, db, "writer@example.com")
	repo := NewSavedPromptRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	first := &model.SavedPrompt{UserID: user.ID, PromptID: "p1", Genre: "horror", Prompt: "The attic breathes.", CreatedAt: now}
	second := &model.SavedPrompt{UserID: user.ID, PromptID: "p2", Keywords: "tea", Prompt: "A tea party for ghosts.", CreatedAt: now.Add(time.Second)}
	for _, p := range []*model.SavedPrompt{first, second} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	list, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].PromptID != "p2" {
		t.Fatalf("ListByUser() = %+v, want p2 first", list)
	}
	if diff := cmp.Diff(*first, list[1]); diff != "" {
		t.Errorf("ListByUser() second mismatch (-want +got):\n%s", diff)
	}

	if err := repo.SoftDelete(ctx, user.ID, "p2"); err != nil {
		t.Fatalf("SoftDelete() unexpected error: %v", err)
	}
	if err := repo.SoftDelete(ctx, user.ID, "p2"); !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("second SoftDelete() error = %v, want %v", err, ErrPromptNotFound)
	}
	if err := repo.SoftDelete(ctx, user.ID+1, "p1"); !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("SoftDelete() of another user's prompt error = %v, want %v", err, ErrPromptNotFound)
	}

	list, err = repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].PromptID != "p1" {
		t.Errorf("ListByUser() after delete = %+v", list)
	}
}
