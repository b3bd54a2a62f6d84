package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/randorium/randorium-go/internal/model"
)

var ErrPromptNotFound = errors.New("saved prompt not found")

// SavedPromptRepository handles saved prompt persistence operations.
type SavedPromptRepository struct {
	db *sql.DB
}

// NewSavedPromptRepository creates a new SavedPromptRepository.
func NewSavedPromptRepository(db *sql.DB) *SavedPromptRepository {
	return &SavedPromptRepository{db: db}
}

// Create inserts a saved prompt and sets its generated ID.
func (r *SavedPromptRepository) Create(ctx context.Context, p *model.SavedPrompt) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO saved_prompts (user_id, prompt_id, genre, keywords, prompt, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.UserID, p.PromptID, p.Genre, p.Keywords, p.Prompt, toMillis(p.CreatedAt),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// ListByUser retrieves all non-deleted saved prompts for a user, newest first.
func (r *SavedPromptRepository) ListByUser(ctx context.Context, userID int64) ([]model.SavedPrompt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, prompt_id, genre, keywords, prompt, created_at, deleted
		 FROM saved_prompts WHERE user_id = ? AND deleted = FALSE ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SavedPrompt
	for rows.Next() {
		var (
			p         model.SavedPrompt
			createdAt int64
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.PromptID, &p.Genre, &p.Keywords, &p.Prompt, &createdAt, &p.Deleted); err != nil {
			return nil, err
		}
		p.CreatedAt = fromMillis(createdAt)
		out = append(out, p)
	}

	return out, rows.Err()
}

// SoftDelete marks a saved prompt as deleted.
func (r *SavedPromptRepository) SoftDelete(ctx context.Context, userID int64, promptID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE saved_prompts SET deleted = TRUE WHERE user_id = ? AND prompt_id = ? AND deleted = FALSE`,
		userID, promptID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPromptNotFound
	}

	return nil
}
