package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/randorium/randorium-go/internal/model"
)

// HistoryRepository stores dice rolls per user.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create records a roll and sets its generated ID.
func (r *HistoryRepository) Create(ctx context.Context, roll *model.DiceRoll) error {
	rolls, err := json.Marshal(roll.Rolls)
	if err != nil {
		return fmt.Errorf("encoding rolls: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO dice_rolls (user_id, roll_id, dice_type, rolls, total, rolled_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		roll.UserID, roll.RollID, roll.DiceType, string(rolls), roll.Total, toMillis(roll.RolledAt),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	roll.ID = id
	return nil
}

// ListRecent returns at most limit rolls of a user, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]model.DiceRoll, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, roll_id, dice_type, rolls, total, rolled_at
		 FROM dice_rolls WHERE user_id = ? ORDER BY rolled_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DiceRoll
	for rows.Next() {
		var (
			d        model.DiceRoll
			rolls    string
			rolledAt int64
		)
		if err := rows.Scan(&d.ID, &d.UserID, &d.RollID, &d.DiceType, &rolls, &d.Total, &rolledAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(rolls), &d.Rolls); err != nil {
			return nil, fmt.Errorf("decoding rolls of %s: %w", d.RollID, err)
		}
		d.RolledAt = fromMillis(rolledAt)
		out = append(out, d)
	}

	return out, rows.Err()
}

// Clear deletes every roll of a user and returns how many were removed.
func (r *HistoryRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dice_rolls WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
