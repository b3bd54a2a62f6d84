package service

import (
	"context"
	"log/slog"

	"github.com/randorium/randorium-go/internal/dice"
	"github.com/randorium/randorium-go/internal/model"
	"github.com/randorium/randorium-go/internal/repository"
	"github.com/randorium/randorium-go/internal/telemetry"
)

const (
	DefaultHistoryLimit = 5
	MaxHistoryLimit     = 50
)

// DiceService rolls dice and keeps the history of signed in users.
type DiceService struct {
	roller   *dice.Roller
	history  *repository.HistoryRepository
	counters *telemetry.Counters
}

// NewDiceService creates a new DiceService. history may be nil, in which
// case rolls are never saved.
func NewDiceService(roller *dice.Roller, history *repository.HistoryRepository, counters *telemetry.Counters) *DiceService {
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	return &DiceService{roller: roller, history: history, counters: counters}
}

// StandardDice lists the dice offered to users.
func (s *DiceService) StandardDice() []model.DieResponse {
	std := dice.StandardDice()
	out := make([]model.DieResponse, len(std))
	for i, d := range std {
		out[i] = model.DieResponse{Sides: d.Sides, Label: d.Label}
	}
	return out
}

// Roll throws the requested dice. A userID of zero means an anonymous roll.
// A failure to save the roll is logged and does not fail the roll.
func (s *DiceService) Roll(ctx context.Context, userID int64, req model.RollRequest) (model.RollResponse, error) {
	sides, count := req.DiceType, req.NumberOfDice
	if sides == 0 {
		sides = dice.DefaultSides
	}
	if count == 0 {
		count = dice.DefaultCount
	}

	res, err := s.roller.Roll(sides, count)
	if err != nil {
		return model.RollResponse{}, err
	}
	s.counters.DiceRolled(ctx, sides, count)

	resp := model.RollResponse{
		ID:       res.ID,
		DiceType: res.DiceType,
		Rolls:    res.Rolls,
		Total:    res.Total,
		RolledAt: res.RolledAt,
	}

	if userID != 0 && s.history != nil {
		err := s.history.Create(ctx, &model.DiceRoll{
			UserID:   userID,
			RollID:   res.ID,
			DiceType: res.DiceType,
			Rolls:    res.Rolls,
			Total:    res.Total,
			RolledAt: res.RolledAt,
		})
		if err != nil {
			slog.ErrorContext(ctx, "saving dice roll failed", "user_id", userID, "error", err)
		} else {
			resp.Saved = true
		}
	}

	return resp, nil
}

// History returns the most recent rolls of a user, newest first. limit is
// clamped to [1, MaxHistoryLimit]; zero or less means DefaultHistoryLimit.
func (s *DiceService) History(ctx context.Context, userID int64, limit int) ([]model.RollResponse, error) {
	if s.history == nil {
		return nil, ErrStorageUnavailable
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	rolls, err := s.history.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]model.RollResponse, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, model.RollResponse{
			ID:       r.RollID,
			DiceType: r.DiceType,
			Rolls:    r.Rolls,
			Total:    r.Total,
			RolledAt: r.RolledAt,
			Saved:    true,
		})
	}
	return out, nil
}

// ClearHistory deletes every saved roll of a user.
func (s *DiceService) ClearHistory(ctx context.Context, userID int64) (int64, error) {
	if s.history == nil {
		return 0, ErrStorageUnavailable
	}
	return s.history.Clear(ctx, userID)
}
