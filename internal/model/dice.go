package model

import "time"

// DiceRoll is a persisted roll in a user's history.
type DiceRoll struct {
	ID       int64
	UserID   int64
	RollID   string
	DiceType int
	Rolls    []int
	Total    int
	RolledAt time.Time
}

// RollRequest asks for NumberOfDice dice with DiceType sides. Zero values fall back to 1d20.
type RollRequest struct {
	DiceType     int `json:"dice_type"`
	NumberOfDice int `json:"number_of_dice"`
}

// RollResponse is the outcome of one roll.
type RollResponse struct {
	ID       string    `json:"id"`
	DiceType int       `json:"dice_type"`
	Rolls    []int     `json:"rolls"`
	Total    int       `json:"total"`
	RolledAt time.Time `json:"rolled_at"`
	Saved    bool      `json:"saved"`
}

// DieResponse describes one standard die.
type DieResponse struct {
	Sides int    `json:"sides"`
	Label string `json:"label"`
}
