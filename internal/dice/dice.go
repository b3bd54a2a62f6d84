// Package dice rolls virtual dice.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/randorium/randorium-go/internal/crypto"
)

const (
	MinSides = 1
	MaxSides = 1000
	MinCount = 1
	MaxCount = 100

	DefaultSides = 20
	DefaultCount = 1
)

var (
	ErrInvalidDiceType  = errors.New("dice type must be between 1 and 1000 sides")
	ErrInvalidDiceCount = errors.New("number of dice must be between 1 and 100")
	ErrInvalidNotation  = errors.New("dice notation must look like 2d6")
)

// Die describes a standard die offered to users.
type Die struct {
	Sides int    `json:"sides"`
	Label string `json:"label"`
}

var standardDice = []Die{
	{Sides: 4, Label: "D4"},
	{Sides: 6, Label: "D6"},
	{Sides: 8, Label: "D8"},
	{Sides: 10, Label: "D10"},
	{Sides: 12, Label: "D12"},
	{Sides: 20, Label: "D20"},
	{Sides: 100, Label: "D100"},
}

// StandardDice returns the dice offered by default, smallest first.
func StandardDice() []Die {
	out := make([]Die, len(standardDice))
	copy(out, standardDice)
	return out
}

// Result is the outcome of one roll of Count dice.
type Result struct {
	ID       string
	DiceType int
	Rolls    []int
	Total    int
	RolledAt time.Time
}

// Roller rolls dice with a random source.
type Roller struct {
	src crypto.Source
	now func() time.Time
}

// NewRoller returns a roller using src, or crypto/rand when src is nil.
func NewRoller(src crypto.Source) *Roller {
	if src == nil {
		src = crypto.CryptoSource{}
	}
	return &Roller{src: src, now: time.Now}
}

// Roll throws count dice with the given number of sides and sums them.
func (r *Roller) Roll(sides, count int) (Result, error) {
	if sides < MinSides || sides > MaxSides {
		return Result{}, ErrInvalidDiceType
	}
	if count < MinCount || count > MaxCount {
		return Result{}, ErrInvalidDiceCount
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		n, err := r.src.Intn(sides)
		if err != nil {
			return Result{}, err
		}
		rolls[i] = n + 1
		total += rolls[i]
	}

	return Result{
		ID:       uuid.NewString(),
		DiceType: sides,
		Rolls:    rolls,
		Total:    total,
		RolledAt: r.now().UTC(),
	}, nil
}

// ParseNotation reads "NdS" notation such as "2d6" or "d20". A missing N means one die.
func ParseNotation(s string) (sides, count int, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	n, sz, ok := strings.Cut(s, "d")
	if !ok || sz == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	count = 1
	if n != "" {
		if count, err = strconv.Atoi(n); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}
	if sides, err = strconv.Atoi(sz); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return sides, count, nil
}
