package round

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlayerCount   = errors.New("a round needs 4 or 5 players")
	ErrInvalidHandicapInput = errors.New("handicap must be a whole number")
	ErrEmptyPlayerName      = errors.New("player name cannot be empty")
	ErrHoleOutOfRange       = errors.New("hole must be between 1 and 18")
	ErrIncompleteScoreSet   = errors.New("a gross score is required for every player")
	ErrInvalidGrossScore    = errors.New("gross score must be at least 1")
	ErrHoleNotPlayed        = errors.New("hole has not been played")
	ErrRoundComplete        = errors.New("round is already complete")
	ErrUnknownGame          = errors.New("unknown game")
	ErrInvalidPressHole     = errors.New("press hole is not allowed")
	ErrInvalidStake         = errors.New("starting stake must be at least 1")
	ErrInvalidTee           = errors.New("tee is not defined for the course")
)

// SlotError ties a roster or score validation failure to a player slot.
type SlotError struct {
	Slot int
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("player %d: %v", e.Slot+1, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}
