package round

import (
	"fmt"
	"strings"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/google/uuid"
)

// RosterEntry is a player slot as typed in by the caller.
type RosterEntry struct {
	Name     string `json:"name"`
	Handicap string `json:"handicap"`
}

// ParseRoster validates a 4 or 5 player roster and returns fresh players with
// every hole unset.
func ParseRoster(entries []RosterEntry) ([]Player, error) {
	if len(entries) != 4 && len(entries) != 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, len(entries))
	}

	players := make([]Player, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, &SlotError{Slot: i, Err: ErrEmptyPlayerName}
		}
		h, err := handicap.Parse(e.Handicap)
		if err != nil {
			return nil, &SlotError{Slot: i, Err: fmt.Errorf("%w: %q", ErrInvalidHandicapInput, e.Handicap)}
		}
		players[i] = newPlayer(name, h)
	}
	return players, nil
}

func newPlayer(name string, h handicap.Handicap) Player {
	p := Player{
		ID:       uuid.NewString(),
		Name:     name,
		Handicap: h,
	}
	for i := range p.Gross {
		p.Gross[i] = Unset
	}
	return p
}

// pairings returns the team line-ups for a roster size: 12 v 34 for four
// players, and the anchor pair 12 against 34, 35 and 45 for five.
func pairings(numPlayers int) [][2][2]int {
	anchor := [2]int{0, 1}
	if numPlayers == 4 {
		return [][2][2]int{{anchor, {2, 3}}}
	}
	return [][2][2]int{
		{anchor, {2, 3}},
		{anchor, {2, 4}},
		{anchor, {3, 4}},
	}
}
