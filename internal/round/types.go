package round

import (
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
)

const (
	// Holes is the length of a round.
	Holes = 18
	// Unset marks a hole without a recorded gross score.
	Unset = -1
)

// Status is the progress of a round.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusComplete   Status = "COMPLETE"
)

// Player is a golfer in the round. Gross holds Unset for holes not yet played;
// Net is only meaningful where Gross is set.
type Player struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Handicap handicap.Handicap `json:"handicap"`
	Gross    [Holes]int        `json:"gross"`
	Net      [Holes]int        `json:"net"`
}

func (p *Player) entered(idx int) bool {
	return p.Gross[idx] != Unset
}

// Team is a pair of players, referenced by their index in the session's
// player table.
type Team struct {
	Players [2]int `json:"players"`
	Name    string `json:"name"`
	Points  int    `json:"points"`
}

func (t Team) has(playerIdx int) bool {
	return t.Players[0] == playerIdx || t.Players[1] == playerIdx
}

// Ledger is the per-hole record for one game: the stake in force and each
// side's contribution. Team points are always the sum of the contributions.
type Ledger struct {
	Stake    [Holes]int `json:"stake"`
	ContribA [Holes]int `json:"contrib_a"`
	ContribB [Holes]int `json:"contrib_b"`
}

// Total sums a side's contributions.
func (l *Ledger) Total(side match.Side) int {
	contrib := &l.ContribA
	if side == match.TeamB {
		contrib = &l.ContribB
	}
	total := 0
	for _, v := range contrib {
		total += v
	}
	return total
}

// PressLog stores the presses taken in a game as facts. Each field holds the
// hole number the press took effect on, 0 when not taken. Courtesy counts
// the courtesy doubles granted on hole 18.
type PressLog struct {
	FrontA   int `json:"front_a"`
	FrontB   int `json:"front_b"`
	BackA    int `json:"back_a"`
	BackB    int `json:"back_b"`
	Courtesy int `json:"courtesy"`
}

func (l *PressLog) hole(side match.Side, half match.Half) *int {
	switch {
	case half == match.Front && side == match.TeamA:
		return &l.FrontA
	case half == match.Front:
		return &l.FrontB
	case side == match.TeamA:
		return &l.BackA
	default:
		return &l.BackB
	}
}

// Game is one team matchup.
type Game struct {
	Index int              `json:"index"`
	A     Team             `json:"team_a"`
	B     Team             `json:"team_b"`
	Press match.PressState `json:"press"`
	// HoleContribA and HoleContribB are the contributions of the last hole scored.
	HoleContribA int      `json:"hole_contrib_a"`
	HoleContribB int      `json:"hole_contrib_b"`
	Ledger       Ledger   `json:"ledger"`
	Presses      PressLog `json:"presses"`
}

func (g *Game) team(side match.Side) *Team {
	if side == match.TeamA {
		return &g.A
	}
	return &g.B
}
