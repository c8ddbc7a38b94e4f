package round

import (
	"fmt"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
)

// CurrentHole returns the 1-based hole being played, or 18 once complete.
func (s *Session) CurrentHole() int { return s.currentHole }

// Status returns the round progress.
func (s *Session) Status() Status { return s.status }

// StartingStake returns the stake every game starts hole 1 at.
func (s *Session) StartingStake() int { return s.startingStake }

// Course returns the course being played.
func (s *Session) Course() course.Course { return s.course }

// Tee returns the selected tee name.
func (s *Session) Tee() string { return s.tee }

// Players returns a copy of the player table.
func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// Games returns a copy of every game.
func (s *Session) Games() []Game {
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// PlayerPoints sums the points of every team the player belongs to.
func (s *Session) PlayerPoints(playerIdx int) int {
	total := 0
	for _, g := range s.games {
		if g.A.has(playerIdx) {
			total += g.A.Points
		}
		if g.B.has(playerIdx) {
			total += g.B.Points
		}
	}
	return total
}

// PlayerHole is one player's line on a hole result.
type PlayerHole struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Gross    int    `json:"gross"`
	Strokes  int    `json:"strokes"`
	Net      int    `json:"net"`
}

// GameHole is one game's line on a hole result.
type GameHole struct {
	Game     int            `json:"game"`
	TeamA    string         `json:"team_a"`
	TeamB    string         `json:"team_b"`
	Stake    int            `json:"stake"`
	LowA     match.TeamHole `json:"low_a"`
	LowB     match.TeamHole `json:"low_b"`
	ContribA int            `json:"contrib_a"`
	ContribB int            `json:"contrib_b"`
	PointsA  int            `json:"points_a"`
	PointsB  int            `json:"points_b"`
}

// HoleResult is what a caller renders after a hole is scored or edited.
type HoleResult struct {
	Hole        int          `json:"hole"`
	Par         int          `json:"par"`
	Rank        int          `json:"rank"`
	Players     []PlayerHole `json:"players"`
	Games       []GameHole   `json:"games"`
	CurrentHole int          `json:"current_hole"`
	Status      Status       `json:"status"`
}

// HoleResult builds the result of a played hole from the ledger.
func (s *Session) HoleResult(hole int) (*HoleResult, error) {
	if hole < 1 || hole > Holes {
		return nil, fmt.Errorf("%w: got %d", ErrHoleOutOfRange, hole)
	}
	idx := hole - 1
	if !s.played(idx) {
		return nil, fmt.Errorf("%w: hole %d", ErrHoleNotPlayed, hole)
	}

	info, _ := s.course.Hole(hole)
	res := &HoleResult{
		Hole:        hole,
		Par:         info.Par,
		Rank:        info.Rank,
		CurrentHole: s.currentHole,
		Status:      s.status,
	}
	for _, p := range s.players {
		ph := PlayerHole{PlayerID: p.ID, Name: p.Name, Gross: p.Gross[idx]}
		if p.entered(idx) {
			ph.Strokes = handicap.StrokesForHole(p.Handicap, info.Rank)
			ph.Net = p.Net[idx]
		}
		res.Players = append(res.Players, ph)
	}
	for _, g := range s.games {
		res.Games = append(res.Games, GameHole{
			Game:     g.Index,
			TeamA:    g.A.Name,
			TeamB:    g.B.Name,
			Stake:    g.Ledger.Stake[idx],
			LowA:     s.teamHole(g.A, idx),
			LowB:     s.teamHole(g.B, idx),
			ContribA: g.Ledger.ContribA[idx],
			ContribB: g.Ledger.ContribB[idx],
			PointsA:  g.A.Points,
			PointsB:  g.B.Points,
		})
	}
	return res, nil
}

// PlayerView is a player as exposed to callers.
type PlayerView struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Handicap int        `json:"handicap"`
	Gross    [Holes]int `json:"gross"`
	Net      [Holes]int `json:"net"`
	Points   int        `json:"points"`
}

// TeamView is a team as exposed to callers.
type TeamView struct {
	Name    string    `json:"name"`
	Players [2]string `json:"players"`
	Points  int       `json:"points"`
}

// GameView is a game as exposed to callers.
type GameView struct {
	Index   int              `json:"index"`
	TeamA   TeamView         `json:"team_a"`
	TeamB   TeamView         `json:"team_b"`
	Stake   int              `json:"stake"`
	Flags   match.PressFlags `json:"flags"`
	Presses PressLog         `json:"presses"`
	Ledger  Ledger           `json:"ledger"`
}

// Snapshot is the full read-only state of a round.
type Snapshot struct {
	Course        string       `json:"course"`
	Tee           string       `json:"tee"`
	StartingStake int          `json:"starting_stake"`
	CurrentHole   int          `json:"current_hole"`
	Status        Status       `json:"status"`
	Players       []PlayerView `json:"players"`
	Games         []GameView   `json:"games"`
}

// Snapshot returns the current state for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Course:        s.course.Name,
		Tee:           s.tee,
		StartingStake: s.startingStake,
		CurrentHole:   s.currentHole,
		Status:        s.status,
	}
	for i, p := range s.players {
		snap.Players = append(snap.Players, PlayerView{
			ID:       p.ID,
			Name:     p.Name,
			Handicap: p.Handicap.Value(),
			Gross:    p.Gross,
			Net:      p.Net,
			Points:   s.PlayerPoints(i),
		})
	}
	for _, g := range s.games {
		snap.Games = append(snap.Games, GameView{
			Index:   g.Index,
			TeamA:   s.teamView(g.A),
			TeamB:   s.teamView(g.B),
			Stake:   g.Press.Stake,
			Flags:   g.Press.Flags(),
			Presses: g.Presses,
			Ledger:  g.Ledger,
		})
	}
	return snap
}

func (s *Session) teamView(t Team) TeamView {
	return TeamView{
		Name:    t.Name,
		Players: [2]string{s.players[t.Players[0]].ID, s.players[t.Players[1]].ID},
		Points:  t.Points,
	}
}
