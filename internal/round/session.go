package round

import (
	"fmt"
	"strings"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
)

// Session is one round in play. It is the single owner of the player table,
// the games and their ledgers.
//
// A Session is not safe for concurrent use; callers serialize mutating calls.
// Every mutating method validates first and leaves the session unchanged on
// error.
type Session struct {
	course        course.Course
	tee           string
	startingStake int
	players       []Player
	games         []Game
	currentHole   int
	status        Status
}

// Setup validates the roster, course, tee and starting stake and returns a
// session ready for hole 1. An empty tee selects the course default.
func Setup(roster []RosterEntry, c course.Course, tee string, startingStake int) (*Session, error) {
	players, err := ParseRoster(roster)
	if err != nil {
		return nil, err
	}
	return newSession(players, c, tee, startingStake)
}

func newSession(players []Player, c course.Course, tee string, startingStake int) (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if tee == "" {
		tee = c.DefaultTee
	}
	if !c.HasTee(tee) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTee, tee)
	}
	if startingStake < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStake, startingStake)
	}
	if len(players) != 4 && len(players) != 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, len(players))
	}

	s := &Session{
		course:        c.Normalize(),
		tee:           tee,
		startingStake: startingStake,
		players:       players,
		currentHole:   1,
		status:        StatusNotStarted,
	}
	s.games = s.buildGames()
	return s, nil
}

// buildGames establishes every game with zeroed ledgers at the starting stake.
func (s *Session) buildGames() []Game {
	lineups := pairings(len(s.players))
	games := make([]Game, len(lineups))
	for i, l := range lineups {
		games[i] = Game{
			Index: i,
			A:     Team{Players: l[0], Name: s.teamName(l[0])},
			B:     Team{Players: l[1], Name: s.teamName(l[1])},
			Press: match.NewPressState(s.startingStake),
		}
	}
	return games
}

func (s *Session) teamName(idx [2]int) string {
	return strings.Join([]string{s.players[idx[0]].Name, s.players[idx[1]].Name}, " & ")
}

// SubmitHoleScores records gross scores for the current hole, scores every
// game at the stake in force and advances to the next hole. Scores beyond the
// number of players are ignored.
func (s *Session) SubmitHoleScores(gross []int) (*HoleResult, error) {
	if s.status == StatusComplete {
		return nil, ErrRoundComplete
	}
	if err := s.validateGross(gross); err != nil {
		return nil, err
	}

	hole := s.currentHole
	idx := hole - 1
	for i := range s.players {
		s.players[i].Gross[idx] = gross[i]
	}
	s.computeNets(idx)

	if idx == 0 {
		s.lockFirstHole()
	}
	for gi := range s.games {
		g := &s.games[gi]
		s.scoreHole(g, idx)
		s.captureStakeForHole(g, idx)
		s.writeContributionForHole(g, idx)
	}
	s.recomputeAggregatesFromLedger()

	if hole < Holes {
		s.currentHole = hole + 1
		s.status = StatusInProgress
	} else {
		s.status = StatusComplete
	}
	return s.HoleResult(hole)
}

// EditPastHole replaces the gross scores of an already played hole and
// replays the whole round from hole 1.
func (s *Session) EditPastHole(hole int, gross []int) (*HoleResult, error) {
	if hole < 1 || hole > Holes {
		return nil, fmt.Errorf("%w: got %d", ErrHoleOutOfRange, hole)
	}
	if err := s.validateGross(gross); err != nil {
		return nil, err
	}
	if !s.played(hole - 1) {
		return nil, fmt.Errorf("%w: hole %d", ErrHoleNotPlayed, hole)
	}

	scratch := s.clone()
	for i := range scratch.players {
		scratch.players[i].Gross[hole-1] = gross[i]
	}
	scratch.replay()
	*s = *scratch

	return s.HoleResult(hole)
}

// Restart clears every score, ledger and press while keeping names,
// handicaps, course, tee and starting stake. Players get new ids.
func (s *Session) Restart() {
	players := make([]Player, len(s.players))
	for i, p := range s.players {
		players[i] = newPlayer(p.Name, p.Handicap)
	}
	s.players = players
	s.games = s.buildGames()
	s.currentHole = 1
	s.status = StatusNotStarted
}

func (s *Session) validateGross(gross []int) error {
	if len(gross) < len(s.players) {
		return fmt.Errorf("%w: got %d scores for %d players", ErrIncompleteScoreSet, len(gross), len(s.players))
	}
	for i := range s.players {
		if gross[i] < 1 {
			return &SlotError{Slot: i, Err: fmt.Errorf("%w: got %d", ErrInvalidGrossScore, gross[i])}
		}
	}
	return nil
}

// played reports whether any player has a gross score on the hole index.
func (s *Session) played(idx int) bool {
	for i := range s.players {
		if s.players[i].entered(idx) {
			return true
		}
	}
	return false
}

// lockFirstHole forces the starting stake and clears every press flag.
func (s *Session) lockFirstHole() {
	for gi := range s.games {
		s.games[gi].Press.Reset()
	}
}

// clone returns a deep copy. Players and games hold only arrays and values.
func (s *Session) clone() *Session {
	c := *s
	c.players = make([]Player, len(s.players))
	copy(c.players, s.players)
	c.games = make([]Game, len(s.games))
	copy(c.games, s.games)
	return &c
}
