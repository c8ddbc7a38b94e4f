package round

import (
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
	"github.com/charmbracelet/log"
)

// Replay rebuilds net scores, ledgers, press state, points and progress from
// the recorded gross scores and press facts. It is a fixed point: replaying
// twice yields the same state.
func (s *Session) Replay() {
	scratch := s.clone()
	scratch.replay()
	*s = *scratch
}

// replay works in place and must only run on a scratch copy.
func (s *Session) replay() {
	for gi := range s.games {
		g := &s.games[gi]
		g.Ledger = Ledger{}
		g.A.Points, g.B.Points = 0, 0
		g.HoleContribA, g.HoleContribB = 0, 0
		g.Press.Reset()
	}

	scored := 0
	for idx := 0; idx < Holes; idx++ {
		hole := idx + 1
		if idx == 0 {
			s.lockFirstHole()
		}
		for gi := range s.games {
			applyPresses(&s.games[gi], hole)
		}
		if !s.played(idx) {
			continue
		}

		s.computeNets(idx)
		for gi := range s.games {
			g := &s.games[gi]
			s.scoreHole(g, idx)
			s.captureStakeForHole(g, idx)
			s.writeContributionForHole(g, idx)
		}
		scored++
	}

	s.recomputeAggregatesFromLedger()
	s.syncProgress()
	log.Debug("Replayed round", "holes_scored", scored, "current_hole", s.currentHole, "status", s.status)
}

// applyPresses re-applies the press facts recorded for a hole.
func applyPresses(g *Game, hole int) {
	for _, half := range []match.Half{match.Front, match.Back} {
		for _, side := range []match.Side{match.TeamA, match.TeamB} {
			if *g.Presses.hole(side, half) == hole {
				g.Press.Press(side, half)
			}
		}
	}
	if hole == Holes {
		for range g.Presses.Courtesy {
			g.Press.Courtesy()
		}
	}
}

// syncProgress points the current hole at the first hole missing a gross
// score and derives the round status.
func (s *Session) syncProgress() {
	for idx := 0; idx < Holes; idx++ {
		for i := range s.players {
			if s.players[i].entered(idx) {
				continue
			}
			s.currentHole = idx + 1
			if s.anyPlayed() {
				s.status = StatusInProgress
			} else {
				s.status = StatusNotStarted
			}
			return
		}
	}
	s.currentHole = Holes
	s.status = StatusComplete
}

func (s *Session) anyPlayed() bool {
	for idx := 0; idx < Holes; idx++ {
		if s.played(idx) {
			return true
		}
	}
	return false
}
