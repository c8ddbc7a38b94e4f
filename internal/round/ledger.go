package round

import (
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
)

// computeNets derives net scores for every entered player on a hole index.
func (s *Session) computeNets(idx int) {
	rank := s.course.Rank(idx + 1)
	for i := range s.players {
		p := &s.players[i]
		if p.entered(idx) {
			p.Net[idx] = handicap.Net(p.Gross[idx], p.Handicap, rank)
		} else {
			p.Net[idx] = 0
		}
	}
}

// teamHole summarizes a team's entered players on a hole index.
func (s *Session) teamHole(t Team, idx int) match.TeamHole {
	nets := make([]int, 0, len(t.Players))
	for _, pi := range t.Players {
		p := &s.players[pi]
		if p.entered(idx) {
			nets = append(nets, p.Net[idx])
		}
	}
	return match.Summarize(nets)
}

// scoreHole scores one game on a hole index at the game's current stake. The
// contribution already on the ledger for that hole is reversed first, so
// scoring the same hole twice never double counts.
func (s *Session) scoreHole(g *Game, idx int) match.Result {
	g.A.Points -= g.Ledger.ContribA[idx]
	g.B.Points -= g.Ledger.ContribB[idx]

	r := match.Score(s.teamHole(g.A, idx), s.teamHole(g.B, idx), g.Press.Stake)

	g.HoleContribA = r.A
	g.HoleContribB = r.B
	g.A.Points += r.A
	g.B.Points += r.B
	return r
}

// captureStakeForHole records the stake that applied to a hole.
func (s *Session) captureStakeForHole(g *Game, idx int) {
	g.Ledger.Stake[idx] = g.Press.Stake
}

// writeContributionForHole records the last scored contributions against a hole.
func (s *Session) writeContributionForHole(g *Game, idx int) {
	g.Ledger.ContribA[idx] = g.HoleContribA
	g.Ledger.ContribB[idx] = g.HoleContribB
}

// recomputeAggregatesFromLedger sets every team's points to the sum of its
// ledger, never trusting a running total.
func (s *Session) recomputeAggregatesFromLedger() {
	for gi := range s.games {
		g := &s.games[gi]
		g.A.Points = g.Ledger.Total(match.TeamA)
		g.B.Points = g.Ledger.Total(match.TeamB)
	}
}
