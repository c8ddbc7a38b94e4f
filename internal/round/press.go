package round

import (
	"fmt"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
)

// PressOutcome describes a press request. Applied is false when the request
// was ignored because nobody was eligible.
type PressOutcome struct {
	Game     int        `json:"game"`
	Applied  bool       `json:"applied"`
	Courtesy bool       `json:"courtesy"`
	Side     match.Side `json:"side"`
	Half     match.Half `json:"half"`
	Hole     int        `json:"hole"`
	Stake    int        `json:"stake"`
}

// Press lets the team trailing in a game double the stake from the current
// hole on, once per nine. Requests on hole 1, on a tied game, or for a nine
// already pressed are ignored.
func (s *Session) Press(gameIndex int) (PressOutcome, error) {
	g, err := s.game(gameIndex)
	if err != nil {
		return PressOutcome{}, err
	}

	out := PressOutcome{Game: gameIndex, Hole: s.currentHole, Half: match.HalfOf(s.currentHole), Stake: g.Press.Stake}
	if s.status != StatusInProgress || s.currentHole <= 1 {
		return out, nil
	}
	side, behind := match.Trailing(g.A.Points, g.B.Points)
	if !behind {
		return out, nil
	}
	out.Side = side
	if !g.Press.Press(side, out.Half) {
		return out, nil
	}

	*g.Presses.hole(side, out.Half) = s.currentHole
	out.Applied = true
	out.Stake = g.Press.Stake
	return out, nil
}

// GrantCourtesyPress doubles a game's stake for hole 18. It is only offered
// while hole 18 is the hole being played.
func (s *Session) GrantCourtesyPress(gameIndex int) (PressOutcome, error) {
	g, err := s.game(gameIndex)
	if err != nil {
		return PressOutcome{}, err
	}

	out := PressOutcome{Game: gameIndex, Courtesy: true, Hole: s.currentHole, Half: match.Back, Stake: g.Press.Stake}
	if s.status != StatusInProgress || s.currentHole < Holes {
		return out, nil
	}
	g.Press.Courtesy()
	g.Presses.Courtesy++
	out.Applied = true
	out.Stake = g.Press.Stake
	return out, nil
}

// SetPressSchedule replaces the presses recorded for a game and replays the
// round. Front presses must fall on holes 2-9 and back presses on 10-18, none
// later than the current hole; courtesy presses need hole 18 in reach.
func (s *Session) SetPressSchedule(gameIndex int, presses PressLog) error {
	if _, err := s.game(gameIndex); err != nil {
		return err
	}
	if err := s.validatePresses(presses); err != nil {
		return err
	}

	scratch := s.clone()
	scratch.games[gameIndex].Presses = presses
	scratch.replay()
	*s = *scratch
	return nil
}

func (s *Session) validatePresses(p PressLog) error {
	check := func(name string, hole, from, to int) error {
		if hole == 0 {
			return nil
		}
		if hole < from || hole > to || hole > s.currentHole {
			return fmt.Errorf("%w: %s press on hole %d", ErrInvalidPressHole, name, hole)
		}
		return nil
	}

	if err := check("front A", p.FrontA, 2, 9); err != nil {
		return err
	}
	if err := check("front B", p.FrontB, 2, 9); err != nil {
		return err
	}
	if err := check("back A", p.BackA, 10, Holes); err != nil {
		return err
	}
	if err := check("back B", p.BackB, 10, Holes); err != nil {
		return err
	}
	if p.Courtesy < 0 || (p.Courtesy > 0 && s.currentHole < Holes) {
		return fmt.Errorf("%w: %d courtesy presses before hole 18", ErrInvalidPressHole, p.Courtesy)
	}
	return nil
}

func (s *Session) game(index int) (*Game, error) {
	if index < 0 || index >= len(s.games) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGame, index)
	}
	return &s.games[index], nil
}
