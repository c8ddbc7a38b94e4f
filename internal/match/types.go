package match

import "fmt"

// Points awarded per unit of stake.
const (
	LowBallPoints  = 3
	LowTotalPoints = 2
)

// Side identifies one of the two teams in a game.
type Side int

const (
	TeamA Side = iota
	TeamB
)

func (s Side) String() string {
	if s == TeamA {
		return "A"
	}
	return "B"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "A":
		*s = TeamA
	case "B":
		*s = TeamB
	default:
		return fmt.Errorf("unknown side %q", b)
	}
	return nil
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == TeamA {
		return TeamB
	}
	return TeamA
}

// Half is the nine a hole belongs to, used for press eligibility.
type Half int

const (
	Front Half = iota
	Back
)

func (h Half) String() string {
	if h == Front {
		return "front"
	}
	return "back"
}

func (h Half) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Half) UnmarshalText(b []byte) error {
	switch string(b) {
	case "front":
		*h = Front
	case "back":
		*h = Back
	default:
		return fmt.Errorf("unknown half %q", b)
	}
	return nil
}

// HalfOf returns the nine containing the 1-based hole number.
func HalfOf(hole int) Half {
	if hole <= 9 {
		return Front
	}
	return Back
}

// TeamHole is a team's net result on one hole.
type TeamHole struct {
	Low     int `json:"low"`
	Total   int `json:"total"`
	Entered int `json:"entered"`
}

// Result is the points each side earns on one hole.
type Result struct {
	A        int `json:"a"`
	B        int `json:"b"`
	LowBallA int `json:"low_ball_a"`
	TotalA   int `json:"total_a"`
}

// For returns the contribution of the given side.
func (r Result) For(s Side) int {
	if s == TeamA {
		return r.A
	}
	return r.B
}
