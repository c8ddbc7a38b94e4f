package match

// PressState tracks the stake in force for a game and which presses each side
// has used. The stake only ever doubles until Reset.
type PressState struct {
	Stake         int `json:"stake"`
	StartingStake int `json:"starting_stake"`
	// used is indexed by [half][side].
	used [2][2]bool
}

// NewPressState returns a state at the starting stake with every press unused.
func NewPressState(startingStake int) PressState {
	return PressState{Stake: startingStake, StartingStake: startingStake}
}

// Reset restores the starting stake and clears every press flag. This is the
// hole-1 lock.
func (p *PressState) Reset() {
	p.Stake = p.StartingStake
	p.used = [2][2]bool{}
}

// Used reports whether the side has pressed in the given half.
func (p *PressState) Used(h Half, s Side) bool {
	return p.used[h][s]
}

// Press doubles the stake for the side's press in the given half. It returns
// false and changes nothing when that press was already used.
func (p *PressState) Press(s Side, h Half) bool {
	if p.used[h][s] {
		return false
	}
	p.used[h][s] = true
	p.Stake *= 2
	return true
}

// Courtesy doubles the stake unconditionally.
func (p *PressState) Courtesy() {
	p.Stake *= 2
}

// Flags returns the four press flags for display.
func (p *PressState) Flags() PressFlags {
	return PressFlags{
		FrontA: p.used[Front][TeamA],
		FrontB: p.used[Front][TeamB],
		BackA:  p.used[Back][TeamA],
		BackB:  p.used[Back][TeamB],
	}
}

// PressFlags is the exported view of which presses have been used.
type PressFlags struct {
	FrontA bool `json:"front_a"`
	FrontB bool `json:"front_b"`
	BackA  bool `json:"back_a"`
	BackB  bool `json:"back_b"`
}

// Trailing returns the side strictly behind on points. ok is false on a tie.
func Trailing(pointsA, pointsB int) (side Side, ok bool) {
	switch {
	case pointsA < pointsB:
		return TeamA, true
	case pointsB < pointsA:
		return TeamB, true
	default:
		return TeamA, false
	}
}
