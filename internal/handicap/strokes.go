package handicap

// HolesPerRound is the number of holes a handicap is spread across.
const HolesPerRound = 18

// StrokesForHole returns the strokes allocated to a player on a hole with the
// given difficulty rank (1 = hardest, 18 = easiest). A positive result is
// subtracted from gross; a negative result is added back.
//
// Whole cycles of 18 go to every hole. The remainder goes to the hardest
// holes for a regular handicap and to the easiest holes for a plus handicap.
func StrokesForHole(h Handicap, rank int) int {
	v := int(h)
	if v == 0 {
		return 0
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	cycles := abs / HolesPerRound
	remainder := abs % HolesPerRound

	if v > 0 {
		if rank <= remainder {
			return cycles + 1
		}
		return cycles
	}
	if remainder > 0 && rank >= HolesPerRound+1-remainder {
		return -(cycles + 1)
	}
	return -cycles
}

// Net converts a gross score to net for the given hole rank.
func Net(gross int, h Handicap, rank int) int {
	return gross - StrokesForHole(h, rank)
}
