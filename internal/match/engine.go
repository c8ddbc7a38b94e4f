package match

// Summarize reduces the net scores of a team's entered players to the team's
// low ball and total. A team with nobody entered has low and total of 0.
func Summarize(nets []int) TeamHole {
	if len(nets) == 0 {
		return TeamHole{}
	}
	th := TeamHole{Low: nets[0], Entered: len(nets)}
	for _, n := range nets {
		if n < th.Low {
			th.Low = n
		}
		th.Total += n
	}
	return th
}

// Score compares two teams on one hole at the given stake. The lower low ball
// earns LowBallPoints×stake and the lower total earns LowTotalPoints×stake;
// the other side loses the same amount and ties score nothing.
func Score(a, b TeamHole, stake int) Result {
	low := compare(a.Low, b.Low) * LowBallPoints * stake
	total := compare(a.Total, b.Total) * LowTotalPoints * stake
	return Result{
		A:        low + total,
		B:        -(low + total),
		LowBallA: low,
		TotalA:   total,
	}
}

// compare returns 1 when a wins (is lower), -1 when b wins and 0 on a tie.
func compare(a, b int) int {
	switch {
	case a < b:
		return 1
	case b < a:
		return -1
	default:
		return 0
	}
}
