package round_test

import (
	"errors"
	"testing"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(n int) []round.RosterEntry {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}
	entries := make([]round.RosterEntry, n)
	for i := range entries {
		entries[i] = round.RosterEntry{Name: names[i], Handicap: "0"}
	}
	return entries
}

func newRound(t *testing.T, players int) *round.Session {
	t.Helper()
	s, err := round.Setup(roster(players), course.Bloomington(), "", 1)
	require.NoError(t, err)
	return s
}

// play submits the same scores for n holes.
func play(t *testing.T, s *round.Session, n int, gross ...int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.SubmitHoleScores(gross)
		require.NoError(t, err)
	}
}

// ignoreIDs drops player ids so independently built rounds can be compared.
var ignoreIDs = cmp.Options{
	cmpopts.IgnoreFields(round.PlayerView{}, "ID"),
	cmpopts.IgnoreFields(round.TeamView{}, "Players"),
}

func TestSetup_FourPlayers(t *testing.T) {
	s := newRound(t, 4)

	assert.Equal(t, 1, s.CurrentHole())
	assert.Equal(t, round.StatusNotStarted, s.Status())
	assert.Equal(t, "White", s.Tee())

	games := s.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "Alice & Bob", games[0].A.Name)
	assert.Equal(t, "Carol & Dave", games[0].B.Name)
	assert.Equal(t, 1, games[0].Press.Stake)
	assert.Equal(t, round.Ledger{}, games[0].Ledger)

	for _, p := range s.Players() {
		assert.NotEmpty(t, p.ID)
		for _, g := range p.Gross {
			assert.Equal(t, round.Unset, g)
		}
	}
}

func TestSetup_FivePlayers(t *testing.T) {
	s := newRound(t, 5)

	games := s.Games()
	require.Len(t, games, 3)
	want := [][2]string{
		{"Alice & Bob", "Carol & Dave"},
		{"Alice & Bob", "Carol & Eve"},
		{"Alice & Bob", "Dave & Eve"},
	}
	for i, g := range games {
		assert.Equal(t, i, g.Index)
		assert.Equal(t, want[i][0], g.A.Name)
		assert.Equal(t, want[i][1], g.B.Name)
	}
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name     string
		entries  []round.RosterEntry
		tee      string
		stake    int
		wantErr  error
		wantSlot int
	}{
		{name: "three players", entries: roster(3), stake: 1, wantErr: round.ErrInvalidPlayerCount, wantSlot: -1},
		{name: "six players", entries: append(roster(5), round.RosterEntry{Name: "Frank", Handicap: "2"}), stake: 1, wantErr: round.ErrInvalidPlayerCount, wantSlot: -1},
		{
			name:     "blank name",
			entries:  []round.RosterEntry{{Name: "A", Handicap: "1"}, {Name: "  ", Handicap: "1"}, {Name: "C", Handicap: "1"}, {Name: "D", Handicap: "1"}},
			stake:    1,
			wantErr:  round.ErrEmptyPlayerName,
			wantSlot: 1,
		},
		{
			name:     "bad handicap",
			entries:  []round.RosterEntry{{Name: "A", Handicap: "1"}, {Name: "B", Handicap: "1"}, {Name: "C", Handicap: "scratch"}, {Name: "D", Handicap: "1"}},
			stake:    1,
			wantErr:  round.ErrInvalidHandicapInput,
			wantSlot: 2,
		},
		{name: "unknown tee", entries: roster(4), tee: "Red", stake: 1, wantErr: round.ErrInvalidTee, wantSlot: -1},
		{name: "zero stake", entries: roster(4), stake: 0, wantErr: round.ErrInvalidStake, wantSlot: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := round.Setup(tt.entries, course.Bloomington(), tt.tee, tt.stake)
			assert.Nil(t, s)
			require.ErrorIs(t, err, tt.wantErr)

			var slotErr *round.SlotError
			if tt.wantSlot < 0 {
				assert.False(t, errors.As(err, &slotErr))
				return
			}
			require.ErrorAs(t, err, &slotErr)
			assert.Equal(t, tt.wantSlot, slotErr.Slot)
		})
	}
}

func TestSetup_PlusHandicap(t *testing.T) {
	entries := roster(4)
	entries[0].Handicap = " -4 "
	s, err := round.Setup(entries, course.Bloomington(), "Blue", 2)
	require.NoError(t, err)
	assert.Equal(t, -4, s.Players()[0].Handicap.Value())
	assert.Equal(t, 2, s.StartingStake())
}

func TestSubmitHoleScores_LowBallAndTotal(t *testing.T) {
	s := newRound(t, 4)

	res, err := s.SubmitHoleScores([]int{3, 4, 4, 4})
	require.NoError(t, err)

	require.Len(t, res.Games, 1)
	assert.Equal(t, 1, res.Hole)
	assert.Equal(t, 5, res.Games[0].ContribA)
	assert.Equal(t, -5, res.Games[0].ContribB)
	assert.Equal(t, 3, res.Games[0].LowA.Low)
	assert.Equal(t, 7, res.Games[0].LowA.Total)
	assert.Equal(t, 8, res.Games[0].LowB.Total)

	g := s.Games()[0]
	assert.Equal(t, 5, g.A.Points)
	assert.Equal(t, -5, g.B.Points)
	assert.Equal(t, 2, s.CurrentHole())
	assert.Equal(t, round.StatusInProgress, s.Status())
}

func TestSubmitHoleScores_SplitAndTie(t *testing.T) {
	s := newRound(t, 4)

	// A has the low ball, B the lower total.
	_, err := s.SubmitHoleScores([]int{3, 7, 4, 4})
	require.NoError(t, err)
	g := s.Games()[0]
	assert.Equal(t, 1, g.A.Points)
	assert.Equal(t, -1, g.B.Points)

	_, err = s.SubmitHoleScores([]int{4, 5, 5, 4})
	require.NoError(t, err)
	g = s.Games()[0]
	assert.Equal(t, 1, g.A.Points, "a tied hole scores nothing")
	assert.Equal(t, 0, g.Ledger.ContribA[1])
}

func TestSubmitHoleScores_Validation(t *testing.T) {
	s := newRound(t, 4)

	_, err := s.SubmitHoleScores([]int{4, 4, 4})
	assert.ErrorIs(t, err, round.ErrIncompleteScoreSet)

	_, err = s.SubmitHoleScores([]int{4, 0, 4, 4})
	assert.ErrorIs(t, err, round.ErrInvalidGrossScore)
	var slotErr *round.SlotError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, 1, slotErr.Slot)

	assert.Equal(t, 1, s.CurrentHole(), "a rejected submission changes nothing")
	assert.Equal(t, round.Unset, s.Players()[0].Gross[0])

	_, err = s.SubmitHoleScores([]int{4, 4, 4, 4, 9})
	assert.NoError(t, err, "extra scores are ignored")
}

func TestSubmitHoleScores_CompletesRound(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 17, 4, 4, 5, 5)
	assert.Equal(t, 18, s.CurrentHole())
	assert.Equal(t, round.StatusInProgress, s.Status())

	res, err := s.SubmitHoleScores([]int{4, 4, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, round.StatusComplete, res.Status)
	assert.Equal(t, 18, s.CurrentHole())
	assert.Equal(t, 90, s.Games()[0].A.Points)

	_, err = s.SubmitHoleScores([]int{4, 4, 5, 5})
	assert.ErrorIs(t, err, round.ErrRoundComplete)
}

func TestPress_IgnoredOnFirstHole(t *testing.T) {
	s := newRound(t, 4)

	out, err := s.Press(0)
	require.NoError(t, err)
	assert.False(t, out.Applied)

	g := s.Games()[0]
	assert.Equal(t, 1, g.Press.Stake)
	assert.Equal(t, match.PressFlags{}, g.Press.Flags())
}

func TestPress_TrailingTeamOncePerNine(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 4, 4, 4, 5, 5)
	require.Equal(t, 5, s.CurrentHole())

	out, err := s.Press(0)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, match.TeamB, out.Side)
	assert.Equal(t, match.Front, out.Half)
	assert.Equal(t, 5, out.Hole)
	assert.Equal(t, 2, out.Stake)

	g := s.Games()[0]
	assert.Equal(t, 2, g.Press.Stake)
	assert.True(t, g.Press.Flags().FrontB)
	assert.Equal(t, 5, g.Presses.FrontB)

	out, err = s.Press(0)
	require.NoError(t, err)
	assert.False(t, out.Applied, "second front press is ignored")
	assert.Equal(t, 2, s.Games()[0].Press.Stake)

	res, err := s.SubmitHoleScores([]int{4, 4, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Games[0].Stake)
	assert.Equal(t, 10, res.Games[0].ContribA)
	assert.Equal(t, 30, s.Games()[0].A.Points)

	play(t, s, 4, 4, 4, 5, 5)
	require.Equal(t, 10, s.CurrentHole())
	out, err = s.Press(0)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, match.Back, out.Half)
	assert.Equal(t, 4, out.Stake)
}

func TestPress_TiedGameIgnored(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 3, 4, 4, 4, 4)

	out, err := s.Press(0)
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.Equal(t, 1, out.Stake)
}

func TestPress_UnknownGame(t *testing.T) {
	s := newRound(t, 4)
	_, err := s.Press(1)
	assert.ErrorIs(t, err, round.ErrUnknownGame)
	_, err = s.GrantCourtesyPress(-1)
	assert.ErrorIs(t, err, round.ErrUnknownGame)
}

func TestGrantCourtesyPress(t *testing.T) {
	s := newRound(t, 5)
	play(t, s, 10, 4, 4, 5, 5, 5)

	out, err := s.GrantCourtesyPress(1)
	require.NoError(t, err)
	assert.False(t, out.Applied, "courtesy is only offered on hole 18")

	play(t, s, 7, 4, 4, 5, 5, 5)
	require.Equal(t, 18, s.CurrentHole())

	out, err = s.GrantCourtesyPress(1)
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, 2, out.Stake)

	res, err := s.SubmitHoleScores([]int{4, 4, 5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Games[1].Stake)
	assert.Equal(t, 1, res.Games[0].Stake)
	assert.Equal(t, 10, res.Games[1].ContribA)
}

func TestEditPastHole_MatchesFreshRound(t *testing.T) {
	holes := [][]int{
		{4, 5, 5, 5},
		{5, 5, 4, 6},
		{4, 4, 5, 5},
		{3, 6, 4, 4},
		{5, 5, 5, 4},
	}
	corrected := []int{6, 6, 3, 4}

	s := newRound(t, 4)
	for _, h := range holes {
		_, err := s.SubmitHoleScores(h)
		require.NoError(t, err)
	}
	res, err := s.EditPastHole(3, corrected)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Hole)
	assert.Equal(t, 6, res.CurrentHole)

	fresh := newRound(t, 4)
	holes[2] = corrected
	for _, h := range holes {
		_, err := fresh.SubmitHoleScores(h)
		require.NoError(t, err)
	}

	if diff := cmp.Diff(fresh.Snapshot(), s.Snapshot(), ignoreIDs); diff != "" {
		t.Errorf("edited round differs from fresh round (-fresh +edited):\n%s", diff)
	}
}

func TestEditPastHole_KeepsPressFacts(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 4, 4, 4, 5, 5)
	out, err := s.Press(0)
	require.NoError(t, err)
	require.True(t, out.Applied)
	play(t, s, 2, 4, 4, 5, 5)

	// Turning hole 2 around does not undo a press already taken.
	_, err = s.EditPastHole(2, []int{6, 6, 3, 3})
	require.NoError(t, err)

	g := s.Games()[0]
	assert.Equal(t, 5, g.Presses.FrontB)
	assert.Equal(t, [round.Holes]int{1, 1, 1, 1, 2, 2}, g.Ledger.Stake)
	assert.Equal(t, -5, g.Ledger.ContribA[1])
	assert.Equal(t, g.Ledger.Total(match.TeamA), g.A.Points)
}

func TestEditPastHole_Errors(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 2, 4, 4, 4, 4)

	_, err := s.EditPastHole(0, []int{4, 4, 4, 4})
	assert.ErrorIs(t, err, round.ErrHoleOutOfRange)
	_, err = s.EditPastHole(19, []int{4, 4, 4, 4})
	assert.ErrorIs(t, err, round.ErrHoleOutOfRange)
	_, err = s.EditPastHole(3, []int{4, 4, 4, 4})
	assert.ErrorIs(t, err, round.ErrHoleNotPlayed)
	_, err = s.EditPastHole(1, []int{4, 4})
	assert.ErrorIs(t, err, round.ErrIncompleteScoreSet)

	assert.Equal(t, 0, s.Games()[0].A.Points)
}

func TestEditPastHole_AfterCompletion(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 18, 4, 4, 4, 4)
	require.Equal(t, round.StatusComplete, s.Status())

	_, err := s.EditPastHole(18, []int{3, 4, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, round.StatusComplete, s.Status())
	assert.Equal(t, 5, s.Games()[0].A.Points)
}

func TestReplay_IsFixedPoint(t *testing.T) {
	s := newRound(t, 5)
	for i := 0; i < 12; i++ {
		gross := []int{4 + i%2, 5, 4 + i%3, 5 - i%2, 4}
		_, err := s.SubmitHoleScores(gross)
		require.NoError(t, err)
		if i == 6 {
			_, err := s.Press(0)
			require.NoError(t, err)
		}
	}

	before := s.Snapshot()
	s.Replay()
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("replay changed state (-before +after):\n%s", diff)
	}
	s.Replay()
	assert.Equal(t, before, s.Snapshot())
}

func TestAggregates_MatchLedger(t *testing.T) {
	s := newRound(t, 5)
	for i := 0; i < 18; i++ {
		gross := []int{3 + i%4, 4 + i%2, 5 - i%3, 4, 3 + i%5}
		_, err := s.SubmitHoleScores(gross)
		require.NoError(t, err)
		if i == 4 || i == 11 {
			for gi := range s.Games() {
				_, err := s.Press(gi)
				require.NoError(t, err)
			}
		}
	}

	for _, g := range s.Games() {
		assert.Equal(t, g.Ledger.Total(match.TeamA), g.A.Points)
		assert.Equal(t, g.Ledger.Total(match.TeamB), g.B.Points)
		assert.Equal(t, 0, g.A.Points+g.B.Points, "games are zero sum")

		for h := 1; h < round.Holes; h++ {
			assert.GreaterOrEqual(t, g.Ledger.Stake[h], g.Ledger.Stake[h-1], "stake never drops within a round")
		}
	}

	total := 0
	for i := range s.Players() {
		total += s.PlayerPoints(i)
	}
	assert.Equal(t, 0, total)
}

func TestSetPressSchedule(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 12, 4, 4, 5, 5)

	err := s.SetPressSchedule(0, round.PressLog{FrontA: 3, BackB: 11})
	require.NoError(t, err)

	g := s.Games()[0]
	assert.Equal(t, 1, g.Ledger.Stake[1])
	assert.Equal(t, 2, g.Ledger.Stake[2])
	assert.Equal(t, 2, g.Ledger.Stake[9])
	assert.Equal(t, 4, g.Ledger.Stake[10])
	assert.Equal(t, 4, g.Press.Stake)
	assert.Equal(t, match.PressFlags{FrontA: true, BackB: true}, g.Press.Flags())
	assert.Equal(t, g.Ledger.Total(match.TeamA), g.A.Points)

	require.NoError(t, s.SetPressSchedule(0, round.PressLog{}))
	assert.Equal(t, 60, s.Games()[0].A.Points)
}

func TestSetPressSchedule_Invalid(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 5, 4, 4, 5, 5)

	tests := []struct {
		name string
		log  round.PressLog
	}{
		{name: "front press on hole 1", log: round.PressLog{FrontA: 1}},
		{name: "front press on back nine", log: round.PressLog{FrontB: 10}},
		{name: "back press on front nine", log: round.PressLog{BackA: 9}},
		{name: "press after current hole", log: round.PressLog{FrontA: 7}},
		{name: "courtesy before 18", log: round.PressLog{Courtesy: 1}},
		{name: "negative courtesy", log: round.PressLog{Courtesy: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.SetPressSchedule(0, tt.log), round.ErrInvalidPressHole)
		})
	}
	assert.ErrorIs(t, s.SetPressSchedule(3, round.PressLog{}), round.ErrUnknownGame)
	assert.Equal(t, 25, s.Games()[0].A.Points)
}

func TestRestart(t *testing.T) {
	s := newRound(t, 4)
	play(t, s, 6, 4, 4, 5, 5)
	_, err := s.Press(0)
	require.NoError(t, err)
	before := s.Players()

	s.Restart()

	assert.Equal(t, 1, s.CurrentHole())
	assert.Equal(t, round.StatusNotStarted, s.Status())
	after := s.Players()
	for i := range after {
		assert.Equal(t, before[i].Name, after[i].Name)
		assert.Equal(t, before[i].Handicap, after[i].Handicap)
		assert.NotEqual(t, before[i].ID, after[i].ID)
		assert.Equal(t, round.Unset, after[i].Gross[0])
	}
	g := s.Games()[0]
	assert.Equal(t, 0, g.A.Points)
	assert.Equal(t, 1, g.Press.Stake)
	assert.Equal(t, round.PressLog{}, g.Presses)
}

func TestHoleResult_Strokes(t *testing.T) {
	entries := roster(4)
	entries[0].Handicap = "18"
	entries[2].Handicap = "-4"
	s, err := round.Setup(entries, course.Bloomington(), "", 1)
	require.NoError(t, err)

	// Hole 12 is the easiest on the card, so the plus golfer gives one back.
	play(t, s, 11, 4, 4, 4, 4)
	res, err := s.SubmitHoleScores([]int{5, 4, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 12, res.Hole)
	assert.Equal(t, 3, res.Par)
	assert.Equal(t, 18, res.Rank)
	assert.Equal(t, 1, res.Players[0].Strokes)
	assert.Equal(t, 4, res.Players[0].Net)
	assert.Equal(t, -1, res.Players[2].Strokes)
	assert.Equal(t, 4, res.Players[2].Net)

	_, err = s.HoleResult(13)
	assert.ErrorIs(t, err, round.ErrHoleNotPlayed)
}

func TestRecordRestore(t *testing.T) {
	s := newRound(t, 5)
	play(t, s, 6, 4, 5, 5, 4, 6)
	_, err := s.Press(2)
	require.NoError(t, err)
	play(t, s, 3, 5, 4, 4, 4, 4)

	rec := s.Record()
	assert.Equal(t, "Bloomington Country Club", rec.Course)
	require.Len(t, rec.Players, 5)
	require.Len(t, rec.Presses, 3)

	restored, err := round.Restore(rec, course.Bloomington())
	require.NoError(t, err)
	if diff := cmp.Diff(s.Snapshot(), restored.Snapshot()); diff != "" {
		t.Errorf("restored round differs (-saved +restored):\n%s", diff)
	}
}

func TestRestore_Invalid(t *testing.T) {
	rec := newRound(t, 4).Record()
	rec.Players[1].Gross[0] = 0
	_, err := round.Restore(rec, course.Bloomington())
	assert.ErrorIs(t, err, round.ErrInvalidGrossScore)

	rec = newRound(t, 4).Record()
	rec.Presses = append(rec.Presses, round.PressLog{}, round.PressLog{})
	_, err = round.Restore(rec, course.Bloomington())
	assert.ErrorIs(t, err, round.ErrUnknownGame)
}

func TestRestore_InvalidPresses(t *testing.T) {
	tests := []struct {
		name  string
		press round.PressLog
	}{
		{name: "first hole", press: round.PressLog{FrontA: 1}},
		{name: "front press on the back nine", press: round.PressLog{FrontB: 15}},
		{name: "back press on the front nine", press: round.PressLog{BackA: 4}},
		{name: "hole not reached", press: round.PressLog{FrontA: 8}},
		{name: "courtesy before hole 18", press: round.PressLog{Courtesy: 1}},
		{name: "negative courtesy", press: round.PressLog{Courtesy: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRound(t, 4)
			play(t, s, 3, 4, 4, 5, 5)

			rec := s.Record()
			rec.Presses[0] = tt.press
			_, err := round.Restore(rec, course.Bloomington())
			assert.ErrorIs(t, err, round.ErrInvalidPressHole)
		})
	}
}
