package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func testRound(t *testing.T) *round.Session {
	t.Helper()
	s, err := round.Setup([]round.RosterEntry{
		{Name: "Alice", Handicap: "0"},
		{Name: "Bob", Handicap: "18"},
		{Name: "Carol", Handicap: "0"},
		{Name: "Dave", Handicap: "0"},
	}, course.Bloomington(), "", 1)
	require.NoError(t, err)
	return s
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(plain("hello"), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendHoleResult_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	s := testRound(t)
	res, err := s.SubmitHoleScores([]int{4, 5, 5, 5})
	require.NoError(t, err)

	require.NoError(t, notifier.SendHoleResult("r1", res, false))
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendHoleResult")
}

func TestFormatHoleResult(t *testing.T) {
	s := testRound(t)
	res, err := s.SubmitHoleScores([]int{4, 5, 5, 5})
	require.NoError(t, err)

	client := &Notifier{channelID: "C123"}
	msg := client.formatHoleResult(res)
	require.Len(t, msg.Blocks.BlockSet, 4)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Equal(t, "⛳ Hole 1 (par 4)", header.Text.Text)

	scores, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "• Alice: 4\n• Bob: 5 (net 4)\n• Carol: 5\n• Dave: 5", scores.Text.Text)

	game, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Alice & Bob* +5 vs *Carol & Dave* -5 at stake 1\nTotals: +5 / -5", game.Text.Text)

	next, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
	require.True(t, ok)
	text, ok := next.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "Next up: hole 2", text.Text)
}

func TestFormatPress(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	msg := client.formatPress("Carol & Dave", round.PressOutcome{Game: 0, Applied: true, Side: match.TeamB, Half: match.Front, Hole: 5, Stake: 2})
	require.Len(t, msg.Blocks.BlockSet, 2)
	header := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Equal(t, "💥 Press!", header.Text.Text)
	body := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "Carol & Dave pressed on hole 5 (front nine). Game 1 stake is now 2.", body.Text.Text)

	msg = client.formatPress("", round.PressOutcome{Game: 2, Applied: true, Courtesy: true, Half: match.Back, Hole: 18, Stake: 8})
	header = msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Equal(t, "🤝 Courtesy press", header.Text.Text)
	body = msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "Courtesy press granted on hole 18. Game 3 stake is now 8.", body.Text.Text)
}

func TestFormatFinalTally(t *testing.T) {
	s := testRound(t)
	for i := 0; i < round.Holes; i++ {
		_, err := s.SubmitHoleScores([]int{6, 6, 4, 5})
		require.NoError(t, err)
	}

	client := &Notifier{channelID: "C123"}
	msg := client.formatFinalTally(s.Snapshot())
	require.Len(t, msg.Blocks.BlockSet, 4)

	game := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "Game 1: *Alice & Bob* -90 vs *Carol & Dave* +90", game.Text.Text)

	standings := msg.Blocks.BlockSet[3].(*slackapi.SectionBlock)
	assert.Equal(t, "Standings:\n1. Carol: +90\n2. Dave: +90\n3. Alice: -90\n4. Bob: -90", standings.Text.Text)
}

func TestFormatRoundStarted(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatRoundStarted("r1", testRound(t).Snapshot())
	require.Len(t, msg.Blocks.BlockSet, 4)

	players := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "Players:\n• Alice (0)\n• Bob (18)\n• Carol (0)\n• Dave (0)", players.Text.Text)
	games := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	assert.Equal(t, "Game 1: Alice & Bob vs Carol & Dave", games.Text.Text)
}

func TestFormatStandingsResponse(t *testing.T) {
	s := testRound(t)
	for i := 0; i < 3; i++ {
		_, err := s.SubmitHoleScores([]int{6, 6, 4, 5})
		require.NoError(t, err)
	}

	client := &Notifier{channelID: "C123"}
	resp, err := client.FormatStandingsResponse("r1", s.Snapshot())
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 5)

	header := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Equal(t, "📋 Standings after hole 3", header.Text.Text)
	game := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "Game 1: *Alice & Bob* -15 vs *Carol & Dave* +15", game.Text.Text)
}
