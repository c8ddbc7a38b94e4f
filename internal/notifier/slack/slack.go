package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/notifier"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending round updates to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendRoundStarted(roundID string, snap round.Snapshot, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatRoundStarted(roundID, snap), dryRun)
	return err
}

func (s *Notifier) SendHoleResult(roundID string, res *round.HoleResult, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatHoleResult(res), dryRun)
	return err
}

func (s *Notifier) SendPress(roundID string, team string, out round.PressOutcome, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatPress(team, out), dryRun)
	return err
}

func (s *Notifier) SendFinalTally(roundID string, snap round.Snapshot, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatFinalTally(snap), dryRun)
	return err
}

// FormatStandingsResponse formats the standings of a round for a slash command response.
func (s *Notifier) FormatStandingsResponse(roundID string, snap round.Snapshot) (any, error) {
	return s.formatStandings(roundID, snap), nil
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("plain_text", text, true, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject("mrkdwn", text, false, false)
}

// signed renders points with an explicit sign.
func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

// formatRoundStarted announces the roster and the games.
func (s *Notifier) formatRoundStarted(roundID string, snap round.Snapshot) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plain("⛳ Round started at " + snap.Course)),
	}

	var players []string
	for _, p := range snap.Players {
		players = append(players, fmt.Sprintf("• %s (%s)", p.Name, handicap.Handicap(p.Handicap)))
	}
	blocks = append(blocks, slack.NewSectionBlock(plain("Players:\n"+strings.Join(players, "\n")), nil, nil))

	var games []string
	for _, g := range snap.Games {
		games = append(games, fmt.Sprintf("Game %d: %s vs %s", g.Index+1, g.TeamA.Name, g.TeamB.Name))
	}
	blocks = append(blocks, slack.NewSectionBlock(plain(strings.Join(games, "\n")), nil, nil))

	blocks = append(blocks, slack.NewContextBlock("",
		plain(fmt.Sprintf("Tee: %s • Stake: %d • Round: %s", snap.Tee, snap.StartingStake, roundID)),
	))
	return slack.NewBlockMessage(blocks...)
}

// formatHoleResult creates the Slack message for a scored hole using Block Kit.
func (s *Notifier) formatHoleResult(res *round.HoleResult) slack.Message {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plain(fmt.Sprintf("⛳ Hole %d (par %d)", res.Hole, res.Par))),
	}

	var scores []string
	for _, p := range res.Players {
		line := fmt.Sprintf("• %s: %d", p.Name, p.Gross)
		if p.Strokes != 0 {
			line += fmt.Sprintf(" (net %d)", p.Net)
		}
		scores = append(scores, line)
	}
	blocks = append(blocks, slack.NewSectionBlock(plain(strings.Join(scores, "\n")), nil, nil))

	for _, g := range res.Games {
		text := fmt.Sprintf("*%s* %s vs *%s* %s at stake %d\nTotals: %s / %s",
			g.TeamA, signed(g.ContribA), g.TeamB, signed(g.ContribB), g.Stake,
			signed(g.PointsA), signed(g.PointsB))
		blocks = append(blocks, slack.NewSectionBlock(markdown(text), nil, nil))
	}

	next := fmt.Sprintf("Next up: hole %d", res.CurrentHole)
	if res.Status == round.StatusComplete {
		next = "Round complete"
	}
	blocks = append(blocks, slack.NewContextBlock("", plain(next)))
	return slack.NewBlockMessage(blocks...)
}

// formatPress creates the Slack message for a press.
func (s *Notifier) formatPress(team string, out round.PressOutcome) slack.Message {
	header := "💥 Press!"
	text := fmt.Sprintf("%s pressed on hole %d (%s nine).", team, out.Hole, out.Half)
	if out.Courtesy {
		header = "🤝 Courtesy press"
		text = "Courtesy press granted on hole 18."
	}
	blocks := []slack.Block{
		slack.NewHeaderBlock(plain(header)),
		slack.NewSectionBlock(plain(fmt.Sprintf("%s Game %d stake is now %d.", text, out.Game+1, out.Stake)), nil, nil),
	}
	return slack.NewBlockMessage(blocks...)
}

// formatFinalTally creates the closing Slack message with game results and player standings.
func (s *Notifier) formatFinalTally(snap round.Snapshot) slack.Message {
	return slack.NewBlockMessage(s.tallyBlocks("🏆 Final tally", snap)...)
}

// formatStandings shows the live tally of a round.
func (s *Notifier) formatStandings(roundID string, snap round.Snapshot) slack.Message {
	blocks := s.tallyBlocks(fmt.Sprintf("📋 Standings after hole %d", holesPlayed(snap)), snap)
	blocks = append(blocks, slack.NewContextBlock("", plain("Round: "+roundID)))
	return slack.NewBlockMessage(blocks...)
}

func holesPlayed(snap round.Snapshot) int {
	if snap.Status == round.StatusComplete {
		return round.Holes
	}
	return snap.CurrentHole - 1
}

func (s *Notifier) tallyBlocks(title string, snap round.Snapshot) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(plain(title)),
	}

	for _, g := range snap.Games {
		text := fmt.Sprintf("Game %d: *%s* %s vs *%s* %s",
			g.Index+1, g.TeamA.Name, signed(g.TeamA.Points), g.TeamB.Name, signed(g.TeamB.Points))
		blocks = append(blocks, slack.NewSectionBlock(markdown(text), nil, nil))
	}

	players := make([]round.PlayerView, len(snap.Players))
	copy(players, snap.Players)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Points > players[j].Points
	})
	var standings []string
	for i, p := range players {
		standings = append(standings, fmt.Sprintf("%d. %s: %s", i+1, p.Name, signed(p.Points)))
	}
	return append(blocks,
		slack.NewDividerBlock(),
		slack.NewSectionBlock(plain("Standings:\n"+strings.Join(standings, "\n")), nil, nil),
	)
}
