package notifier

import "github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"

// Notifier defines a high-level interface for sending notifications about round events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendRoundStarted(roundID string, snap round.Snapshot, dryRun bool) error
	SendHoleResult(roundID string, res *round.HoleResult, dryRun bool) error
	SendPress(roundID string, team string, out round.PressOutcome, dryRun bool) error
	SendFinalTally(roundID string, snap round.Snapshot, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(roundID string, snap round.Snapshot) (any, error)
}

// Nop drops every notification. It is used when Slack is not configured.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) SendRoundStarted(string, round.Snapshot, bool) error { return nil }
func (Nop) SendHoleResult(string, *round.HoleResult, bool) error { return nil }
func (Nop) SendPress(string, string, round.PressOutcome, bool) error { return nil }
func (Nop) SendFinalTally(string, round.Snapshot, bool) error { return nil }

func (Nop) FormatStandingsResponse(roundID string, snap round.Snapshot) (any, error) {
	return map[string]string{"response_type": "ephemeral", "text": "Round " + roundID}, nil
}
