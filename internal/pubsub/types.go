package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. It doubles
// as the topic name.
type EventType string

const (
	EventRoundStarted   EventType = "round-started"
	EventHoleScored     EventType = "hole-scored"
	EventHoleEdited     EventType = "hole-edited"
	EventPressTaken     EventType = "press-taken"
	EventRoundCompleted EventType = "round-completed"
	EventRoundRestarted EventType = "round-restarted"
)

// RoundEvent is the payload published for every round change.
type RoundEvent struct {
	RoundID     string              `msgpack:"round_id"`
	Type        EventType           `msgpack:"type"`
	Hole        int                 `msgpack:"hole,omitempty"`
	CurrentHole int                 `msgpack:"current_hole"`
	Status      round.Status        `msgpack:"status"`
	Press       *round.PressOutcome `msgpack:"press,omitempty"`
	Points      []int               `msgpack:"points,omitempty"`
	OccurredAt  int64               `msgpack:"occurred_at"`
}
