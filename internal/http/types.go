package http

import (
	"net/http"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/config"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/notifier"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/processor"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/scorekeeper"
)

type Server struct {
	Keeper         *scorekeeper.Keeper
	Processor      *processor.Processor
	PubSub         pubsub.PubSubClient
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}

// scoresRequest is the body of a hole submission or edit.
type scoresRequest struct {
	Gross []int `json:"gross"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	// Slot is the 1-based player slot the error refers to, if any.
	Slot int `json:"slot,omitempty"`
}

// roundListItem is a stored round without its score log.
type roundListItem struct {
	ID          string       `json:"id"`
	Course      string       `json:"course"`
	Tee         string       `json:"tee"`
	Status      round.Status `json:"status"`
	CurrentHole int          `json:"current_hole"`
	Players     []string     `json:"players"`
	CreatedAt   int64        `json:"created_at"`
}

// pushMessage is the envelope of a Pub/Sub push delivery.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"`
	} `json:"message"`
}
