package scorekeeper

import (
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/notifier"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/roundstore"
)

// Store defines the persistence operations required by the keeper.
type Store interface {
	roundstore.RoundStore
}

// Notifier defines the notification operations required by the keeper.
type Notifier interface {
	notifier.Notifier
}
