package processor

import (
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/roundstore"
)

// Store defines the database operations required by the processor.
type Store interface {
	GetRound(id string) (*roundstore.StoredRound, error)
	ListRounds(status round.Status) ([]*roundstore.StoredRound, error)
	SettleRound(id string, points map[string]int) (bool, error)
}
