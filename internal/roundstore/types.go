package roundstore

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
)

// ErrRoundNotFound is returned when no round has the requested id.
var ErrRoundNotFound = errors.New("round not found")

// store handles all database operations for rounds and favorite players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// StoredRound is a persisted round. Status and CurrentHole are denormalized
// from the record so rounds can be listed without replaying them.
type StoredRound struct {
	ID            string       `json:"id"`
	Course        string       `json:"course"`
	Tee           string       `json:"tee"`
	StartingStake int          `json:"starting_stake"`
	Status        round.Status `json:"status"`
	CurrentHole   int          `json:"current_hole"`
	Record        round.Record `json:"record"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// FavoritePlayer is a player remembered from earlier rounds to speed up setup.
type FavoritePlayer struct {
	Name            string    `json:"name"`
	Handicap        int       `json:"handicap"`
	RoundsPlayed    int       `json:"rounds_played"`
	LastPlayedAt    time.Time `json:"last_played_at"`
	RoundsCompleted int       `json:"rounds_completed"`
	CareerPoints    int       `json:"career_points"`
}
