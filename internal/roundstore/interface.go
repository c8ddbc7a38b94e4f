package roundstore

import "github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"

// RoundStore defines the interface for persisting rounds and favorite players.
type RoundStore interface {
	SaveRound(r *StoredRound) error
	GetRound(id string) (*StoredRound, error)
	// ListRounds returns rounds newest first. An empty status lists every round.
	ListRounds(status round.Status) ([]*StoredRound, error)
	DeleteRound(id string) error
	CountRounds() (map[round.Status]int, error)
	UpsertFavoritePlayer(name string, handicap int) error
	GetFavoritePlayers() ([]FavoritePlayer, error)
	// SettleRound credits final points by player name once per round.
	SettleRound(id string, points map[string]int) (bool, error)
}
