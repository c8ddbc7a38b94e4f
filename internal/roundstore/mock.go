package roundstore

import (
	"fmt"
	"sync"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
)

// MockStore is a mock implementation of the RoundStore interface for testing.
// Without a spy set it keeps rounds in memory. It is safe for concurrent use.
type MockStore struct {
	mu     sync.Mutex
	rounds map[string]StoredRound

	// Spies for method calls
	SaveRoundFunc            func(r *StoredRound) error
	GetRoundFunc             func(id string) (*StoredRound, error)
	ListRoundsFunc           func(status round.Status) ([]*StoredRound, error)
	DeleteRoundFunc          func(id string) error
	CountRoundsFunc          func() (map[round.Status]int, error)
	UpsertFavoritePlayerFunc func(name string, handicap int) error
	GetFavoritePlayersFunc   func() ([]FavoritePlayer, error)
	SettleRoundFunc          func(id string, points map[string]int) (bool, error)

	// Call records
	SaveRoundCalls            []StoredRound
	GetRoundCalls             []string
	DeleteRoundCalls          []string
	UpsertFavoritePlayerCalls []FavoritePlayer
	SettleRoundCalls          []SettleRoundCall
}

// SettleRoundCall holds the arguments for a call to SettleRound.
type SettleRoundCall struct {
	ID     string
	Points map[string]int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{rounds: make(map[string]StoredRound)}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveRoundCalls = nil
	m.GetRoundCalls = nil
	m.DeleteRoundCalls = nil
	m.UpsertFavoritePlayerCalls = nil
	m.SettleRoundCalls = nil
}

func (m *MockStore) SaveRound(r *StoredRound) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveRoundCalls = append(m.SaveRoundCalls, *r)
	if m.SaveRoundFunc != nil {
		return m.SaveRoundFunc(r)
	}
	m.rounds[r.ID] = *r
	return nil
}

func (m *MockStore) GetRound(id string) (*StoredRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRoundCalls = append(m.GetRoundCalls, id)
	if m.GetRoundFunc != nil {
		return m.GetRoundFunc(id)
	}
	r, ok := m.rounds[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	return &r, nil
}

func (m *MockStore) ListRounds(status round.Status) ([]*StoredRound, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListRoundsFunc != nil {
		return m.ListRoundsFunc(status)
	}
	var out []*StoredRound
	for _, r := range m.rounds {
		if status == "" || r.Status == status {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (m *MockStore) DeleteRound(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteRoundCalls = append(m.DeleteRoundCalls, id)
	if m.DeleteRoundFunc != nil {
		return m.DeleteRoundFunc(id)
	}
	if _, ok := m.rounds[id]; !ok {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	delete(m.rounds, id)
	return nil
}

func (m *MockStore) CountRounds() (map[round.Status]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountRoundsFunc != nil {
		return m.CountRoundsFunc()
	}
	counts := make(map[round.Status]int)
	for _, r := range m.rounds {
		counts[r.Status]++
	}
	return counts, nil
}

func (m *MockStore) UpsertFavoritePlayer(name string, handicap int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertFavoritePlayerCalls = append(m.UpsertFavoritePlayerCalls, FavoritePlayer{Name: name, Handicap: handicap})
	if m.UpsertFavoritePlayerFunc != nil {
		return m.UpsertFavoritePlayerFunc(name, handicap)
	}
	return nil
}

func (m *MockStore) GetFavoritePlayers() ([]FavoritePlayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFavoritePlayersFunc != nil {
		return m.GetFavoritePlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SettleRound(id string, points map[string]int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SettleRoundCalls = append(m.SettleRoundCalls, SettleRoundCall{ID: id, Points: points})
	if m.SettleRoundFunc != nil {
		return m.SettleRoundFunc(id, points)
	}
	return true, nil
}
