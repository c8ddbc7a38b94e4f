package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store keeps counters that survive restarts, unlike the Prometheus service.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new MetricsStore backed by the metrics table.
func New(db *sql.DB) MetricsStore {
	return &store{db: db}
}

// Increment bumps a counter. Counters are best effort: failures are logged
// and never reach the caller.
func (s *store) Increment(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO metrics (key, value, updated_at) VALUES (?, 1, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = value + 1,
			updated_at = excluded.updated_at;
	`, key, time.Now().Unix())
	if err != nil {
		log.Error("Failed to increment counter", "error", err, "key", key)
		return
	}
	log.Debug("Incremented counter", "key", key)
}

// GetAll returns every counter by key.
func (s *store) GetAll() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT key, value FROM metrics`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			value int
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		counters[key] = value
	}
	return counters, rows.Err()
}
