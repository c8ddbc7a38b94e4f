package roundstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new RoundStore.
func New(db *sql.DB) RoundStore {
	return &store{
		db: db,
	}
}

// SaveRound inserts a round or replaces the record of an existing one. The
// creation time of an existing round is kept.
func (s *store) SaveRound(r *StoredRound) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := msgpack.Marshal(&r.Record)
	if err != nil {
		return fmt.Errorf("failed to encode round %s: %w", r.ID, err)
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	_, err = s.db.Exec(`
		INSERT INTO rounds (id, course, tee, starting_stake, status, current_hole, record, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			course = excluded.course,
			tee = excluded.tee,
			starting_stake = excluded.starting_stake,
			status = excluded.status,
			current_hole = excluded.current_hole,
			record = excluded.record,
			updated_at = excluded.updated_at,
			settled_at = CASE WHEN excluded.status = ? THEN rounds.settled_at ELSE NULL END;
	`, r.ID, r.Course, r.Tee, r.StartingStake, r.Status, r.CurrentHole, blob, r.CreatedAt.Unix(), r.UpdatedAt.Unix(), round.StatusComplete)
	if err != nil {
		return fmt.Errorf("failed to save round %s: %w", r.ID, err)
	}
	log.Debug("Saved round", "id", r.ID, "status", r.Status, "current_hole", r.CurrentHole)
	return nil
}

// GetRound loads a single round.
func (s *store) GetRound(id string) (*StoredRound, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, course, tee, starting_stake, status, current_hole, record, created_at, updated_at
		FROM rounds WHERE id = ?
	`, id)
	r, err := s.scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRounds returns rounds newest first, optionally filtered by status.
func (s *store) ListRounds(status round.Status) ([]*StoredRound, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, course, tee, starting_stake, status, current_hole, record, created_at, updated_at FROM rounds`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []*StoredRound
	for rows.Next() {
		r, err := s.scanRound(rows)
		if err != nil {
			log.Error("Failed to scan round row", "error", err)
			continue
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// DeleteRound removes a round.
func (s *store) DeleteRound(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM rounds WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	return nil
}

// CountRounds returns the number of rounds per status.
func (s *store) CountRounds() (map[round.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT status, COUNT(*) FROM rounds GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[round.Status]int)
	for rows.Next() {
		var status round.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// UpsertFavoritePlayer remembers a player and their latest handicap.
func (s *store) UpsertFavoritePlayer(name string, handicap int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO favorite_players (name, handicap, rounds_played, last_played_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			handicap = excluded.handicap,
			rounds_played = rounds_played + 1,
			last_played_at = excluded.last_played_at;
	`, name, handicap, time.Now().Unix())
	return err
}

// GetFavoritePlayers returns remembered players, most played first.
func (s *store) GetFavoritePlayers() ([]FavoritePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, handicap, rounds_played, last_played_at, rounds_completed, career_points
		FROM favorite_players
		ORDER BY rounds_played DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []FavoritePlayer
	for rows.Next() {
		var p FavoritePlayer
		var lastPlayed int64
		if err := rows.Scan(&p.Name, &p.Handicap, &p.RoundsPlayed, &lastPlayed, &p.RoundsCompleted, &p.CareerPoints); err != nil {
			return nil, err
		}
		p.LastPlayedAt = time.Unix(lastPlayed, 0)
		players = append(players, p)
	}
	return players, rows.Err()
}

// SettleRound marks a completed round as settled and adds each player's final
// points to their favorite player entry. It reports false when the round was
// already settled, so redelivered events are counted once.
func (s *store) SettleRound(id string, points map[string]int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE rounds SET settled_at = ? WHERE id = ? AND settled_at IS NULL`, time.Now().Unix(), id)
	if err != nil {
		return false, fmt.Errorf("failed to settle round %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		var exists int
		err := tx.QueryRow(`SELECT 1 FROM rounds WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrRoundNotFound
		}
		return false, err
	}

	for name, pts := range points {
		_, err := tx.Exec(`
			INSERT INTO favorite_players (name, rounds_completed, career_points, last_played_at)
			VALUES (?, 1, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				rounds_completed = rounds_completed + 1,
				career_points = career_points + excluded.career_points;
		`, name, pts, time.Now().Unix())
		if err != nil {
			return false, fmt.Errorf("failed to settle player %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	log.Debug("Settled round", "id", id, "players", len(points))
	return true, nil
}

// scanRound scans a single round row and decodes its record.
func (s *store) scanRound(scanner interface{ Scan(...any) error }) (*StoredRound, error) {
	var r StoredRound
	var blob []byte
	var createdAt, updatedAt int64

	err := scanner.Scan(&r.ID, &r.Course, &r.Tee, &r.StartingStake, &r.Status, &r.CurrentHole, &blob, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if err := msgpack.Unmarshal(blob, &r.Record); err != nil {
		return nil, fmt.Errorf("failed to decode round %s: %w", r.ID, err)
	}
	r.CreatedAt = time.Unix(createdAt, 0)
	r.UpdatedAt = time.Unix(updatedAt, 0)
	return &r, nil
}
