package round

import (
	"fmt"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
)

// Record is the minimal durable form of a round: who played, what they shot
// and which presses were taken. Everything else is derived by replay.
type Record struct {
	Course        string         `json:"course" msgpack:"course"`
	Tee           string         `json:"tee" msgpack:"tee"`
	StartingStake int            `json:"starting_stake" msgpack:"starting_stake"`
	Players       []RecordPlayer `json:"players" msgpack:"players"`
	Presses       []PressLog     `json:"presses" msgpack:"presses"`
}

// RecordPlayer is a player inside a Record.
type RecordPlayer struct {
	ID       string     `json:"id" msgpack:"id"`
	Name     string     `json:"name" msgpack:"name"`
	Handicap int        `json:"handicap" msgpack:"handicap"`
	Gross    [Holes]int `json:"gross" msgpack:"gross"`
}

// Record captures the session for storage.
func (s *Session) Record() Record {
	rec := Record{
		Course:        s.course.Name,
		Tee:           s.tee,
		StartingStake: s.startingStake,
		Players:       make([]RecordPlayer, len(s.players)),
		Presses:       make([]PressLog, len(s.games)),
	}
	for i, p := range s.players {
		rec.Players[i] = RecordPlayer{ID: p.ID, Name: p.Name, Handicap: p.Handicap.Value(), Gross: p.Gross}
	}
	for i, g := range s.games {
		rec.Presses[i] = g.Presses
	}
	return rec
}

// Restore rebuilds a session from a record played on c and replays it.
func Restore(rec Record, c course.Course) (*Session, error) {
	players := make([]Player, len(rec.Players))
	for i, rp := range rec.Players {
		if rp.Name == "" {
			return nil, &SlotError{Slot: i, Err: ErrEmptyPlayerName}
		}
		p := newPlayer(rp.Name, handicap.Handicap(rp.Handicap))
		if rp.ID != "" {
			p.ID = rp.ID
		}
		for h, g := range rp.Gross {
			if g != Unset && g < 1 {
				return nil, &SlotError{Slot: i, Err: fmt.Errorf("%w: hole %d got %d", ErrInvalidGrossScore, h+1, g)}
			}
			p.Gross[h] = g
		}
		players[i] = p
	}

	s, err := newSession(players, c, rec.Tee, rec.StartingStake)
	if err != nil {
		return nil, err
	}
	if len(rec.Presses) > len(s.games) {
		return nil, fmt.Errorf("%w: record has presses for %d games", ErrUnknownGame, len(rec.Presses))
	}
	for i, p := range rec.Presses {
		s.games[i].Presses = p
	}
	s.replay()
	for i := range s.games {
		if err := s.validatePresses(s.games[i].Presses); err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
	}
	return s, nil
}
