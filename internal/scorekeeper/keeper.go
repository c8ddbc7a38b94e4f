package scorekeeper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/handicap"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/match"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/roundstore"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new Keeper.
func New(store Store, courses *course.Library, notifier Notifier, metrics metrics.Metrics, counters metrics.MetricsStore, pubsub pubsub.PubSubClient, defaultStake int) *Keeper {
	if defaultStake < 1 {
		defaultStake = 1
	}
	return &Keeper{
		store:        store,
		courses:      courses,
		notifier:     notifier,
		metrics:      metrics,
		counters:     counters,
		pubsub:       pubsub,
		defaultStake: defaultStake,
		rounds:       make(map[string]*entry),
	}
}

// Courses lists the courses rounds can be played on.
func (k *Keeper) Courses() []course.Course {
	return k.courses.All()
}

// StartRound sets up a new round and remembers its players as favorites.
func (k *Keeper) StartRound(req StartRequest, dryRun bool) (*RoundView, error) {
	c := k.courses.Default()
	if req.Course != "" {
		var err error
		if c, err = k.courses.Get(req.Course); err != nil {
			return nil, err
		}
	}
	stake := req.Stake
	if stake == 0 {
		stake = k.defaultStake
	}
	s, err := round.Setup(req.Players, c, req.Tee, stake)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	snap := s.Snapshot()
	e := &entry{session: s, createdAt: time.Now()}
	if err := k.persist(id, e); err == nil && !dryRun {
		k.publish(roundEvent(id, pubsub.EventRoundStarted, s, 0, nil))
	}

	k.mu.Lock()
	k.rounds[id] = e
	active := len(k.rounds)
	k.mu.Unlock()

	log.Info("Round started", "roundID", id, "course", c.Name, "tee", s.Tee(), "players", len(req.Players), "stake", stake)
	k.metrics.IncRoundsStarted()
	k.metrics.SetActiveRounds(active)
	k.counters.Increment(metrics.KeyRoundsStarted)

	for _, p := range snap.Players {
		if err := k.store.UpsertFavoritePlayer(p.Name, p.Handicap); err != nil {
			log.Error("Failed to remember favorite player", "error", err, "name", p.Name)
		}
	}
	if err := k.notifier.SendRoundStarted(id, snap, dryRun); err != nil {
		log.Error("Failed to send round started notification", "error", err, "roundID", id)
	}
	return &RoundView{ID: id, Snapshot: snap}, nil
}

// GetRound returns the current state of a round.
func (k *Keeper) GetRound(id string) (*RoundView, error) {
	var view *RoundView
	err := k.withRound(id, func(s *round.Session) error {
		view = &RoundView{ID: id, Snapshot: s.Snapshot()}
		return nil
	})
	return view, err
}

// ListRounds returns stored rounds, optionally filtered by status.
func (k *Keeper) ListRounds(status round.Status) ([]*roundstore.StoredRound, error) {
	return k.store.ListRounds(status)
}

// DeleteRound forgets a round in memory and in the store. It waits for a
// mutation in flight so the round is not saved again after it is deleted.
func (k *Keeper) DeleteRound(id string) error {
	k.mu.Lock()
	e, live := k.rounds[id]
	delete(k.rounds, id)
	active := len(k.rounds)
	k.mu.Unlock()
	k.metrics.SetActiveRounds(active)

	if live {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.deleted = true
	}
	err := k.store.DeleteRound(id)
	if errors.Is(err, roundstore.ErrRoundNotFound) {
		if live {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	if err != nil {
		return err
	}
	log.Info("Round deleted", "roundID", id)
	return nil
}

// SubmitHole scores the current hole of a round.
func (k *Keeper) SubmitHole(id string, gross []int, dryRun bool) (*round.HoleResult, error) {
	var res *round.HoleResult
	var snap round.Snapshot
	err := k.mutate(id, dryRun, func(s *round.Session, out *outbox) error {
		var err error
		res, err = s.SubmitHoleScores(gross)
		if err != nil {
			return err
		}
		snap = s.Snapshot()
		out.add(roundEvent(id, pubsub.EventHoleScored, s, res.Hole, nil))
		if res.Status == round.StatusComplete {
			out.add(roundEvent(id, pubsub.EventRoundCompleted, s, res.Hole, nil))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Hole scored", "roundID", id, "hole", res.Hole, "status", res.Status)
	k.metrics.IncHolesSubmitted()
	k.counters.Increment(metrics.KeyHolesSubmitted)
	if err := k.notifier.SendHoleResult(id, res, dryRun); err != nil {
		log.Error("Failed to send hole result", "error", err, "roundID", id)
	}
	if res.Status == round.StatusComplete {
		k.completed(id, snap, dryRun)
	}
	return res, nil
}

// EditHole corrects a past hole and replays the round.
func (k *Keeper) EditHole(id string, hole int, gross []int, dryRun bool) (*round.HoleResult, error) {
	var res *round.HoleResult
	err := k.mutate(id, dryRun, func(s *round.Session, out *outbox) error {
		start := time.Now()
		var err error
		res, err = s.EditPastHole(hole, gross)
		if err != nil {
			return err
		}
		k.metrics.ObserveReplayDuration(time.Since(start).Seconds())
		out.add(roundEvent(id, pubsub.EventHoleEdited, s, hole, nil))
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Hole edited", "roundID", id, "hole", hole)
	k.metrics.IncHolesEdited()
	return res, nil
}

// Press lets the trailing team of a game press.
func (k *Keeper) Press(id string, game int, dryRun bool) (round.PressOutcome, error) {
	return k.press(id, game, metrics.PressKindPress, dryRun, (*round.Session).Press)
}

// Courtesy grants a courtesy press on hole 18.
func (k *Keeper) Courtesy(id string, game int, dryRun bool) (round.PressOutcome, error) {
	return k.press(id, game, metrics.PressKindCourtesy, dryRun, (*round.Session).GrantCourtesyPress)
}

func (k *Keeper) press(id string, game int, kind string, dryRun bool, apply func(*round.Session, int) (round.PressOutcome, error)) (round.PressOutcome, error) {
	var out round.PressOutcome
	var team string
	err := k.mutate(id, dryRun, func(s *round.Session, events *outbox) error {
		var err error
		out, err = apply(s, game)
		if err != nil {
			return err
		}
		if !out.Applied {
			return errUnchanged
		}
		if !out.Courtesy {
			g := s.Games()[game]
			team = g.A.Name
			if out.Side == match.TeamB {
				team = g.B.Name
			}
		}
		taken := out
		events.add(roundEvent(id, pubsub.EventPressTaken, s, out.Hole, &taken))
		return nil
	})
	if errors.Is(err, errUnchanged) {
		log.Debug("Press ignored", "roundID", id, "game", game, "kind", kind)
		return out, nil
	}
	if err != nil {
		return out, err
	}

	log.Info("Press taken", "roundID", id, "game", game, "kind", kind, "hole", out.Hole, "stake", out.Stake)
	k.metrics.IncPresses(kind)
	k.counters.Increment(metrics.KeyPressesTaken)
	if err := k.notifier.SendPress(id, team, out, dryRun); err != nil {
		log.Error("Failed to send press notification", "error", err, "roundID", id)
	}
	return out, nil
}

// SetPresses replaces the press schedule of a game and replays the round.
func (k *Keeper) SetPresses(id string, game int, presses round.PressLog) (*RoundView, error) {
	var view *RoundView
	err := k.mutate(id, false, func(s *round.Session, _ *outbox) error {
		start := time.Now()
		if err := s.SetPressSchedule(game, presses); err != nil {
			return err
		}
		k.metrics.ObserveReplayDuration(time.Since(start).Seconds())
		view = &RoundView{ID: id, Snapshot: s.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info("Press schedule replaced", "roundID", id, "game", game)
	k.metrics.IncPresses(metrics.PressKindSchedule)
	return view, nil
}

// Restart clears every score of a round and keeps its roster.
func (k *Keeper) Restart(id string, dryRun bool) (*RoundView, error) {
	var view *RoundView
	err := k.mutate(id, dryRun, func(s *round.Session, out *outbox) error {
		s.Restart()
		view = &RoundView{ID: id, Snapshot: s.Snapshot()}
		out.add(roundEvent(id, pubsub.EventRoundRestarted, s, 0, nil))
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info("Round restarted", "roundID", id)
	return view, nil
}

// Favorites returns players remembered from earlier rounds.
func (k *Keeper) Favorites() ([]roundstore.FavoritePlayer, error) {
	return k.store.GetFavoritePlayers()
}

// AddFavorite remembers a player without starting a round.
func (k *Keeper) AddFavorite(entry round.RosterEntry) (roundstore.FavoritePlayer, error) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return roundstore.FavoritePlayer{}, round.ErrEmptyPlayerName
	}
	h, err := handicap.Parse(entry.Handicap)
	if err != nil {
		return roundstore.FavoritePlayer{}, fmt.Errorf("%w: %q", round.ErrInvalidHandicapInput, entry.Handicap)
	}
	if err := k.store.UpsertFavoritePlayer(name, h.Value()); err != nil {
		return roundstore.FavoritePlayer{}, err
	}
	return roundstore.FavoritePlayer{Name: name, Handicap: h.Value()}, nil
}

// Stats returns persistent counters and round totals.
func (k *Keeper) Stats() (*Stats, error) {
	counters, err := k.counters.GetAll()
	if err != nil {
		return nil, err
	}
	rounds, err := k.store.CountRounds()
	if err != nil {
		return nil, err
	}
	k.mu.Lock()
	active := len(k.rounds)
	k.mu.Unlock()
	return &Stats{Counters: counters, Rounds: rounds, Active: active}, nil
}

func (k *Keeper) completed(id string, snap round.Snapshot, dryRun bool) {
	log.Info("Round completed", "roundID", id)
	k.metrics.IncRoundsCompleted()
	k.counters.Increment(metrics.KeyRoundsCompleted)
	if err := k.notifier.SendFinalTally(id, snap, dryRun); err != nil {
		log.Error("Failed to send final tally", "error", err, "roundID", id)
	}
}

// errUnchanged aborts a mutation that left the round as it was.
var errUnchanged = errors.New("round unchanged")

// withRound runs fn with exclusive access to a round, restoring it from the
// store when it is not in memory.
func (k *Keeper) withRound(id string, fn func(s *round.Session) error) error {
	e, err := k.load(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	return fn(e.session)
}

// mutate is withRound followed by a save when fn succeeds. Events queued by
// fn are published only after the save, so subscribers read what they were
// told about. A dry run drops them.
func (k *Keeper) mutate(id string, dryRun bool, fn func(s *round.Session, out *outbox) error) error {
	e, err := k.load(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}

	var out outbox
	if err := fn(e.session, &out); err != nil {
		return err
	}
	if err := k.persistLocked(id, e); err != nil {
		if len(out.events) > 0 {
			log.Warn("Round not saved, holding back events", "roundID", id, "events", len(out.events))
		}
		return nil
	}
	if !dryRun {
		for _, event := range out.events {
			k.publish(event)
		}
	}
	return nil
}

// load returns the live entry of a round, restoring it from the store when
// needed. The restore runs without holding the keeper lock.
func (k *Keeper) load(id string) (*entry, error) {
	k.mu.Lock()
	e, ok := k.rounds[id]
	k.mu.Unlock()
	if ok {
		return e, nil
	}

	stored, err := k.store.GetRound(id)
	if errors.Is(err, roundstore.ErrRoundNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	c, err := k.courses.Get(stored.Record.Course)
	if err != nil {
		return nil, fmt.Errorf("round %s: %w", id, err)
	}
	s, err := round.Restore(stored.Record, c)
	if err != nil {
		return nil, fmt.Errorf("round %s: %w", id, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if e, ok := k.rounds[id]; ok {
		// Restored concurrently by another caller.
		return e, nil
	}
	e = &entry{session: s, createdAt: stored.CreatedAt}
	k.rounds[id] = e
	k.metrics.SetActiveRounds(len(k.rounds))
	log.Info("Restored round from store", "roundID", id, "current_hole", s.CurrentHole(), "status", s.Status())
	return e, nil
}

func (k *Keeper) persist(id string, e *entry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return k.persistLocked(id, e)
}

// persistLocked saves a round. Failures are logged; the in-memory round stays
// authoritative.
func (k *Keeper) persistLocked(id string, e *entry) error {
	if e.deleted {
		return fmt.Errorf("%w: %s", ErrRoundNotFound, id)
	}
	s := e.session
	err := k.store.SaveRound(&roundstore.StoredRound{
		ID:            id,
		Course:        s.Course().Name,
		Tee:           s.Tee(),
		StartingStake: s.StartingStake(),
		Status:        s.Status(),
		CurrentHole:   s.CurrentHole(),
		Record:        s.Record(),
		CreatedAt:     e.createdAt,
	})
	if err != nil {
		log.Error("Failed to persist round", "error", err, "roundID", id)
	}
	return err
}

// outbox collects the events of one mutation.
type outbox struct {
	events []pubsub.RoundEvent
}

func (o *outbox) add(event pubsub.RoundEvent) {
	o.events = append(o.events, event)
}

func roundEvent(id string, event pubsub.EventType, s *round.Session, hole int, press *round.PressOutcome) pubsub.RoundEvent {
	points := make([]int, len(s.Players()))
	for i := range points {
		points[i] = s.PlayerPoints(i)
	}
	return pubsub.RoundEvent{
		RoundID:     id,
		Type:        event,
		Hole:        hole,
		CurrentHole: s.CurrentHole(),
		Status:      s.Status(),
		Press:       press,
		Points:      points,
		OccurredAt:  time.Now().Unix(),
	}
}

func (k *Keeper) publish(event pubsub.RoundEvent) {
	if err := k.pubsub.SendMessage(event.Type, event); err != nil {
		log.Error("Failed to publish round event", "error", err, "roundID", event.RoundID, "event", event.Type)
	}
}
