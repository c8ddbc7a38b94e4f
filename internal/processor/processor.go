package processor

import (
	"errors"
	"fmt"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/roundstore"
	"github.com/charmbracelet/log"
)

// New creates a new Processor.
func New(store Store, courses *course.Library, counters metrics.MetricsStore) *Processor {
	return &Processor{
		store:    store,
		courses:  courses,
		counters: counters,
	}
}

// ProcessEvent handles a round event delivered by a push subscription.
// Only round-completed events change anything.
func (p *Processor) ProcessEvent(event pubsub.RoundEvent, dryRun bool) error {
	log.Debug("Processing round event", "roundID", event.RoundID, "type", event.Type)
	p.counters.Increment(metrics.KeyEventsProcessed)
	if event.Type != pubsub.EventRoundCompleted {
		return nil
	}

	stored, err := p.store.GetRound(event.RoundID)
	if errors.Is(err, roundstore.ErrRoundNotFound) {
		log.Warn("Completed round no longer exists", "roundID", event.RoundID)
		return nil
	}
	if err != nil {
		return err
	}
	_, err = p.settle(stored, dryRun)
	return err
}

// SettleCompleted settles every completed round that has not been settled
// yet. It covers deployments without a push subscription.
func (p *Processor) SettleCompleted(dryRun bool) (SettleSummary, error) {
	log.Info("Starting settlement sweep...")
	rounds, err := p.store.ListRounds(round.StatusComplete)
	if err != nil {
		return SettleSummary{}, err
	}

	var summary SettleSummary
	for _, r := range rounds {
		summary.Checked++
		settled, err := p.settle(r, dryRun)
		if err != nil {
			log.Error("Failed to settle round", "error", err, "roundID", r.ID)
			summary.Failed++
			continue
		}
		if settled {
			summary.Settled++
		}
	}
	log.Info("Settlement sweep finished.", "checked", summary.Checked, "settled", summary.Settled, "failed", summary.Failed)
	return summary, nil
}

// settle credits the final points of a stored round. Points are recomputed
// from the stored record rather than taken from the event.
func (p *Processor) settle(stored *roundstore.StoredRound, dryRun bool) (bool, error) {
	if stored.Status != round.StatusComplete {
		log.Info("Round is not complete, skipping settlement", "roundID", stored.ID, "status", stored.Status)
		return false, nil
	}
	c, err := p.courses.Get(stored.Record.Course)
	if err != nil {
		return false, fmt.Errorf("round %s: %w", stored.ID, err)
	}
	s, err := round.Restore(stored.Record, c)
	if err != nil {
		return false, fmt.Errorf("round %s: %w", stored.ID, err)
	}

	points := make(map[string]int)
	for i, player := range s.Players() {
		points[player.Name] += s.PlayerPoints(i)
	}
	if dryRun {
		log.Info("[Dry Run] Would settle round", "roundID", stored.ID, "points", points)
		return false, nil
	}

	settled, err := p.store.SettleRound(stored.ID, points)
	if err != nil {
		return false, err
	}
	if !settled {
		log.Debug("Round already settled", "roundID", stored.ID)
		return false, nil
	}
	log.Info("Round settled", "roundID", stored.ID, "players", len(points))
	p.counters.Increment(metrics.KeyRoundsSettled)
	return true, nil
}
