package scorekeeper

import (
	"errors"
	"sync"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/round"
)

// ErrRoundNotFound is returned for an unknown round id.
var ErrRoundNotFound = errors.New("round not found")

// Keeper owns the live rounds. Each round is mutated by one caller at a time
// and persisted after every change.
type Keeper struct {
	store    Store
	courses  *course.Library
	notifier Notifier
	metrics  metrics.Metrics
	counters metrics.MetricsStore
	pubsub   pubsub.PubSubClient
	// defaultStake applies when a start request leaves the stake at 0.
	defaultStake int

	mu     sync.Mutex
	rounds map[string]*entry
}

type entry struct {
	mu        sync.Mutex
	session   *round.Session
	createdAt time.Time
	// deleted is set under mu once the round is removed.
	deleted bool
}

// StartRequest is everything needed to set up a round.
type StartRequest struct {
	Course  string              `json:"course"`
	Tee     string              `json:"tee"`
	Stake   int                 `json:"stake"`
	Players []round.RosterEntry `json:"players"`
}

// RoundView is a round as returned to callers.
type RoundView struct {
	ID string `json:"id"`
	round.Snapshot
}

// Stats summarizes activity for the stats endpoint.
type Stats struct {
	Counters map[string]int       `json:"counters"`
	Rounds   map[round.Status]int `json:"rounds"`
	Active   int                  `json:"active"`
}
