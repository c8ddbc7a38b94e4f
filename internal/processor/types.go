package processor

import (
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
)

// Processor settles completed rounds into the career totals of their players.
type Processor struct {
	store    Store
	courses  *course.Library
	counters metrics.MetricsStore
}

// SettleSummary reports the outcome of a settlement sweep.
type SettleSummary struct {
	Checked int `json:"checked"`
	Settled int `json:"settled"`
	Failed  int `json:"failed"`
}
