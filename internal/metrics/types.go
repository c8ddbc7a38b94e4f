package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RoundsStarted      prometheus.Counter
	RoundsCompleted    prometheus.Counter
	HolesSubmitted     prometheus.Counter
	HolesEdited        prometheus.Counter
	Presses            *prometheus.CounterVec
	ReplayDuration     prometheus.Histogram
	ActiveRounds       prometheus.Gauge
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
