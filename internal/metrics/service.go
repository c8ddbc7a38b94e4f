package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RoundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hogballs_rounds_started_total",
			Help: "The total number of rounds set up.",
		}),
		RoundsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hogballs_rounds_completed_total",
			Help: "The total number of rounds played through hole 18.",
		}),
		HolesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hogballs_holes_submitted_total",
			Help: "The total number of holes scored.",
		}),
		HolesEdited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hogballs_holes_edited_total",
			Help: "The total number of past holes corrected.",
		}),
		Presses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hogballs_presses_total",
			Help: "The total number of presses applied, by kind.",
		}, []string{"kind"}),
		ReplayDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hogballs_replay_duration_seconds",
			Help:    "The duration of full round replays.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		ActiveRounds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hogballs_active_rounds",
			Help: "The number of rounds held in memory.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hogballs_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hogballs_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hogballs_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RoundsStarted,
		s.RoundsCompleted,
		s.HolesSubmitted,
		s.HolesEdited,
		s.Presses,
		s.ReplayDuration,
		s.ActiveRounds,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRoundsStarted() {
	s.RoundsStarted.Inc()
}

func (s *Service) IncRoundsCompleted() {
	s.RoundsCompleted.Inc()
}

func (s *Service) IncHolesSubmitted() {
	s.HolesSubmitted.Inc()
}

func (s *Service) IncHolesEdited() {
	s.HolesEdited.Inc()
}

func (s *Service) IncPresses(kind string) {
	s.Presses.WithLabelValues(kind).Inc()
}

func (s *Service) ObserveReplayDuration(duration float64) {
	s.ReplayDuration.Observe(duration)
}

func (s *Service) SetActiveRounds(n int) {
	s.ActiveRounds.Set(float64(n))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
