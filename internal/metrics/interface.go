package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRoundsStarted()
	IncRoundsCompleted()
	IncHolesSubmitted()
	IncHolesEdited()
	IncPresses(kind string)
	ObserveReplayDuration(duration float64)
	SetActiveRounds(n int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore keeps counters that survive restarts.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}

// Persistent counter keys.
const (
	KeyRoundsStarted   = "rounds_started"
	KeyRoundsCompleted = "rounds_completed"
	KeyHolesSubmitted  = "holes_submitted"
	KeyPressesTaken    = "presses_taken"
	KeyRoundsSettled   = "rounds_settled"
	KeyEventsProcessed = "events_processed"
)

// Press kinds used as the "kind" label.
const (
	PressKindPress    = "press"
	PressKindCourtesy = "courtesy"
	PressKindSchedule = "schedule"
)
