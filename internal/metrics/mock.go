package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	roundsStarted    int
	roundsCompleted  int
	holesSubmitted   int
	holesEdited      int
	presses          map[string]int
	replayDurations  []float64
	activeRounds     int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		presses:         make(map[string]int),
		replayDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRoundsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsStarted++
}

func (m *Mock) IncRoundsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsCompleted++
}

func (m *Mock) IncHolesSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holesSubmitted++
}

func (m *Mock) IncHolesEdited() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holesEdited++
}

func (m *Mock) IncPresses(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presses[kind]++
}

func (m *Mock) ObserveReplayDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replayDurations = append(m.replayDurations, duration)
}

func (m *Mock) SetActiveRounds(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeRounds = n
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RoundsStarted returns the number of times IncRoundsStarted was called.
func (m *Mock) RoundsStarted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsStarted
}

// RoundsCompleted returns the number of times IncRoundsCompleted was called.
func (m *Mock) RoundsCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsCompleted
}

// HolesSubmitted returns the number of times IncHolesSubmitted was called.
func (m *Mock) HolesSubmitted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holesSubmitted
}

// HolesEdited returns the number of times IncHolesEdited was called.
func (m *Mock) HolesEdited() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holesEdited
}

// Presses returns how often IncPresses was called with kind.
func (m *Mock) Presses(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presses[kind]
}

// ReplayCount returns the number of replay durations observed.
func (m *Mock) ReplayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.replayDurations)
}

// ActiveRounds returns the last value passed to SetActiveRounds.
func (m *Mock) ActiveRounds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeRounds
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// MockStore is an in-memory MetricsStore for testing.
type MockStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMockStore creates an empty counter store.
func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string]int)}
}

func (m *MockStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key]++
}

func (m *MockStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

// Get returns a single counter.
func (m *MockStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}
