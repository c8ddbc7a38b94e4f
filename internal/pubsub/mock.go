package pubsub

import (
	"sync"
)

// MockPubSubClient keeps published round events in memory so tests can
// inspect what a round announced. Pushed messages are decoded with msgpack
// unless ProcessMessageFunc overrides it.
type MockPubSubClient struct {
	mu        sync.Mutex
	published []Published
	pushed    int

	// SendMessageFunc runs after an event is captured and decides the
	// publish result. It is called without the mock's lock held.
	SendMessageFunc func(topic EventType, data any) error
	// ProcessMessageFunc replaces the msgpack decoding of pushed messages.
	ProcessMessageFunc func(data []byte, returnValue any) error
}

// Published is one captured event.
type Published struct {
	Topic EventType
	Data  any
}

var _ PubSubClient = (*MockPubSubClient)(nil)

// NewMock returns an empty MockPubSubClient. The project ID only mirrors
// NewClient.
func NewMock(projectID string) *MockPubSubClient {
	return &MockPubSubClient{}
}

func (m *MockPubSubClient) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	m.published = append(m.published, Published{Topic: topic, Data: data})
	send := m.SendMessageFunc
	m.mu.Unlock()

	if send == nil {
		return nil
	}
	return send(topic, data)
}

func (m *MockPubSubClient) ProcessMessage(data []byte, returnValue any) error {
	m.mu.Lock()
	m.pushed++
	process := m.ProcessMessageFunc
	m.mu.Unlock()

	if process == nil {
		return decode(data, returnValue)
	}
	return process(data, returnValue)
}

func (m *MockPubSubClient) Close() error {
	return nil
}

// Published returns a copy of every captured event, oldest first.
func (m *MockPubSubClient) Published() []Published {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Published(nil), m.published...)
}

// Events returns the topics of the captured events, oldest first.
func (m *MockPubSubClient) Events() []EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	topics := make([]EventType, len(m.published))
	for i, p := range m.published {
		topics[i] = p.Topic
	}
	return topics
}

// Pushed reports how many pushed messages were decoded.
func (m *MockPubSubClient) Pushed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pushed
}

// Reset forgets captured events and pushed messages.
func (m *MockPubSubClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = nil
	m.pushed = 0
}
