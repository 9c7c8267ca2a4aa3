package events

import (
	"context"
	"sync"
	"time"
)

const (
	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
)

// Event announces a change to the bookings of a show.
type Event struct {
	Type       string    `json:"type"`
	ShowID     int       `json:"showId"`
	UserID     int       `json:"userId"`
	BookingIDs []int     `json:"bookingIds"`
	Seats      []int     `json:"seats"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error {
	return nil
}

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.RWMutex
	events []Event
	Err    error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		events: make([]Event, 0),
	}
}

func (m *MockPublisher) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.events = append(m.events, event)

	return nil
}

// Events returns a copy of all published events.
func (m *MockPublisher) Events() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]Event, len(m.events))
	copy(events, m.events)
	return events
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = make([]Event, 0)
}
