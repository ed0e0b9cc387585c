package usecase

import (
	"context"
	"sync"
	"time"

	"negociosHorarios/internal/modules/hours/application/port"
	realtime "negociosHorarios/internal/modules/realtime/domain"
)

type memoryStore struct {
	mu      sync.Mutex
	records map[string]port.ListingHours
	saves   int
	err     error
}

func newMemoryStore(records ...port.ListingHours) *memoryStore {
	s := &memoryStore{records: make(map[string]port.ListingHours)}
	for _, r := range records {
		s.records[r.ListingID] = r
	}
	return s
}

func (s *memoryStore) Get(_ context.Context, listingID string) (port.ListingHours, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return port.ListingHours{}, s.err
	}
	record, ok := s.records[listingID]
	if !ok {
		return port.ListingHours{}, port.ErrListingNotFound
	}
	return record, nil
}

func (s *memoryStore) Save(_ context.Context, record port.ListingHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.records[record.ListingID] = record
	return nil
}

func (s *memoryStore) Delete(_ context.Context, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[listingID]; !ok {
		return port.ErrListingNotFound
	}
	delete(s.records, listingID)
	return nil
}

type recordingPublisher struct {
	events []port.HoursUpdatedEvent
	err    error
}

func (p *recordingPublisher) PublishHoursUpdated(_ context.Context, event port.HoursUpdatedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []*realtime.Message
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msg *realtime.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msg)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.messages)
}

type staticTopics []string

func (t staticTopics) ActiveTopics() []string { return t }

// mondayAt returns Monday 1 January 2024 at hh:mm UTC.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

type fixedClock struct{ at time.Time }

func (c *fixedClock) now() time.Time { return c.at }
