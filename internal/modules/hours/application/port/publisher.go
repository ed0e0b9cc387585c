package port

import (
	"context"
	"time"

	"negociosHorarios/internal/modules/hours/domain"
)

// HoursUpdatedEvent is emitted whenever an owner or admin saves a schedule.
type HoursUpdatedEvent struct {
	ID         string                `json:"id"`
	ListingID  string                `json:"listingId"`
	ActorID    string                `json:"actorId"`
	Schedule   domain.WeeklySchedule `json:"horarios"`
	Legacy     string                `json:"hours"`
	Compact    string                `json:"compact"`
	OccurredAt time.Time             `json:"occurredAt"`
}

// EventPublisher ships domain events to the rest of the platform.
type EventPublisher interface {
	PublishHoursUpdated(ctx context.Context, event HoursUpdatedEvent) error
}
