package port

import (
	"context"
	"errors"
	"time"

	"negociosHorarios/internal/modules/hours/domain"
)

var ErrListingNotFound = errors.New("listing hours not found")

// ListingHours is the persisted hours record of one listing. Schedule is nil for legacy
// records that only carry the free-text Legacy field.
type ListingHours struct {
	ListingID string                `json:"listingId"`
	OwnerID   string                `json:"ownerId,omitempty"`
	Schedule  domain.WeeklySchedule `json:"horarios,omitempty"`
	Legacy    string                `json:"hours,omitempty"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// ScheduleStore persists listing hours records.
type ScheduleStore interface {
	Get(ctx context.Context, listingID string) (ListingHours, error)
	Save(ctx context.Context, record ListingHours) error
	Delete(ctx context.Context, listingID string) error
}
