package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"negociosHorarios/internal/modules/hours/application/port"
	"negociosHorarios/internal/modules/hours/domain"
	realtimeport "negociosHorarios/internal/modules/realtime/application/port"
	realtime "negociosHorarios/internal/modules/realtime/domain"
	"negociosHorarios/internal/shared/auth"
)

var (
	ErrMissingListing = errors.New("missing listing id")
	ErrForbidden      = errors.New("not allowed to edit listing hours")
)

// HoursView is the read model of a listing's week as shown on the detail page.
type HoursView struct {
	ListingID string                `json:"listingId"`
	Schedule  domain.WeeklySchedule `json:"horarios"`
	Compact   string                `json:"compact"`
	Summary   string                `json:"summary"`
	Legacy    string                `json:"hours"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type HoursUseCase struct {
	store       port.ScheduleStore
	publisher   port.EventPublisher
	broadcaster realtimeport.Broadcaster
	locale      domain.Locale
	now         func() time.Time
	newID       func() string
}

// NewHoursUseCase wires the hours engine to its store. publisher and broadcaster may be nil.
func NewHoursUseCase(store port.ScheduleStore, publisher port.EventPublisher, broadcaster realtimeport.Broadcaster, locale domain.Locale) *HoursUseCase {
	return &HoursUseCase{
		store:       store,
		publisher:   publisher,
		broadcaster: broadcaster,
		locale:      locale,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// WithClock replaces the wall clock used for classification.
func (uc *HoursUseCase) WithClock(now func() time.Time) *HoursUseCase {
	if now != nil {
		uc.now = now
	}
	return uc
}

// Locale is the configured default display language.
func (uc *HoursUseCase) Locale() domain.Locale { return uc.locale }

// Status classifies the listing at the current wall-clock time.
func (uc *HoursUseCase) Status(ctx context.Context, listingID string, locale domain.Locale) (domain.StatusResult, error) {
	record, err := uc.load(ctx, listingID)
	if err != nil {
		return domain.StatusResult{}, err
	}
	return locale.Classify(resolveSchedule(record), uc.now()), nil
}

// Week returns the stored schedule together with its compact and legacy renderings.
func (uc *HoursUseCase) Week(ctx context.Context, listingID string, locale domain.Locale) (HoursView, error) {
	record, err := uc.load(ctx, listingID)
	if err != nil {
		return HoursView{}, err
	}
	return viewOf(record, locale), nil
}

// Seed returns the schedule the editor should start from.
func (uc *HoursUseCase) Seed(ctx context.Context, listingID string) (domain.WeeklySchedule, error) {
	record, err := uc.load(ctx, listingID)
	if errors.Is(err, port.ErrListingNotFound) {
		return domain.DefaultSchedule(), nil
	}
	if err != nil {
		return nil, err
	}
	return seedFrom(record), nil
}

// Update replaces the schedule of a listing on behalf of its owner or an admin.
func (uc *HoursUseCase) Update(ctx context.Context, claims *auth.Claims, listingID string, schedule domain.WeeklySchedule) (HoursView, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return HoursView{}, ErrMissingListing
	}
	if claims.UserID() == "" {
		return HoursView{}, ErrForbidden
	}

	record, err := uc.store.Get(ctx, listingID)
	switch {
	case errors.Is(err, port.ErrListingNotFound):
		record = port.ListingHours{ListingID: listingID, OwnerID: claims.UserID()}
	case err != nil:
		return HoursView{}, fmt.Errorf("load listing %s: %w", listingID, err)
	}
	if !canEdit(claims, record) {
		slog.Warn("hours update rejected", slog.String("listingId", listingID), slog.String("subject", claims.UserID()))
		return HoursView{}, ErrForbidden
	}
	if err := schedule.Validate(); err != nil {
		return HoursView{}, err
	}
	if strings.TrimSpace(record.OwnerID) == "" && !claims.IsAdmin() {
		record.OwnerID = claims.UserID()
		slog.Info("listing hours claimed", slog.String("listingId", listingID), slog.String("subject", claims.UserID()))
	}

	normalized := schedule.Normalize()
	record.ListingID = listingID
	record.Schedule = normalized
	record.Legacy = domain.FlattenToDisplayString(normalized)
	record.UpdatedAt = uc.now().UTC()
	if err := uc.store.Save(ctx, record); err != nil {
		return HoursView{}, fmt.Errorf("save listing %s: %w", listingID, err)
	}
	slog.Info("hours updated", slog.String("listingId", listingID), slog.String("subject", claims.UserID()), slog.Bool("admin", claims.IsAdmin()))

	view := viewOf(record, uc.locale)
	uc.publish(ctx, claims.UserID(), view)
	uc.broadcastStatus(ctx, record)
	return view, nil
}

// ApplyPreset runs a dashboard quick action against the current schedule and saves the result.
func (uc *HoursUseCase) ApplyPreset(ctx context.Context, claims *auth.Claims, listingID, rawPreset string) (HoursView, error) {
	preset, err := domain.ParsePreset(rawPreset)
	if err != nil {
		return HoursView{}, err
	}
	base, err := uc.Seed(ctx, listingID)
	if err != nil {
		return HoursView{}, err
	}
	next, err := domain.ApplyPreset(base, preset)
	if err != nil {
		return HoursView{}, err
	}
	return uc.Update(ctx, claims, listingID, next)
}

// Ingest upserts a record received from the web application and pushes the new badge. Inbound
// schedules are stored as sent: the engine degrades gracefully on malformed days.
func (uc *HoursUseCase) Ingest(ctx context.Context, record port.ListingHours) error {
	record.ListingID = strings.TrimSpace(record.ListingID)
	if record.ListingID == "" {
		return ErrMissingListing
	}
	if !record.Schedule.IsEmpty() {
		if err := record.Schedule.Validate(); err != nil {
			slog.Warn("ingesting malformed schedule", slog.String("listingId", record.ListingID), slog.Any("error", err))
		}
		record.Schedule = record.Schedule.Normalize()
		if strings.TrimSpace(record.Legacy) == "" {
			record.Legacy = domain.FlattenToDisplayString(record.Schedule)
		}
	}
	if record.OwnerID == "" {
		if existing, err := uc.store.Get(ctx, record.ListingID); err == nil {
			record.OwnerID = existing.OwnerID
		}
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = uc.now().UTC()
	}
	if err := uc.store.Save(ctx, record); err != nil {
		return fmt.Errorf("save listing %s: %w", record.ListingID, err)
	}
	uc.broadcastStatus(ctx, record)
	return nil
}

// Remove drops the hours record of a deleted listing. Live badges fall back to "unavailable".
func (uc *HoursUseCase) Remove(ctx context.Context, listingID string) error {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return ErrMissingListing
	}
	if err := uc.store.Delete(ctx, listingID); err != nil && !errors.Is(err, port.ErrListingNotFound) {
		return fmt.Errorf("delete listing %s: %w", listingID, err)
	}
	uc.broadcastStatus(ctx, port.ListingHours{ListingID: listingID})
	return nil
}

// StatusMessage builds the live badge message of a listing. Unknown listings get the
// "unavailable" badge rather than an error.
func (uc *HoursUseCase) StatusMessage(ctx context.Context, listingID string, locale domain.Locale) (*realtime.Message, domain.StatusResult, error) {
	record, err := uc.load(ctx, listingID)
	if err != nil && !errors.Is(err, port.ErrListingNotFound) {
		return nil, domain.StatusResult{}, err
	}
	record.ListingID = strings.TrimSpace(listingID)
	status := locale.Classify(resolveSchedule(record), uc.now())
	return uc.statusMessage(record.ListingID, locale, status), status, nil
}

func (uc *HoursUseCase) statusMessage(listingID string, locale domain.Locale, status domain.StatusResult) *realtime.Message {
	return &realtime.Message{
		Topic:      realtime.StatusTopic(listingID, locale.Name()),
		Entity:     realtime.HoursEntity,
		Action:     realtime.ActionStatus,
		ResourceID: listingID,
		Metadata:   map[string]string{"lang": locale.Name()},
		Data:       status,
		Timestamp:  uc.now().UTC(),
	}
}

// broadcastStatus pushes the fresh badge once per display language; each language has its own topic.
func (uc *HoursUseCase) broadcastStatus(ctx context.Context, record port.ListingHours) {
	if uc.broadcaster == nil {
		return
	}
	schedule := resolveSchedule(record)
	now := uc.now()
	for _, locale := range domain.Locales() {
		status := locale.Classify(schedule, now)
		uc.broadcaster.Broadcast(ctx, uc.statusMessage(record.ListingID, locale, status))
	}
}

func (uc *HoursUseCase) publish(ctx context.Context, actorID string, view HoursView) {
	if uc.publisher == nil {
		return
	}
	event := port.HoursUpdatedEvent{
		ID:         uc.newID(),
		ListingID:  view.ListingID,
		ActorID:    actorID,
		Schedule:   view.Schedule,
		Legacy:     view.Legacy,
		Compact:    view.Compact,
		OccurredAt: view.UpdatedAt,
	}
	if err := uc.publisher.PublishHoursUpdated(ctx, event); err != nil {
		slog.Warn("hours event publish failed", slog.String("listingId", view.ListingID), slog.Any("error", err))
	}
}

func (uc *HoursUseCase) load(ctx context.Context, listingID string) (port.ListingHours, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return port.ListingHours{}, ErrMissingListing
	}
	record, err := uc.store.Get(ctx, listingID)
	if err != nil {
		if errors.Is(err, port.ErrListingNotFound) {
			return port.ListingHours{ListingID: listingID}, err
		}
		return port.ListingHours{}, fmt.Errorf("load listing %s: %w", listingID, err)
	}
	return record, nil
}

// canEdit allows admins, the recorded owner, and the first editor of an ownerless record, who
// becomes its owner on save.
func canEdit(claims *auth.Claims, record port.ListingHours) bool {
	if claims.IsAdmin() {
		return true
	}
	owner := strings.TrimSpace(record.OwnerID)
	return owner == "" || owner == claims.UserID()
}

// resolveSchedule returns the canonical structured schedule of a record; legacy-only records are
// parsed at this boundary. nil means no usable hours.
func resolveSchedule(record port.ListingHours) domain.WeeklySchedule {
	if !record.Schedule.IsEmpty() {
		return record.Schedule
	}
	if parsed, ok := domain.ParseLegacyHours(record.Legacy); ok {
		return parsed
	}
	return nil
}

func seedFrom(record port.ListingHours) domain.WeeklySchedule {
	if schedule := resolveSchedule(record); schedule != nil {
		return schedule.Clone()
	}
	pair := domain.ExtractOpenClosePair(record.Legacy)
	if !pair.Complete() {
		return domain.DefaultSchedule()
	}
	seed := domain.DefaultSchedule()
	for _, day := range domain.DayOrder()[:6] {
		seed[day] = domain.DaySchedule{IsOpen: true, OpensAt: pair.OpensAt, ClosesAt: pair.ClosesAt}
	}
	return seed
}

func viewOf(record port.ListingHours, locale domain.Locale) HoursView {
	schedule := resolveSchedule(record)
	view := HoursView{
		ListingID: record.ListingID,
		Legacy:    record.Legacy,
		UpdatedAt: record.UpdatedAt,
	}
	if schedule != nil {
		view.Schedule = schedule.Normalize()
		view.Compact = locale.FormatWeek(view.Schedule)
		if view.Legacy == "" {
			view.Legacy = domain.FlattenToDisplayString(view.Schedule)
		}
	}
	view.Summary = view.Compact
	if !view.Schedule.HasOpenDay() {
		view.Summary = locale.UnavailableLabel()
	}
	return view
}
