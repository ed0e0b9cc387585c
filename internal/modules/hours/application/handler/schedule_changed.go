package handler

import (
	"context"
	"log/slog"
	"strings"

	"negociosHorarios/internal/modules/hours/application/port"
	"negociosHorarios/internal/modules/hours/domain"
	realtimeport "negociosHorarios/internal/modules/realtime/application/port"
	realtime "negociosHorarios/internal/modules/realtime/domain"
	"negociosHorarios/internal/shared/normalization"
)

// HoursIngester is the slice of the hours use case fed by inbound events.
type HoursIngester interface {
	Ingest(ctx context.Context, record port.ListingHours) error
	Remove(ctx context.Context, listingID string) error
}

// ScheduleChangedHandler mirrors listing hours edited in the web application into the store.
type ScheduleChangedHandler struct {
	topic    string
	ingester HoursIngester
}

func NewScheduleChangedHandler(topic string, ingester HoursIngester) *ScheduleChangedHandler {
	return &ScheduleChangedHandler{topic: strings.TrimSpace(topic), ingester: ingester}
}

func (h *ScheduleChangedHandler) Topic() string { return h.topic }

func (h *ScheduleChangedHandler) Handle(ctx context.Context, msg *realtime.Message) error {
	if msg == nil {
		return nil
	}
	switch normalization.NormalizeEntity(msg.Entity) {
	case "", "listings", realtime.HoursEntity:
	default:
		return nil
	}

	payload := normalization.MapFromPayload(msg.Data)
	listingID := normalization.FirstNonEmpty(
		msg.ResourceID,
		normalization.AsString(payload["listingId"]),
		normalization.AsString(payload["id"]),
	)
	if listingID == "" {
		slog.Warn("hours event without listing id", slog.String("topic", msg.Topic), slog.String("action", msg.Action))
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(msg.Action)) {
	case realtime.ActionDeleted, "removed":
		slog.Info("hours event removing listing", slog.String("listingId", listingID))
		return h.ingester.Remove(ctx, listingID)
	}

	record := port.ListingHours{
		ListingID: listingID,
		OwnerID: normalization.FirstNonEmpty(
			normalization.AsString(payload["ownerId"]),
			normalization.AsString(payload["owner"]),
			msg.Metadata["ownerId"],
		),
		Schedule:  decodeSchedule(payload["horarios"]),
		Legacy:    normalization.AsString(payload["hours"]),
		UpdatedAt: msg.Timestamp,
	}
	if record.Schedule.IsEmpty() && record.Legacy == "" {
		slog.Debug("hours event without hours fields", slog.String("listingId", listingID), slog.String("action", msg.Action))
		return nil
	}
	return h.ingester.Ingest(ctx, record)
}

// decodeSchedule reads the "horarios" document. Unknown day keys are dropped; days are resolved
// with the same folding as legacy day tokens so "miércoles" and "Miercoles" both land.
func decodeSchedule(raw any) domain.WeeklySchedule {
	days := normalization.AsMap(raw)
	if len(days) == 0 {
		return nil
	}
	schedule := make(domain.WeeklySchedule, len(days))
	for key, value := range days {
		day, ok := domain.ResolveDay(key)
		if !ok {
			continue
		}
		rule := normalization.AsMap(value)
		if rule == nil {
			continue
		}
		schedule[day] = domain.DaySchedule{
			IsOpen:   isOpenFlag(rule),
			OpensAt:  domain.LocalTime(normalization.AsString(rule["desde"])),
			ClosesAt: domain.LocalTime(normalization.AsString(rule["hasta"])),
		}
	}
	if schedule.IsEmpty() {
		return nil
	}
	return schedule
}

// isOpenFlag reads "abierto"; only an explicit false value closes the day.
func isOpenFlag(rule map[string]any) bool {
	flag, present := rule["abierto"]
	if !present || flag == nil {
		return true
	}
	return normalization.AsBool(flag)
}

var _ realtimeport.TopicHandler = (*ScheduleChangedHandler)(nil)
