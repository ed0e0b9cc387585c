package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"negociosHorarios/internal/modules/hours/domain"
	realtimeport "negociosHorarios/internal/modules/realtime/application/port"
	realtime "negociosHorarios/internal/modules/realtime/domain"
)

const defaultRefreshInterval = time.Minute

type badgeState struct {
	label  string
	isOpen bool
}

// BadgeRefresher re-classifies every listing with live subscribers and pushes a new badge when
// the wall clock crosses an opening or closing time.
type BadgeRefresher struct {
	hours       *HoursUseCase
	topics      realtimeport.SubscriptionSource
	broadcaster realtimeport.Broadcaster
	interval    time.Duration

	mu   sync.Mutex
	last map[string]badgeState
}

func NewBadgeRefresher(hours *HoursUseCase, topics realtimeport.SubscriptionSource, broadcaster realtimeport.Broadcaster, interval time.Duration) *BadgeRefresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &BadgeRefresher{
		hours:       hours,
		topics:      topics,
		broadcaster: broadcaster,
		interval:    interval,
		last:        make(map[string]badgeState),
	}
}

// Run ticks until ctx is cancelled.
func (r *BadgeRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	slog.Info("badge refresher started", slog.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			slog.Info("badge refresher stopped")
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick classifies each subscribed badge topic once, in the topic's display language, and returns
// how many badges were pushed.
func (r *BadgeRefresher) Tick(ctx context.Context) int {
	active := make(map[string]struct{})
	pushed := 0
	for _, topic := range r.topics.ActiveTopics() {
		listingID, lang, ok := realtime.ParseStatusTopic(topic)
		if !ok {
			continue
		}
		active[topic] = struct{}{}

		msg, status, err := r.hours.StatusMessage(ctx, listingID, domain.LocaleByName(lang))
		if err != nil {
			slog.Warn("badge refresh failed", slog.String("listingId", listingID), slog.String("lang", lang), slog.Any("error", err))
			continue
		}
		if !r.changed(topic, badgeState{label: status.Label, isOpen: status.IsOpen}) {
			continue
		}
		msg.Topic = topic
		r.broadcaster.Broadcast(ctx, msg)
		pushed++
	}
	r.forgetInactive(active)
	if pushed > 0 {
		slog.Debug("badges refreshed", slog.Int("pushed", pushed), slog.Int("active", len(active)))
	}
	return pushed
}

func (r *BadgeRefresher) changed(topic string, state badgeState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous, seen := r.last[topic]
	r.last[topic] = state
	return !seen || previous != state
}

func (r *BadgeRefresher) forgetInactive(active map[string]struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for topic := range r.last {
		if _, ok := active[topic]; !ok {
			delete(r.last, topic)
		}
	}
}
