package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"negociosHorarios/internal/modules/hours/application/port"
	"negociosHorarios/internal/platform/kv"
)

const listingHoursKeyFormat = "%slisting_hours_v1:%s"

// RedisScheduleStore keeps one JSON document per listing.
type RedisScheduleStore struct {
	client kv.Client
	prefix string
}

func NewRedisScheduleStore(client kv.Client, keyPrefix string) *RedisScheduleStore {
	return &RedisScheduleStore{client: client, prefix: strings.TrimSpace(keyPrefix)}
}

func (s *RedisScheduleStore) key(listingID string) string {
	return fmt.Sprintf(listingHoursKeyFormat, s.prefix, listingID)
}

func (s *RedisScheduleStore) Get(ctx context.Context, listingID string) (port.ListingHours, error) {
	raw, err := s.client.Get(ctx, s.key(listingID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return port.ListingHours{}, port.ErrListingNotFound
	}
	if err != nil {
		return port.ListingHours{}, fmt.Errorf("redis get %s: %w", listingID, err)
	}
	var record port.ListingHours
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return port.ListingHours{}, fmt.Errorf("decode listing hours %s: %w", listingID, err)
	}
	if record.ListingID == "" {
		record.ListingID = listingID
	}
	return record, nil
}

func (s *RedisScheduleStore) Save(ctx context.Context, record port.ListingHours) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode listing hours %s: %w", record.ListingID, err)
	}
	if err := s.client.Set(ctx, s.key(record.ListingID), string(data)); err != nil {
		return fmt.Errorf("redis set %s: %w", record.ListingID, err)
	}
	return nil
}

func (s *RedisScheduleStore) Delete(ctx context.Context, listingID string) error {
	err := s.client.Del(ctx, s.key(listingID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return port.ErrListingNotFound
	}
	if err != nil {
		return fmt.Errorf("redis del %s: %w", listingID, err)
	}
	return nil
}

var _ port.ScheduleStore = (*RedisScheduleStore)(nil)
