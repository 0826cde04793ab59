package repositories

import (
	"context"
	"fmt"
	"time"

	"booking-engine/internal/pkg/errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func slotCacheKey(photographerID string, date time.Time, durationMinutes int) string {
	return fmt.Sprintf("slots:%s:%s:%d", photographerID, dateParam(date), durationMinutes)
}

// Lock implements Repositories.
func (r *repositories) Lock(ctx context.Context, keys ...string) (func(), error) {
	return r.locker.Lock(ctx, keys...)
}

// GetCachedSlots returns a cached slot listing. Any cache failure reads as a miss.
func (r *repositories) GetCachedSlots(ctx context.Context, photographerID string, date time.Time, durationMinutes int) ([]string, bool) {
	data, err := r.redisClient.Get(ctx, slotCacheKey(photographerID, date, durationMinutes)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		r.log.Warn(ctx, "discarding malformed slot cache entry", zap.String("photographer_id", photographerID))
		return nil, false
	}
	return slots, true
}

// SetCachedSlots implements Repositories.
func (r *repositories) SetCachedSlots(ctx context.Context, photographerID string, date time.Time, durationMinutes int, slots []string) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return errors.InternalServerError("error encode slots")
	}
	if err := r.redisClient.Set(ctx, slotCacheKey(photographerID, date, durationMinutes), data, r.slotCacheTTL).Err(); err != nil {
		r.log.Error(ctx, "error cache slots", err)
		return errors.InternalServerError("error cache slots")
	}
	return nil
}

// InvalidateSlots drops every cached listing of photographerID.
func (r *repositories) InvalidateSlots(ctx context.Context, photographerID string) error {
	iter := r.redisClient.Scan(ctx, 0, fmt.Sprintf("slots:%s:*", photographerID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.log.Error(ctx, "error scan slot cache", err)
		return errors.InternalServerError("error invalidate slot cache")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		r.log.Error(ctx, "error delete slot cache", err)
		return errors.InternalServerError("error invalidate slot cache")
	}
	return nil
}
