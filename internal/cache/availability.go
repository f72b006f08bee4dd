package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/sharpcuts/booking-api/internal/domain/schedule"
)

const DefaultTTL = 30 * time.Second

// Availability caches resolved slot sequences for the public availability
// endpoint. A nil client disables caching; every method then degrades to a
// miss or a no-op, so callers never branch on whether Redis is configured.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailability(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *Availability {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Availability{rdb: rdb, ttl: ttl, log: log}
}

func slotKey(barberID uint, date string, serviceID uint) string {
	return fmt.Sprintf("avail:%d:%s:%d", barberID, date, serviceID)
}

func (c *Availability) Get(ctx context.Context, barberID, serviceID uint, date string) ([]schedule.TimeSlot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(ctx context.Context, barberID, serviceID uint, date string, slots []schedule.TimeSlot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(barberID, date, serviceID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache set failed")
	}
}

// InvalidateDay drops every cached service variant for a barber's date.
// Called after any booking mutation touching that day.
func (c *Availability) InvalidateDay(ctx context.Context, barberID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("avail:%d:%s:*", barberID, date)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", iter.Val()).Msg("availability cache invalidate failed")
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache scan failed")
	}
}
