package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

// Availability guarda o resultado de free-slots por (stylist, dia) com TTL
// curto. Qualquer falha do redis degrada para recomputação; nunca vira erro
// para o caller. Um Availability nil está sempre em cache-miss.
type Availability struct {
	rdb    *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

func NewAvailability(rdb *redis.Client, logger *zap.Logger) *Availability {
	return &Availability{
		rdb:    rdb,
		logger: logger,
		ttl:    60 * time.Second,
	}
}

func key(stylistID uint, day time.Time) string {
	return fmt.Sprintf("avail:%d:%s", stylistID, day.UTC().Format(timeutil.DayFormat))
}

func (c *Availability) Get(
	ctx context.Context,
	stylistID uint,
	day time.Time,
) ([]schedule.Interval, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(stylistID, day)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("availability cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.Interval
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(
	ctx context.Context,
	stylistID uint,
	day time.Time,
	slots []schedule.Interval,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(stylistID, day), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache set failed", zap.Error(err))
	}
}

// Invalidate remove os dias afetados por uma escrita de booking.
func (c *Availability) Invalidate(
	ctx context.Context,
	stylistID uint,
	days ...time.Time,
) {

	if c == nil || c.rdb == nil || len(days) == 0 {
		return
	}

	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, key(stylistID, d))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("availability cache invalidate failed", zap.Error(err))
	}
}
