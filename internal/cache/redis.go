package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"courtside-backend/internal/config"
	"courtside-backend/internal/domain"
)

type RedisCache struct {
	client          *redis.Client
	availabilityTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, availabilityTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		availabilityTTL: availabilityTTL,
	}
}

// GetAvailability returns the cached availability for (facility, date), or
// nil on a miss.
func (c *RedisCache) GetAvailability(ctx context.Context, facilityID int32, date string) (*domain.FacilityAvailability, error) {
	data, err := c.client.Get(ctx, availabilityKey(facilityID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var fa domain.FacilityAvailability
	if err := json.Unmarshal(data, &fa); err != nil {
		return nil, err
	}
	return &fa, nil
}

func (c *RedisCache) SetAvailability(ctx context.Context, facilityID int32, date string, fa *domain.FacilityAvailability) error {
	payload, err := json.Marshal(fa)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(facilityID, date), payload, c.availabilityTTL).Err()
}

func (c *RedisCache) InvalidateAvailability(ctx context.Context, facilityID int32, date string) error {
	return c.client.Del(ctx, availabilityKey(facilityID, date)).Err()
}

func availabilityKey(facilityID int32, date string) string {
	return fmt.Sprintf("availability:%d:%s", facilityID, date)
}
