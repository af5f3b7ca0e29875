// README: Flight search result cache backed by Redis.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "flights:search:%s:%s:%s"

// Cache keeps search results stable for a route and date while a conversation
// is in flight; offers are random, so without it every turn would reshuffle
// the inventory the user is looking at.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redis, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, from, to, date string) ([]Offer, bool, error) {
	data, err := c.redis.Get(ctx, searchKey(from, to, date)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var offers []Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false, err
	}
	return offers, true, nil
}

func (c *Cache) Set(ctx context.Context, from, to, date string, offers []Offer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, searchKey(from, to, date), data, c.ttl).Err()
}

func searchKey(from, to, date string) string {
	return fmt.Sprintf(searchKeyPrefix, from, to, date)
}
