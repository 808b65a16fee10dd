// File: services/conversation/statecache.go
package conversation

import (
	"context"
	"encoding/json"
	"time"

	"tripmate/models"

	"github.com/go-redis/redis/v8"
)

const stateCachePrefix = "conv:state:"

// StateCache keeps recently used conversation states in Redis so a
// chat turn does not need a document read for every message.
type StateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStateCache(client *redis.Client, ttl time.Duration) *StateCache {
	return &StateCache{client: client, ttl: ttl}
}

// Get returns the cached state, or nil when the key is absent.
func (c *StateCache) Get(ctx context.Context, userID string) (*models.ConversationState, error) {
	data, err := c.client.Get(ctx, stateCachePrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *StateCache) Set(ctx context.Context, state *models.ConversationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, stateCachePrefix+state.UserID, b, c.ttl).Err()
}

func (c *StateCache) Clear(ctx context.Context, userID string) error {
	return c.client.Del(ctx, stateCachePrefix+userID).Err()
}
