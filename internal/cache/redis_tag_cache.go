package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
)

type RedisTagCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewRedisTagCache(client rueidis.Client, key string, ttl time.Duration) *RedisTagCache {
	return &RedisTagCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (r *RedisTagCache) GetTags(ctx context.Context) ([]string, error) {
	cmd := r.client.B().Get().Key(r.key).Build()
	raw, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *RedisTagCache) SetTags(ctx context.Context, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	payload, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	if seconds := int64(r.ttl / time.Second); seconds > 0 {
		cmd := r.client.B().Set().Key(r.key).Value(string(payload)).ExSeconds(seconds).Build()
		return r.client.Do(ctx, cmd).Error()
	}

	cmd := r.client.B().Set().Key(r.key).Value(string(payload)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisTagCache) Invalidate(ctx context.Context) error {
	cmd := r.client.B().Del().Key(r.key).Build()
	return r.client.Do(ctx, cmd).Error()
}
