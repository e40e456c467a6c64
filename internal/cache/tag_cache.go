package cache

import (
	"context"
	"errors"
)

// TagCache holds the distinct tag list between mutations.
type TagCache interface {
	GetTags(ctx context.Context) ([]string, error)

	SetTags(ctx context.Context, tags []string) error

	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("tag cache miss")

// NoopTagCache always misses. Used when no redis address is configured.
type NoopTagCache struct{}

func (NoopTagCache) GetTags(context.Context) ([]string, error) { return nil, ErrCacheMiss }
func (NoopTagCache) SetTags(context.Context, []string) error   { return nil }
func (NoopTagCache) Invalidate(context.Context) error          { return nil }
