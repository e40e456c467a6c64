package cache

import (
	"context"
	"errors"
	"testing"
)

func TestNoopTagCache_AlwaysMisses(t *testing.T) {
	var c TagCache = NoopTagCache{}
	ctx := context.Background()

	if err := c.SetTags(ctx, []string{"a"}); err != nil {
		t.Fatalf("SetTags returned error: %v", err)
	}
	if _, err := c.GetTags(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Errorf("Invalidate returned error: %v", err)
	}
}
