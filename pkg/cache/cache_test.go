package cache

import (
	"context"
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "store-1", []byte("1"))
				if v, ok := c.Get(ctx, "store-1"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "store-1", []byte("1"))
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get(ctx, "store-1"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Get(ctx, "a")
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "1" {
					t.Errorf("expected a=1, got %v", v)
				}
				if v, ok := c.Get(ctx, "c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				time.Sleep(time.Millisecond * 30)
				c.Set(ctx, "a", []byte("2"))
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Delete(ctx, "a")
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				runCtx, cancel := context.WithCancel(ctx)
				defer cancel()
				if err := c.Start(runCtx); err != nil {
					t.Fatalf("start: %v", err)
				}

				c.Set(ctx, "a", []byte("1"))
				time.Sleep(time.Millisecond * 60)

				if removed := c.cleanup(); removed != 1 {
					t.Errorf("expected 1 removed entry, got %d", removed)
				}
				if c.Size() != 0 {
					t.Errorf("expected cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache(tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
