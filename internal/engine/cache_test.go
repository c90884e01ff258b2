package engine

import (
	"context"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := Key("match_score", "candidate|job")
		k2 := Key("match_score", "candidate|job")
		if k1 != k2 {
			t.Errorf("Key not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := Key("match_score", "a")
		k2 := Key("match_score", "b")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := Key("test")
		if k[:3] != "gm:" {
			t.Errorf("expected gm: prefix, got %q", k[:3])
		}
	})
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache("", 1*time.Minute, 100, 5*time.Minute)
	defer c.Close()

	ctx := context.Background()
	key := Key("test", "round-trip")

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	c.Set(ctx, key, []byte("hello"))

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d/%d, want 1 hit / 1 miss", hits, misses)
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache("", 1*time.Minute, 100, 5*time.Minute)
	defer c.Close()

	ctx := context.Background()
	key := Key("test", "invalidate")

	c.Set(ctx, key, []byte("value"))
	if _, ok := c.Get(ctx, key); !ok {
		t.Fatal("expected hit before invalidation")
	}

	c.Invalidate(ctx, key)
	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache("", 10*time.Millisecond, 100, 5*time.Minute)
	defer c.Close()

	ctx := context.Background()
	key := Key("test", "expiry")

	c.Set(ctx, key, []byte("soon gone"))
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected entry to expire")
	}
}

type cachedResult struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
}

func TestCacheJSONRoundTrip(t *testing.T) {
	c := NewCache("", 1*time.Minute, 100, 5*time.Minute)
	defer c.Close()

	ctx := context.Background()
	key := Key("test", "json")

	if _, ok := LoadJSON[cachedResult](ctx, c, key); ok {
		t.Error("expected miss before store")
	}

	StoreJSON(ctx, c, key, cachedResult{Score: 87, Grade: "A"})

	got, ok := LoadJSON[cachedResult](ctx, c, key)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got.Score != 87 || got.Grade != "A" {
		t.Errorf("got %+v, want {87 A}", got)
	}
}

func TestCacheNilSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"))
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("nil cache should always miss")
	}
	c.Invalidate(ctx, "k")
	if h, m := c.Stats(); h != 0 || m != 0 {
		t.Errorf("nil cache stats = %d/%d, want zeros", h, m)
	}
}
