package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testRedisProvider returns a Redis-backed provider for tests.
// Skips if Redis is unavailable.
func testRedisProvider(t *testing.T) *RedisProvider {
	t.Helper()

	addr := envOr("REDIS_ADDR", "localhost:6379")
	password := os.Getenv("REDIS_PASSWORD")

	probe := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: 15})
	ctx := context.Background()
	if err := probe.Ping(ctx).Err(); err != nil {
		probe.Close()
		t.Skipf("skipping integration test: Redis not reachable: %v", err)
	}
	probe.Close()

	p := NewRedisProvider(RedisConfig{
		Addr:      addr,
		Password:  password,
		DB:        15, // Use DB 15 for tests.
		Namespace: fmt.Sprintf("menuproxy-test-%d", time.Now().UnixNano()),
	})

	t.Cleanup(func() {
		p.Clear(ctx, "")
		p.Close()
	})

	return p
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisRoundTrip(t *testing.T) {
	p := testRedisProvider(t)
	ctx := context.Background()

	if err := p.Set(ctx, "catalog:LOC1", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := p.Get(ctx, "catalog:LOC1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get: got %q, want %q", got, "value")
	}
}

func TestRedisMiss(t *testing.T) {
	p := testRedisProvider(t)

	if _, err := p.Get(context.Background(), "nope"); err != ErrCacheMiss {
		t.Errorf("Get on missing key: got %v, want ErrCacheMiss", err)
	}
}

func TestRedisExpiry(t *testing.T) {
	p := testRedisProvider(t)
	ctx := context.Background()

	if err := p.Set(ctx, "short", []byte("v"), 50*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if _, err := p.Get(ctx, "short"); err != ErrCacheMiss {
		t.Errorf("expired Get: got %v, want ErrCacheMiss", err)
	}
}

func TestRedisDeleteAndHas(t *testing.T) {
	p := testRedisProvider(t)
	ctx := context.Background()

	p.Set(ctx, "k", []byte("v"), time.Minute)

	has, err := p.Has(ctx, "k")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if !has {
		t.Error("Has: got false, want true")
	}

	removed, err := p.Delete(ctx, "k")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("Delete of existing key: got false, want true")
	}

	removed, err = p.Delete(ctx, "k")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Error("Delete of missing key: got true, want false")
	}
}

func TestRedisClearPrefix(t *testing.T) {
	p := testRedisProvider(t)
	ctx := context.Background()

	p.Set(ctx, "catalog:LOC1", []byte("a"), time.Minute)
	p.Set(ctx, "categories:LOC1", []byte("b"), time.Minute)
	p.Set(ctx, "locations", []byte("c"), time.Minute)

	if err := p.Clear(ctx, "catalog:"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, err := p.Get(ctx, "catalog:LOC1"); err != ErrCacheMiss {
		t.Error("catalog:LOC1 should be cleared")
	}
	for _, key := range []string{"categories:LOC1", "locations"} {
		if _, err := p.Get(ctx, key); err != nil {
			t.Errorf("%s should survive the clear: %v", key, err)
		}
	}
}
