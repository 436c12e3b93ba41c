package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// scanBatchSize bounds one SCAN step during prefix clears, so bulk
	// invalidation never lists an unbounded key space in one shot.
	scanBatchSize = 100

	// reconnectInterval is the delay between background connection attempts.
	reconnectInterval = 5 * time.Second

	pingTimeout = 5 * time.Second

	defaultNamespace = "menuproxy"
)

// RedisConfig holds Redis backend settings.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// RedisProvider is a Redis-backed implementation of Provider for shared
// deployments. All keys live under a namespace prefix so Clear("") only
// touches this application's keys.
type RedisProvider struct {
	client    *redis.Client
	namespace string
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewRedisProvider creates a Redis-backed cache provider. Construction
// never fails: connectivity problems are logged and retried in the
// background, and calls issued before a connection is established surface
// as provider errors rather than silent no-ops.
func NewRedisProvider(cfg RedisConfig) *RedisProvider {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	p := &RedisProvider{
		client:    client,
		namespace: namespace,
		stop:      make(chan struct{}),
	}

	go p.watchConnection(cfg.Addr)

	return p
}

// watchConnection pings until the backend answers, logging failures along
// the way. Calls issued meanwhile fail with provider errors.
func (p *RedisProvider) watchConnection(addr string) {
	for {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err := p.client.Ping(ctx).Err()
		cancel()

		if err == nil {
			log.Printf("[RedisCache] Connected - addr:%s namespace:%s", addr, p.namespace)
			return
		}

		log.Printf("[RedisCache] Connection to %s failed, retrying in %v: %v", addr, reconnectInterval, err)

		select {
		case <-time.After(reconnectInterval):
		case <-p.stop:
			return
		}
	}
}

func (p *RedisProvider) namespaced(key string) string {
	return p.namespace + Delimiter + key
}

// Get retrieves a value by key.
func (p *RedisProvider) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := p.client.Get(ctx, p.namespaced(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value with the given TTL.
func (p *RedisProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := p.client.Set(ctx, p.namespaced(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes a key, reporting whether an entry was actually removed.
func (p *RedisProvider) Delete(ctx context.Context, key string) (bool, error) {
	removed, err := p.client.Del(ctx, p.namespaced(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis delete %s: %w", key, err)
	}
	return removed > 0, nil
}

// Has checks whether a live entry exists for the key.
func (p *RedisProvider) Has(ctx context.Context, key string) (bool, error) {
	count, err := p.client.Exists(ctx, p.namespaced(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return count > 0, nil
}

// Clear removes every key under the prefix with an incremental
// scan-and-batch-delete, keeping memory and latency bounded even for
// large key spaces.
func (p *RedisProvider) Clear(ctx context.Context, prefix string) error {
	match := p.namespaced(prefix) + "*"

	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := p.client.Scan(ctx, cursor, match, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", match, err)
		}
		if len(keys) > 0 {
			if err := p.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis bulk delete: %w", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	if deleted > 0 {
		log.Printf("[RedisCache] Cleared %d keys with prefix %q", deleted, prefix)
	}
	return nil
}

// Close stops the reconnect loop and closes the client.
func (p *RedisProvider) Close() error {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
	return p.client.Close()
}
