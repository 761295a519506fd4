// Package cache memoises correction results in Redis so repeated checks of
// identical text skip the provider round trip. It is strictly best-effort:
// a broken Redis looks like a cache miss, never like a request failure.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/prosefix/prosefix/internal/model"
)

// Bump when the cached payload shape changes.
const schemaVersion = "v1"

type Cache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

func WithTTL(d time.Duration) Option {
	return func(c *Cache) { c.ttl = d }
}

func New(addr, password string, db int, opts ...Option) *Cache {
	c := &Cache{
		rdb:    redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		prefix: "prosefix:result",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key derives the cache key for one backend+text pair. The schema version
// sits in the key, so a payload change invalidates by missing rather than
// by failing to decode.
func (c *Cache) Key(backend, text string) string {
	sum := sha256.Sum256([]byte(backend + "\x00" + text))
	return c.prefix + ":" + schemaVersion + ":" + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, key string) (*model.Result, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var res model.Result
	if err := msgpack.Unmarshal(b, &res); err != nil {
		log.Printf("cache: dropping undecodable entry %s: %v", key, err)
		c.rdb.Del(ctx, key)
		return nil, false
	}
	return &res, true
}

func (c *Cache) Put(ctx context.Context, key string, res *model.Result) {
	if c == nil || c.rdb == nil || res == nil {
		return
	}
	b, err := msgpack.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}
