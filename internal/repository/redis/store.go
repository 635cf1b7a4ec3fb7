// Package redis implements the entry and round stores on Redis. Entries are
// Hashes indexed by per-status Sorted Sets scored by join time; status
// changes run as Lua scripts so the version check and the index move are
// atomic. Rounds are Hashes holding a msgpack payload.
//
// Every key of an event shares the {eventID} hash tag, so the scripts stay
// on one slot under Redis Cluster.
//
// Usage:
//
//	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
//	s := redis.New(client)
//	if err := s.Ping(ctx); err != nil { ... }
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

var (
	_ ports.EntryStore = (*Store)(nil)
	_ ports.RoundStore = (*Store)(nil)
)

// Store keeps waitlist entries and lottery rounds in Redis. The caller owns
// the client lifecycle.
type Store struct {
	client goredis.Cmdable
}

func New(client goredis.Cmdable) *Store {
	return &Store{client: client}
}

// Ping verifies the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

func storeErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("redis: %s: %w", op, err)
	}
	return fmt.Errorf("redis: %s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
