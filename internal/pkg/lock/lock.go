package lock

import (
	"context"
	"fmt"
	"sort"
	"time"

	"booking-engine/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	goredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// Locker serializes writers that touch the same slot or wallet.
type Locker interface {
	// Lock acquires every key or none. The returned func releases them.
	Lock(ctx context.Context, keys ...string) (func(), error)
}

type redisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
}

func NewRedisLocker(client *redis.Client, expiry time.Duration, tries int) Locker {
	if tries <= 0 {
		tries = 32
	}
	return &redisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		tries:  tries,
	}
}

func SlotKey(photographerID string, date time.Time) string {
	return fmt.Sprintf("slot:%s:%s", photographerID, date.Format("2006-01-02"))
}

func WalletKey(clientID string) string {
	return "wallet:" + clientID
}

func (l *redisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	// fixed acquisition order so two writers never wait on each other crosswise
	ordered := dedupe(keys)
	sort.Strings(ordered)

	held := make([]*redsync.Mutex, 0, len(ordered))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			_, _ = held[i].UnlockContext(context.Background())
		}
	}

	for _, key := range ordered {
		m := l.rs.NewMutex(keyPrefix+key,
			redsync.WithExpiry(l.expiry),
			redsync.WithTries(l.tries),
			redsync.WithRetryDelay(50*time.Millisecond),
		)
		if err := m.LockContext(ctx); err != nil {
			release()
			return nil, errors.ConflictError(fmt.Sprintf("resource %s is busy, retry shortly", key))
		}
		held = append(held, m)
	}
	return release, nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
