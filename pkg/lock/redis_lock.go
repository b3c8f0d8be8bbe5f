package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Pushes the expiry forward only while the key still holds our token
var refreshScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker coordinates session locks across replicas. A held lock is
// extended every ttl/3 until released, so work may outlast the ttl.
type RedisLocker struct {
	client    redis.UniversalClient
	prefix    string
	ttl       time.Duration
	retryWait time.Duration
}

var _ Locker = &RedisLocker{}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisLocker{
		client:    client,
		prefix:    "lock:session:",
		ttl:       ttl,
		retryWait: 25 * time.Millisecond,
	}
}

func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := r.prefix + key
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retryWait):
		}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go r.keepAlive(redisKey, token, stop, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done

			// Release must outlive a cancelled request context
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			// On failure the TTL reclaims the key
			_ = releaseScript.Run(releaseCtx, r.client, []string{redisKey}, token).Err()
		})
	}, nil
}

// keepAlive extends the key until stop is closed or the token is no longer ours
func (r *RedisLocker) keepAlive(redisKey, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	interval := refreshInterval(r.ttl)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			n, err := refreshScript.Run(ctx, r.client, []string{redisKey}, token, r.ttl.Milliseconds()).Int()
			cancel()
			if err == nil && n == 0 {
				return
			}
		}
	}
}

func refreshInterval(ttl time.Duration) time.Duration {
	interval := ttl / 3
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	return interval
}
