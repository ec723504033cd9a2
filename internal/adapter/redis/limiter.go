package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// incrWithExpiry bumps the window counter and sets its expiry on first use.
// It returns the new count and the remaining TTL in milliseconds.
var incrWithExpiry = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// Limiter is a fixed-window request counter shared by every server instance.
type Limiter struct {
	client goredis.Scripter
	prefix string
	now    func() time.Time
}

// NewLimiter creates a Limiter. Keys are stored under prefix.
func NewLimiter(client goredis.Scripter, prefix string) *Limiter {
	return &Limiter{client: client, prefix: prefix, now: time.Now}
}

// Allow counts one request for key. When the window is exhausted it returns
// false and the time until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string, perMinute int) (bool, time.Duration, error) {
	if perMinute <= 0 {
		return true, 0, nil
	}

	bucket := l.now().UnixMilli() / window.Milliseconds()
	redisKey := l.prefix + key + ":" + strconv.FormatInt(bucket, 10)

	res, err := incrWithExpiry.Run(ctx, l.client, []string{redisKey}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("redis limiter: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("redis limiter: unexpected reply %v", res)
	}

	if res[0] <= int64(perMinute) {
		return true, 0, nil
	}

	retry := time.Duration(res[1]) * time.Millisecond
	if retry <= 0 {
		retry = time.Second
	}
	return false, retry, nil
}
