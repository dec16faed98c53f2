package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "ratelimit")
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// RedisLimiter counts hits per key in a fixed window shared by every API
// instance. Any redis failure is answered by the fallback limiter.
type RedisLimiter struct {
	client   *redis.Client
	window   time.Duration
	limit    int
	prefix   string
	fallback Limiter
}

func NewRedis(client *redis.Client, window time.Duration, limit int, fallback Limiter) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if limit <= 0 {
		limit = 1
	}
	return &RedisLimiter{
		client:   client,
		window:   window,
		limit:    limit,
		prefix:   "jusconnect:rl:",
		fallback: fallback,
	}
}

func (l *RedisLimiter) Allow(key string) Decision {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Result()
	if err != nil {
		log.WithError(err).Warn("redis limiter unavailable")
		return l.degrade(key)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) < 2 {
		return l.degrade(key)
	}

	count, _ := vals[0].(int64)
	ttl, _ := vals[1].(int64)
	if ttl < 0 {
		ttl = l.window.Milliseconds()
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Millisecond),
	}
}

func (l *RedisLimiter) degrade(key string) Decision {
	if l.fallback != nil {
		return l.fallback.Allow(key)
	}
	return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit, ResetAt: time.Now().Add(l.window)}
}
