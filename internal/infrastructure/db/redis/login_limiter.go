package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles credential attempts with a fixed window per email.
// Key format: login_attempts:<email>. Redis failures are logged and treated
// as "allow" so an unavailable Redis never locks users out.
type LoginLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	log    zerolog.Logger
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive max or window fall back to the defaults.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration, log zerolog.Logger) *LoginLimiter {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, max: max, window: window, log: log}
}

// Allow reports whether another login attempt for email is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err != nil {
		if err != redis.Nil {
			l.log.Warn().Err(err).Msg("login limiter check failed, allowing")
		}
		return true
	}
	return n < l.max
}

// RecordFailure counts a failed attempt; the window starts at the first one.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn().Err(err).Msg("login limiter increment failed")
		return
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Msg("login limiter expire failed")
		}
	}
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		l.log.Warn().Err(err).Msg("login limiter reset failed")
	}
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
