package security

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// UploadLimiter caps evidence uploads per user per day with a Redis sliding window.
type UploadLimiter struct {
	client    *goredis.Client
	maxPerDay int
	window    time.Duration
}

// KEYS[1] = limiter key
// ARGV[1] = max count allowed
// ARGV[2] = window size in seconds
// ARGV[3] = current timestamp (ms)
// ARGV[4] = unique member
// Returns: 1 if allowed, 0 if rate limited
const uploadRateLimitScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window * 1000)

if redis.call('ZCARD', key) >= limit then
    return 0
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('EXPIRE', key, window)
return 1
`

// NewUploadLimiter returns a limiter allowing maxPerDay uploads per user.
// A nil client disables limiting.
func NewUploadLimiter(client *goredis.Client, maxPerDay int) *UploadLimiter {
	if maxPerDay <= 0 {
		maxPerDay = 20
	}
	return &UploadLimiter{client: client, maxPerDay: maxPerDay, window: 24 * time.Hour}
}

// Allow records one upload attempt for userID and reports whether it is within quota.
// Without Redis it fails open so uploads keep working during an outage.
func (ul *UploadLimiter) Allow(ctx context.Context, userID, uploadID string) (bool, error) {
	if ul == nil || ul.client == nil {
		return true, nil
	}

	key := fmt.Sprintf("ratelimit:evidence:user:%s", userID)
	now := time.Now().UnixMilli()

	result, err := ul.client.Eval(ctx, uploadRateLimitScript, []string{key},
		ul.maxPerDay, int(ul.window.Seconds()), now, uploadID).Result()
	if err != nil {
		return true, fmt.Errorf("upload limiter: %w", err)
	}
	allowed, ok := result.(int64)
	if !ok {
		return true, fmt.Errorf("upload limiter: unexpected result type %T", result)
	}
	return allowed == 1, nil
}
