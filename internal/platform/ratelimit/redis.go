// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumestudio/lume-api/internal/platform/constants"
)

// Redis is a shared fixed-window [Limiter] backed by INCR + PEXPIRE.
//
// The first increment of a window sets the expiry, so the key disappears on
// its own after the window ends. Multiple API instances pointing at the same
// Redis see one combined budget per client.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a limiter on top of an existing Redis client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Allow implements [Limiter].
func (r *Redis) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	redisKey := constants.RedisPrefixRateLimit + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Do(ctx, "PEXPIRE", redisKey, window.Milliseconds(), "NX")
	pttl := pipe.PTTL(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis check failed: %w", err)
	}

	count := int(incr.Val())
	reset := time.Now().Add(pttl.Val())

	if count > limit {
		return Decision{Allowed: false, Remaining: 0, Reset: reset}, nil
	}

	return Decision{
		Allowed:   true,
		Remaining: limit - count,
		Reset:     reset,
	}, nil
}
