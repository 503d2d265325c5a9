package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"gantry/internal/domain/ratelimit"
	apperrors "gantry/internal/shared/errors"
)

// statsKeyPrefix matches the per-minute counter keys written by the
// enforcement gateway: stats:global:<minute>:{total,allowed,blocked}.
const statsKeyPrefix = "stats:global:"

// RedisStatsReader reads the gateway's per-minute counters. It never writes
// them.
type RedisStatsReader struct {
	client *redis.Client
}

var _ ratelimit.StatsReader = (*RedisStatsReader)(nil)

func NewRedisStatsReader(client *redis.Client) *RedisStatsReader {
	return &RedisStatsReader{client: client}
}

// Sample fetches the three counters for one minute bucket in a single
// pipeline round trip. Absent or unparsable counters read as zero.
func (r *RedisStatsReader) Sample(ctx context.Context, minute int64) (ratelimit.StatsSample, error) {
	pipe := r.client.Pipeline()
	total := pipe.Get(ctx, statsKey(minute, "total"))
	allowed := pipe.Get(ctx, statsKey(minute, "allowed"))
	blocked := pipe.Get(ctx, statsKey(minute, "blocked"))

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return ratelimit.StatsSample{}, apperrors.NewStoreError("failed to read usage counters", err.Error())
	}

	return ratelimit.StatsSample{
		Minute:  minute,
		Total:   counterValue(total),
		Allowed: counterValue(allowed),
		Blocked: counterValue(blocked),
	}, nil
}

func statsKey(minute int64, field string) string {
	return fmt.Sprintf("%s%d:%s", statsKeyPrefix, minute, field)
}

func counterValue(cmd *redis.StringCmd) int64 {
	val, err := cmd.Result()
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
