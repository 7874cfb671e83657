package lastseen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// lastSeenKey is a sorted set of Telegram IDs scored by last-seen unix milliseconds
const lastSeenKey = "location:last_seen"

// forgetUnlessTouched removes a member only while its score is at or below ARGV[2]
var forgetUnlessTouched = redis.NewScript(`
local score = redis.call("ZSCORE", KEYS[1], ARGV[1])
if score and tonumber(score) <= tonumber(ARGV[2]) then
	return redis.call("ZREM", KEYS[1], ARGV[1])
end
return 0
`)

// Config holds configuration for the Redis last-seen repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed last-seen repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Touch records a location update for a worker
func (r *redisRepository) Touch(ctx context.Context, input *TouchInput) error {
	if input == nil || input.TelegramID == 0 {
		return errors.New("input and telegram ID cannot be empty")
	}

	err := r.client.ZAdd(ctx, lastSeenKey, redis.Z{
		Score:  float64(input.SeenAt.UnixMilli()),
		Member: strconv.FormatInt(input.TelegramID, 10),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record last seen: %w", err)
	}

	return nil
}

// Forget stops tracking a worker's recency
func (r *redisRepository) Forget(ctx context.Context, input *ForgetInput) error {
	if input == nil || input.TelegramID == 0 {
		return errors.New("input and telegram ID cannot be empty")
	}

	member := strconv.FormatInt(input.TelegramID, 10)

	if input.SeenAt.IsZero() {
		if err := r.client.ZRem(ctx, lastSeenKey, member).Err(); err != nil {
			return fmt.Errorf("failed to forget last seen: %w", err)
		}
		return nil
	}

	err := forgetUnlessTouched.Run(ctx, r.client, []string{lastSeenKey}, member, input.SeenAt.UnixMilli()).Err()
	if err != nil {
		return fmt.Errorf("failed to forget last seen: %w", err)
	}

	return nil
}

// ListStale retrieves every worker last seen before the cutoff, oldest first
func (r *redisRepository) ListStale(ctx context.Context, input *ListStaleInput) (*ListStaleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	members, err := r.client.ZRangeByScoreWithScores(ctx, lastSeenKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(input.Before.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list stale entries: %w", err)
	}

	entries := make([]*Entry, 0, len(members))
	for _, member := range members {
		raw, ok := member.Member.(string)
		if !ok {
			continue
		}

		telegramID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// Not one of ours, drop it so it does not show up again
			if err := r.client.ZRem(ctx, lastSeenKey, raw).Err(); err != nil {
				return nil, fmt.Errorf("failed to drop malformed entry %q: %w", raw, err)
			}
			continue
		}

		entries = append(entries, &Entry{
			TelegramID: telegramID,
			SeenAt:     time.UnixMilli(int64(member.Score)).UTC(),
		})
	}

	return &ListStaleOutput{
		Entries: entries,
	}, nil
}
