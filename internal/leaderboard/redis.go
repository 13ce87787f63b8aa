package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// scoreKey is the sorted set holding userID -> totalScore
const scoreKey = "leaderboard:score"

// opTimeout bounds every Redis call so a slow cache cannot stall a request
const opTimeout = 3 * time.Second

// Board is an optional Redis-backed cache for the global leaderboard.
// The SQL user_stats table stays authoritative; the board only speeds
// up the uncategorized top-N read and is rebuilt from SQL on demand.
type Board struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection
func New(addr, password string, db int) (*Board, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Board{client: client}, nil
}

// UpdateScore records a user's current total score in the sorted set
func (b *Board) UpdateScore(userID string, totalScore int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return b.client.ZAdd(ctx, scoreKey, &redis.Z{
		Score:  float64(totalScore),
		Member: userID,
	}).Err()
}

// Remove drops a user from the leaderboard (used by user reset)
func (b *Board) Remove(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return b.client.ZRem(ctx, scoreKey, userID).Err()
}

// Top returns up to limit user IDs ordered by total score descending
func (b *Board) Top(limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return b.client.ZRevRange(ctx, scoreKey, 0, int64(limit-1)).Result()
}

// Rebuild replaces the sorted set with the given userID -> score mapping
func (b *Board) Rebuild(scores map[string]int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	pipe := b.client.TxPipeline()
	pipe.Del(ctx, scoreKey)
	for userID, score := range scores {
		pipe.ZAdd(ctx, scoreKey, &redis.Z{Score: float64(score), Member: userID})
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Close releases the Redis connection
func (b *Board) Close() error {
	return b.client.Close()
}
