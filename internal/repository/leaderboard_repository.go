package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LeaderboardEntry is one ranked row, richest first.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	XP       int    `json:"xp"`
	Position int    `json:"position"`
}

// LeaderboardRepository keeps XP totals in sorted sets: one overall board and
// one board per ISO week.
type LeaderboardRepository struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{client: client}
}

const overallKey = "leaderboard:overall"

func weeklyKey(now time.Time) string {
	year, week := now.ISOWeek()
	return fmt.Sprintf("leaderboard:weekly:%d-%02d", year, week)
}

// Record adds earned XP to both boards.
func (r *LeaderboardRepository) Record(ctx context.Context, userID string, xp int, now time.Time) error {
	if xp <= 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	pipe.ZIncrBy(ctx, overallKey, float64(xp), userID)
	pipe.ZIncrBy(ctx, weeklyKey(now), float64(xp), userID)
	// Weekly boards expire after a month so stale weeks don't pile up.
	pipe.Expire(ctx, weeklyKey(now), 31*24*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *LeaderboardRepository) Top(ctx context.Context, weekly bool, now time.Time, limit int) ([]LeaderboardEntry, error) {
	key := overallKey
	if weekly {
		key = weeklyKey(now)
	}
	rows, err := r.client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, LeaderboardEntry{
			UserID:   fmt.Sprint(row.Member),
			XP:       int(row.Score),
			Position: i + 1,
		})
	}
	return entries, nil
}

// Rank returns a user's 1-based position, or 0 when unranked.
func (r *LeaderboardRepository) Rank(ctx context.Context, weekly bool, now time.Time, userID string) (int, error) {
	key := overallKey
	if weekly {
		key = weeklyKey(now)
	}
	rank, err := r.client.ZRevRank(ctx, key, userID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(rank) + 1, nil
}

func (r *LeaderboardRepository) Remove(ctx context.Context, userID string, now time.Time) error {
	pipe := r.client.Pipeline()
	pipe.ZRem(ctx, overallKey, userID)
	pipe.ZRem(ctx, weeklyKey(now), userID)
	_, err := pipe.Exec(ctx)
	return err
}
