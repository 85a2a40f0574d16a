package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

var _ datasources.RankingsCache = (*RankingsCache)(nil)

// RankingsCache stores each ranking view under its own key with its own TTL.
// View keys embed the user's version, so invalidating a user is one INCR and
// views from older versions are never read again and expire by themselves.
type RankingsCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func NewRankingsCache(rdb *goredis.Client, ttl time.Duration) *RankingsCache {
	return &RankingsCache{rdb: rdb, ttl: ttl}
}

func versionKey(userID string) string {
	return "rankings:" + userID + ":version"
}

func viewKey(userID string, version int64, key string) string {
	return fmt.Sprintf("rankings:%s:v%d:%s", userID, version, key)
}

func readVersion(cmd *goredis.StringCmd) (int64, error) {
	version, err := cmd.Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *RankingsCache) RankingsVersion(ctx context.Context, userID string) (int64, error) {
	version, err := readVersion(c.rdb.Get(ctx, versionKey(userID)))
	if err != nil {
		return 0, fmt.Errorf("reading rankings version: %w", err)
	}
	return version, nil
}

func (c *RankingsCache) GetRankings(
	ctx context.Context, userID string, version int64, key string,
) ([]domain.UserItemRating, bool, error) {
	raw, err := c.rdb.Get(ctx, viewKey(userID, version, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached rankings: %w", err)
	}

	var rankings []domain.UserItemRating
	if err := json.Unmarshal(raw, &rankings); err != nil {
		return nil, false, fmt.Errorf("decoding cached rankings: %w", err)
	}
	for i := range rankings {
		rankings[i].UserID = userID
	}
	return rankings, true, nil
}

// SetRankings writes the view only while the version key still holds
// version; WATCH aborts the write if an invalidation lands in between.
func (c *RankingsCache) SetRankings(
	ctx context.Context, userID string, version int64, key string, rankings []domain.UserItemRating,
) error {
	raw, err := json.Marshal(rankings)
	if err != nil {
		return fmt.Errorf("encoding rankings: %w", err)
	}

	err = c.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := readVersion(tx.Get(ctx, versionKey(userID)))
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, viewKey(userID, version, key), raw, c.ttl)
			return nil
		})
		return err
	}, versionKey(userID))
	if errors.Is(err, goredis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("writing cached rankings: %w", err)
	}
	return nil
}

func (c *RankingsCache) InvalidateUserRankings(ctx context.Context, userID string) error {
	if err := c.rdb.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidating cached rankings: %w", err)
	}
	return nil
}
