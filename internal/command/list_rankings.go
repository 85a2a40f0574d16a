package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type ListRankingsRequest struct {
	UserID  string
	Options domain.RankingOptions
}

// ListRankings serves ranking views from the cache, collapsing concurrent
// misses for the same view into one store read.
type ListRankings struct {
	Lister datasources.RankingLister
	Cache  datasources.RankingsCache

	group singleflight.Group
}

func NewListRankings(lister datasources.RankingLister, cache datasources.RankingsCache) *ListRankings {
	return &ListRankings{
		Lister: lister,
		Cache:  cache,
	}
}

func (c *ListRankings) Execute(ctx context.Context, req ListRankingsRequest) ([]domain.UserItemRating, error) {
	logger := domain.LoggerFromContext(ctx)
	key := req.Options.CacheKey()

	version, err := c.Cache.RankingsVersion(ctx, req.UserID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read rankings cache version", "error", err)
		rankings, err := c.Lister.ListRankings(ctx, req.UserID, req.Options)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "listing rankings", Err: err}
		}
		return rankings, nil
	}

	cached, ok, err := c.Cache.GetRankings(ctx, req.UserID, version, key)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read cached rankings", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	// Flights are per version: a read begun before an invalidation is not
	// shared with callers that arrive after it.
	v, err, _ := c.group.Do(fmt.Sprintf("%s|%d|%s", req.UserID, version, key), func() (any, error) {
		rankings, err := c.Lister.ListRankings(ctx, req.UserID, req.Options)
		if err != nil {
			return nil, err
		}
		if err := c.Cache.SetRankings(ctx, req.UserID, version, key, rankings); err != nil {
			logger.WarnContext(ctx, "Failed to cache rankings", "key", key, "error", err)
		}
		return rankings, nil
	})
	if err != nil {
		return nil, &domain.PersistenceError{Op: "listing rankings", Err: err}
	}

	return v.([]domain.UserItemRating), nil
}
