package datasources

import (
	"context"

	"github.com/jbeshir/set-ranker/internal/domain"
)

// RankingsCache holds computed ranking views per user. Each user has a
// version that votes and sentiment changes bump through
// InvalidateUserRankings; views are stored and looked up under a version, so
// a view read from the store before an invalidation is never served after it.
type RankingsCache interface {
	RankingsCacheGetter
	RankingsCacheSetter
	RankingsCacheInvalidator
}

type RankingsCacheGetter interface {
	RankingsVersion(ctx context.Context, userID string) (int64, error)
	GetRankings(ctx context.Context, userID string, version int64, key string) ([]domain.UserItemRating, bool, error)
}

type RankingsCacheSetter interface {
	// SetRankings stores a view read at version. It does nothing if the user
	// has been invalidated since.
	SetRankings(ctx context.Context, userID string, version int64, key string, rankings []domain.UserItemRating) error
}

type RankingsCacheInvalidator interface {
	InvalidateUserRankings(ctx context.Context, userID string) error
}

// NullRankingsCache never stores anything.
type NullRankingsCache struct{}

var _ RankingsCache = NullRankingsCache{}

func (NullRankingsCache) RankingsVersion(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (NullRankingsCache) GetRankings(_ context.Context, _ string, _ int64, _ string) ([]domain.UserItemRating, bool, error) {
	return nil, false, nil
}

func (NullRankingsCache) SetRankings(_ context.Context, _ string, _ int64, _ string, _ []domain.UserItemRating) error {
	return nil
}

func (NullRankingsCache) InvalidateUserRankings(_ context.Context, _ string) error {
	return nil
}
