package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

var _ datasources.RankingsCache = (*RankingsCache)(nil)

type cachedRankings struct {
	rankings  []domain.UserItemRating
	expiresAt time.Time
}

type userRankings struct {
	version int64
	views   map[string]cachedRankings
}

// RankingsCache is a process-wide TTL cache of ranking views.
type RankingsCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	clock func() time.Time
	users map[string]*userRankings
}

func NewRankingsCache(ttl time.Duration, clock func() time.Time) *RankingsCache {
	if clock == nil {
		clock = time.Now
	}
	return &RankingsCache{
		ttl:   ttl,
		clock: clock,
		users: make(map[string]*userRankings),
	}
}

// userLocked returns the user's entry, creating it at version zero.
func (c *RankingsCache) userLocked(userID string) *userRankings {
	user, ok := c.users[userID]
	if !ok {
		user = &userRankings{views: make(map[string]cachedRankings)}
		c.users[userID] = user
	}
	return user
}

func (c *RankingsCache) RankingsVersion(_ context.Context, userID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if user, ok := c.users[userID]; ok {
		return user.version, nil
	}
	return 0, nil
}

func (c *RankingsCache) GetRankings(
	_ context.Context, userID string, version int64, key string,
) ([]domain.UserItemRating, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, ok := c.users[userID]
	if !ok || user.version != version {
		return nil, false, nil
	}
	entry, ok := user.views[key]
	if !ok {
		return nil, false, nil
	}
	if !c.clock().Before(entry.expiresAt) {
		delete(user.views, key)
		return nil, false, nil
	}
	return slices.Clone(entry.rankings), true, nil
}

func (c *RankingsCache) SetRankings(
	_ context.Context, userID string, version int64, key string, rankings []domain.UserItemRating,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user := c.userLocked(userID)
	if user.version != version {
		return nil
	}
	user.views[key] = cachedRankings{
		rankings:  slices.Clone(rankings),
		expiresAt: c.clock().Add(c.ttl),
	}
	return nil
}

func (c *RankingsCache) InvalidateUserRankings(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	user := c.userLocked(userID)
	user.version++
	user.views = make(map[string]cachedRankings)
	return nil
}
