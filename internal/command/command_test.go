package command

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/jbeshir/set-ranker/internal/datasources/memory"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/stretchr/testify/require"
)

const testUserID = "user1"

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func itemID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestRepository() *memory.Repository {
	clock := &testClock{now: time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)}
	return memory.New(memory.WithClock(clock.Now), memory.WithRand(rand.New(rand.NewPCG(7, 11))))
}

func seedBucket(t *testing.T, repo *memory.Repository, bucket domain.SentimentBucket, ids ...int) {
	for _, n := range ids {
		_, err := repo.SetItemSentiment(context.Background(), testUserID, itemID(n), bucket)
		require.NoError(t, err)
	}
}

func testSelectConfig() SelectCandidatesConfig {
	return SelectCandidatesConfig{MinPeers: 2, Limit: 5}
}

func eloUpdate(w, l domain.UserItemRating) (int, int) {
	return domain.DefaultEloConfig().Update(w.EloRating, l.EloRating)
}
