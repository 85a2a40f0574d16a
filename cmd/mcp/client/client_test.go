package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/datasources/memory"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/jbeshir/set-ranker/internal/session"
	"github.com/jbeshir/set-ranker/internal/transport/web/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = router.StaticTokenPrefix + "client-test"

func itemID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func newTestAPI(t *testing.T) *httptest.Server {
	repo := memory.New()
	cache := datasources.NullRankingsCache{}
	selector := command.NewSelectCandidates(repo, command.SelectCandidatesConfig{MinPeers: 2, Limit: 5})

	sum := sha256.Sum256([]byte(testToken))
	handler, err := router.MakeRouter(repo, router.Commands{
		GetCandidates:    command.NewGetCandidates(repo, selector),
		SubmitVote:       command.NewSubmitVote(repo, cache, domain.DefaultEloConfig()),
		ListRankings:     command.NewListRankings(repo, cache),
		SetItemSentiment: command.NewSetItemSentiment(repo, cache),
	}, "http://localhost", router.NewAuthMiddleware([]router.AuthValidator{
		router.NewStaticTokenValidator(map[string]string{hex.EncodeToString(sum[:]): "user-1"}),
	}))
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewClient(newTestAPI(t).URL+"/", testToken)

	for n := 1; n <= 3; n++ {
		rating, err := c.SetItemSentiment(ctx, itemID(n), domain.BucketLiked)
		require.NoError(t, err)
		assert.Equal(t, itemID(n), rating.ItemID)
		assert.Equal(t, domain.DefaultEloRating, rating.EloRating)
	}

	liked := domain.BucketLiked
	count, err := c.CountItems(ctx, &liked)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	result, err := c.GetCandidatesWithTarget(ctx, itemID(1), []string{itemID(2)})
	require.NoError(t, err)
	assert.Equal(t, itemID(1), result.Target.ItemID)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, itemID(3), result.Candidates[0].ItemID)

	commit, err := c.SubmitVote(ctx, itemID(1), itemID(3))
	require.NoError(t, err)
	assert.False(t, commit.AlreadyRecorded)
	assert.NotEmpty(t, commit.Record.ID)
	assert.Equal(t, 1516, commit.Winner.EloRating)
	assert.Equal(t, 1484, commit.Loser.EloRating)

	rankings, err := c.ListRankings(ctx, true, nil)
	require.NoError(t, err)
	require.Len(t, rankings, 3)
	assert.Equal(t, itemID(1), rankings[0].ItemID)
	assert.Equal(t, itemID(3), rankings[2].ItemID)
}

func TestClient_ErrorsMapToDomain(t *testing.T) {
	ctx := context.Background()
	c := NewClient(newTestAPI(t).URL, testToken)

	_, err := c.SubmitVote(ctx, itemID(1), itemID(1))
	assert.ErrorIs(t, err, domain.ErrSelfComparison)

	_, err = c.SubmitVote(ctx, "not-a-uuid", itemID(1))
	assert.ErrorIs(t, err, domain.ErrMalformedID)

	_, err = c.SubmitVote(ctx, itemID(1), itemID(2))
	assert.ErrorIs(t, err, domain.ErrPreconditionUnmet)

	_, err = c.GetCandidates(ctx, itemID(9))
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	unauthenticated := NewClient(newTestAPI(t).URL, "")
	_, err = unauthenticated.CountItems(ctx, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_DrivesSession(t *testing.T) {
	ctx := context.Background()
	c := NewClient(newTestAPI(t).URL, testToken)

	for n := 1; n <= 4; n++ {
		_, err := c.SetItemSentiment(ctx, itemID(n), domain.BucketLiked)
		require.NoError(t, err)
	}

	s := session.New(c, session.DefaultConfig())
	view, err := s.Open(ctx, itemID(1), domain.BucketLiked)
	require.NoError(t, err)
	assert.Equal(t, session.StatePresenting, view.State)
	assert.Equal(t, 3, view.Total)

	for view.State != session.StateCompleted {
		view, err = s.Vote(ctx, true)
		require.NoError(t, err)
	}
	assert.Equal(t, session.RedirectRankings, view.Redirect)

	rankings, err := c.ListRankings(ctx, true, nil)
	require.NoError(t, err)
	assert.Equal(t, itemID(1), rankings[0].ItemID)
	assert.Equal(t, 3, rankings[0].ComparisonCount)
}
