package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/datasources/memory"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/jbeshir/set-ranker/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user1"

func itemID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

// localAPI runs the real commands against an in-memory store.
type localAPI struct {
	repo       *memory.Repository
	candidates *command.GetCandidates
	vote       *command.SubmitVote
	rankings   *command.ListRankings
	sentiment  *command.SetItemSentiment
}

func newLocalAPI() *localAPI {
	repo := memory.New()
	cache := datasources.NullRankingsCache{}
	selector := command.NewSelectCandidates(repo, command.SelectCandidatesConfig{MinPeers: 2, Limit: 5})
	return &localAPI{
		repo:       repo,
		candidates: command.NewGetCandidates(repo, selector),
		vote:       command.NewSubmitVote(repo, cache, domain.DefaultEloConfig()),
		rankings:   command.NewListRankings(repo, cache),
		sentiment:  command.NewSetItemSentiment(repo, cache),
	}
}

func (a *localAPI) CountItems(ctx context.Context, bucket *domain.SentimentBucket) (int64, error) {
	return a.repo.CountItems(ctx, testUserID, bucket)
}

func (a *localAPI) GetCandidates(ctx context.Context, targetItemID string) ([]domain.UserItemRating, error) {
	res, err := a.candidates.Execute(ctx, command.GetCandidatesRequest{UserID: testUserID, TargetItemID: targetItemID})
	return res.Candidates, err
}

func (a *localAPI) SubmitVote(ctx context.Context, winnerItemID, loserItemID string) (domain.CommitResult, error) {
	return a.vote.Execute(ctx, command.SubmitVoteRequest{
		UserID:       testUserID,
		WinnerItemID: winnerItemID,
		LoserItemID:  loserItemID,
	})
}

func (a *localAPI) ListRankings(
	ctx context.Context, desc bool, bucket *domain.SentimentBucket,
) ([]domain.UserItemRating, error) {
	return a.rankings.Execute(ctx, command.ListRankingsRequest{
		UserID:  testUserID,
		Options: domain.RankingOptions{Desc: desc, Bucket: bucket},
	})
}

func (a *localAPI) SetItemSentiment(
	ctx context.Context, itemID string, bucket domain.SentimentBucket,
) (*domain.UserItemRating, error) {
	rating, err := a.sentiment.Execute(ctx, command.SetItemSentimentRequest{
		UserID: testUserID,
		ItemID: itemID,
		Bucket: bucket,
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func callTool(
	t *testing.T,
	handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error),
	args map[string]any,
) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, result.IsError
}

func TestServer_ComparisonRound(t *testing.T) {
	s := NewServer(newLocalAPI(), session.DefaultConfig())

	for n := 1; n <= 3; n++ {
		text, isErr := callTool(t, s.handleLogItemSentiment, map[string]any{
			"item_id": itemID(n),
			"bucket":  "liked",
		})
		require.False(t, isErr, text)
		assert.Contains(t, text, "rating 1500")
	}

	text, isErr := callTool(t, s.handleCountItems, map[string]any{"bucket": "liked"})
	require.False(t, isErr)
	assert.Equal(t, "3 set(s)", text)

	text, isErr = callTool(t, s.handleOpenComparison, map[string]any{
		"item_id": itemID(1),
		"bucket":  "liked",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, `"state": "presenting"`)

	text, isErr = callTool(t, s.handleVote, map[string]any{"winner": "target"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Vote recorded.")

	text, isErr = callTool(t, s.handleVote, map[string]any{"winner": "target"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Round complete.")
	assert.Contains(t, text, `"redirect": "rankings"`)

	text, isErr = callTool(t, s.handleVote, map[string]any{"winner": "target"})
	assert.True(t, isErr)
	assert.Contains(t, text, "open_comparison")

	text, isErr = callTool(t, s.handleListRankings, map[string]any{"sort": "desc"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Found 3 set(s)")
}

func TestServer_ToolArgumentErrors(t *testing.T) {
	s := NewServer(newLocalAPI(), session.DefaultConfig())

	cases := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args    map[string]any
	}{
		{name: "log_missing_item", handler: s.handleLogItemSentiment, args: map[string]any{"bucket": "liked"}},
		{name: "log_bad_bucket", handler: s.handleLogItemSentiment, args: map[string]any{"item_id": itemID(1), "bucket": "meh"}},
		{name: "log_malformed_id", handler: s.handleLogItemSentiment, args: map[string]any{"item_id": "abc", "bucket": "liked"}},
		{name: "open_missing_bucket", handler: s.handleOpenComparison, args: map[string]any{"item_id": itemID(1)}},
		{name: "vote_missing_winner", handler: s.handleVote, args: map[string]any{}},
		{name: "vote_bad_winner", handler: s.handleVote, args: map[string]any{"winner": "both"}},
		{name: "rankings_bad_sort", handler: s.handleListRankings, args: map[string]any{"sort": "sideways"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, isErr := callTool(t, tc.handler, tc.args)
			assert.True(t, isErr)
		})
	}
}

func TestServer_OpenWithoutEnoughItems(t *testing.T) {
	s := NewServer(newLocalAPI(), session.DefaultConfig())

	text, isErr := callTool(t, s.handleOpenComparison, map[string]any{
		"item_id": itemID(1),
		"bucket":  "liked",
	})
	assert.False(t, isErr)
	assert.Contains(t, text, "Not enough sets")
	assert.Contains(t, text, `"redirect": "results"`)
}
