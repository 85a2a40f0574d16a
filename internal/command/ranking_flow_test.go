package command

import (
	"testing"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A new liked item is compared against five distinct rank probes, wins every
// time, climbs on each win and never meets the same opponent twice.
func TestRankingFlow_NewItemWinsEveryProbe(t *testing.T) {
	repo := newTestRepository()
	ctx := testContext()
	cache := datasources.NullRankingsCache{}

	setSentiment := NewSetItemSentiment(repo, cache)
	for n := 1; n <= 7; n++ {
		_, err := setSentiment.Execute(ctx, SetItemSentimentRequest{
			UserID: testUserID,
			ItemID: itemID(n),
			Bucket: domain.BucketLiked,
		})
		require.NoError(t, err)
	}
	newItem := itemID(7)

	getCandidates := NewGetCandidates(repo, NewSelectCandidates(repo, testSelectConfig()))
	vote := NewSubmitVote(repo, cache, domain.DefaultEloConfig())

	round, err := getCandidates.Execute(ctx, GetCandidatesRequest{UserID: testUserID, TargetItemID: newItem})
	require.NoError(t, err)
	require.Len(t, round.Candidates, 5)
	assert.NotContains(t, candidateIDs(round.Candidates), newItem)

	seen := map[string]bool{}
	previous := round.Target.EloRating
	for _, candidate := range round.Candidates {
		require.False(t, seen[candidate.ItemID], "duplicate candidate %s", candidate.ItemID)
		seen[candidate.ItemID] = true

		result, err := vote.Execute(ctx, SubmitVoteRequest{
			UserID:       testUserID,
			WinnerItemID: newItem,
			LoserItemID:  candidate.ItemID,
		})
		require.NoError(t, err)
		require.False(t, result.AlreadyRecorded)
		assert.Greater(t, result.Winner.EloRating, previous)
		previous = result.Winner.EloRating
	}

	// Only the one never-compared peer remains.
	round, err = getCandidates.Execute(ctx, GetCandidatesRequest{UserID: testUserID, TargetItemID: newItem})
	require.NoError(t, err)
	require.Len(t, round.Candidates, 1)
	assert.False(t, seen[round.Candidates[0].ItemID])

	_, err = vote.Execute(ctx, SubmitVoteRequest{
		UserID:       testUserID,
		WinnerItemID: round.Candidates[0].ItemID,
		LoserItemID:  newItem,
	})
	require.NoError(t, err)

	round, err = getCandidates.Execute(ctx, GetCandidatesRequest{UserID: testUserID, TargetItemID: newItem})
	require.NoError(t, err)
	assert.Empty(t, round.Candidates)

	rating, err := repo.GetItemRating(ctx, testUserID, newItem)
	require.NoError(t, err)
	assert.Equal(t, 6, rating.ComparisonCount)
}

func TestRankingFlow_RepeatedVoteIsIdempotent(t *testing.T) {
	repo := newTestRepository()
	ctx := testContext()
	seedBucket(t, repo, domain.BucketDisliked, 1, 2)

	vote := NewSubmitVote(repo, datasources.NullRankingsCache{}, domain.DefaultEloConfig())
	req := SubmitVoteRequest{UserID: testUserID, WinnerItemID: itemID(1), LoserItemID: itemID(2)}

	first, err := vote.Execute(ctx, req)
	require.NoError(t, err)
	second, err := vote.Execute(ctx, req)
	require.NoError(t, err)

	assert.True(t, second.AlreadyRecorded)
	assert.Equal(t, first.Winner.EloRating, second.Winner.EloRating)
	assert.Equal(t, first.Record.ID, second.Record.ID)

	history, err := repo.ListComparisons(ctx, testUserID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
