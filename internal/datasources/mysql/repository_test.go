package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "test-user-123"

func itemID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func eloUpdate(winner, loser domain.UserItemRating) (int, int) {
	return domain.DefaultEloConfig().Update(winner.EloRating, loser.EloRating)
}

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("skipping MySQL integration tests: MYSQL_URI not set")
	}

	ctx := context.Background()
	db, err := Connect(ctx, uri)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	t.Cleanup(func() {
		_, err := db.ExecContext(ctx, "DELETE FROM comparisons WHERE user_id = ?", testUserID)
		assert.NoError(t, err)
		_, err = db.ExecContext(ctx, "DELETE FROM user_item_ratings WHERE user_id = ?", testUserID)
		assert.NoError(t, err)
		assert.NoError(t, db.Close())
	})

	return db
}

func seed(t *testing.T, repo *Repository, bucket domain.SentimentBucket, ids ...int) {
	for _, n := range ids {
		_, err := repo.SetItemSentiment(context.Background(), testUserID, itemID(n), bucket)
		require.NoError(t, err)
	}
}

func TestRepository_SetItemSentiment(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	rating, err := repo.SetItemSentiment(ctx, testUserID, itemID(1), domain.BucketLiked)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEloRating, rating.EloRating)
	assert.Equal(t, domain.BucketLiked, rating.Bucket)

	seed(t, repo, domain.BucketLiked, 2)
	_, err = repo.CommitComparison(ctx, testUserID, itemID(1), itemID(2), eloUpdate)
	require.NoError(t, err)

	// Same bucket keeps the rating.
	rating, err = repo.SetItemSentiment(ctx, testUserID, itemID(1), domain.BucketLiked)
	require.NoError(t, err)
	assert.Equal(t, 1516, rating.EloRating)

	// Moving bucket resets it.
	rating, err = repo.SetItemSentiment(ctx, testUserID, itemID(1), domain.BucketDisliked)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEloRating, rating.EloRating)
	assert.Equal(t, domain.BucketDisliked, rating.Bucket)
}

func TestRepository_GetItemRating_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	_, err := repo.GetItemRating(context.Background(), testUserID, itemID(99))
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRepository_CommitComparison(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()
	seed(t, repo, domain.BucketLiked, 1, 2)
	seed(t, repo, domain.BucketNeutral, 3)

	result, err := repo.CommitComparison(ctx, testUserID, itemID(1), itemID(2), eloUpdate)
	require.NoError(t, err)
	assert.False(t, result.AlreadyRecorded)
	assert.Equal(t, 1516, result.Winner.EloRating)
	assert.Equal(t, 1484, result.Loser.EloRating)
	assert.Equal(t, 1, result.Winner.ComparisonCount)

	// Reversed pair is the same unordered pair.
	repeat, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
	require.NoError(t, err)
	assert.True(t, repeat.AlreadyRecorded)
	assert.Equal(t, result.Record.ID, repeat.Record.ID)

	winner, err := repo.GetItemRating(ctx, testUserID, itemID(1))
	require.NoError(t, err)
	assert.Equal(t, 1516, winner.EloRating)

	_, err = repo.CommitComparison(ctx, testUserID, itemID(1), itemID(3), eloUpdate)
	assert.ErrorIs(t, err, domain.ErrBucketMismatch)

	_, err = repo.CommitComparison(ctx, testUserID, itemID(50), itemID(51), eloUpdate)
	assert.ErrorIs(t, err, domain.ErrPreconditionUnmet)

	// A missing loser row is created in the winner's bucket.
	created, err := repo.CommitComparison(ctx, testUserID, itemID(1), itemID(4), eloUpdate)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketLiked, created.Loser.Bucket)
	assert.Equal(t, 1, created.Loser.ComparisonCount)

	ids, err := repo.ListComparedItemIDs(ctx, testUserID, itemID(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{itemID(2), itemID(4)}, ids)

	history, err := repo.ListComparisons(ctx, testUserID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRepository_CommitComparison_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()
	seed(t, repo, domain.BucketLiked, 1)
	for n := 2; n <= 11; n++ {
		seed(t, repo, domain.BucketLiked, n)
	}

	var wg sync.WaitGroup
	for n := 2; n <= 11; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.CommitComparison(ctx, testUserID, itemID(1), itemID(n), eloUpdate)
			assert.NoError(t, err)
		}(n)
	}
	wg.Wait()

	rating, err := repo.GetItemRating(ctx, testUserID, itemID(1))
	require.NoError(t, err)
	assert.Equal(t, 10, rating.ComparisonCount)
}

func TestRepository_ListsAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()
	seed(t, repo, domain.BucketLiked, 1, 2, 3)
	seed(t, repo, domain.BucketNeutral, 4)

	_, err := repo.CommitComparison(ctx, testUserID, itemID(3), itemID(1), eloUpdate)
	require.NoError(t, err)

	listed, err := repo.ListBucketRatings(ctx, testUserID, domain.BucketLiked, []string{itemID(2)})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, itemID(3), listed[0].ItemID)
	assert.Equal(t, itemID(1), listed[1].ItemID)

	random, err := repo.ListRandomBucketRatings(ctx, testUserID, domain.BucketLiked, nil, 2)
	require.NoError(t, err)
	assert.Len(t, random, 2)

	liked := domain.BucketLiked
	count, err := repo.CountItems(ctx, testUserID, &liked)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountItems(ctx, testUserID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	rankings, err := repo.ListRankings(ctx, testUserID, domain.RankingOptions{Desc: true})
	require.NoError(t, err)
	require.Len(t, rankings, 4)
	assert.Equal(t, itemID(3), rankings[0].ItemID)
	assert.Equal(t, itemID(1), rankings[3].ItemID)

	rankings, err = repo.ListRankings(ctx, testUserID, domain.RankingOptions{Desc: false, Bucket: &liked})
	require.NoError(t, err)
	require.Len(t, rankings, 3)
	assert.Equal(t, itemID(1), rankings[0].ItemID)
}
