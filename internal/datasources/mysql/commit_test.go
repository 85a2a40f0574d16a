package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jbeshir/set-ranker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockPairPattern         = `SELECT (.+) FROM user_item_ratings WHERE (.+) FOR UPDATE`
	findPairPattern         = `SELECT (.+) FROM comparisons WHERE`
	getRatingPattern        = `SELECT (.+) FROM user_item_ratings WHERE`
	insertComparisonPattern = `INSERT INTO comparisons`
	saveRatingPattern       = `INSERT INTO user_item_ratings`
)

var comparisonColumns = []string{"id", "user_id", "winner_item_id", "loser_item_id", "created_at"}

var commitTime = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	repo := New(db)
	repo.clock = func() time.Time { return commitTime }
	return repo, mock
}

func ratingRows(ratings ...domain.UserItemRating) *sqlmock.Rows {
	rows := sqlmock.NewRows(ratingColumns)
	for _, r := range ratings {
		rows.AddRow(r.UserID, r.ItemID, r.EloRating, string(r.Bucket), r.ComparisonCount, r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func storedRating(n, elo int, bucket domain.SentimentBucket) domain.UserItemRating {
	created := commitTime.Add(-time.Hour)
	return domain.UserItemRating{
		UserID:    testUserID,
		ItemID:    itemID(n),
		EloRating: elo,
		Bucket:    bucket,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestRepository_CommitComparison_Unit(t *testing.T) {
	ctx := context.Background()
	low, high := domain.PairKey(itemID(2), itemID(1))

	t.Run("records_and_updates", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).
			WithArgs(testUserID, itemID(2), itemID(1)).
			WillReturnRows(ratingRows(
				storedRating(1, 1500, domain.BucketLiked),
				storedRating(2, 1500, domain.BucketLiked),
			))
		mock.ExpectQuery(findPairPattern).
			WithArgs(testUserID, low, high).
			WillReturnRows(sqlmock.NewRows(comparisonColumns))
		mock.ExpectExec(insertComparisonPattern).
			WithArgs(sqlmock.AnyArg(), testUserID, itemID(2), itemID(1), low, high, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(saveRatingPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(saveRatingPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
		require.NoError(t, err)
		assert.False(t, result.AlreadyRecorded)
		assert.NotEmpty(t, result.Record.ID)
		assert.Equal(t, itemID(2), result.Record.WinnerItemID)
		assert.Equal(t, 1516, result.Winner.EloRating)
		assert.Equal(t, 1484, result.Loser.EloRating)
		assert.Equal(t, 1, result.Winner.ComparisonCount)
		assert.Equal(t, 1, result.Loser.ComparisonCount)
		assert.Equal(t, commitTime, result.Winner.UpdatedAt)
	})

	t.Run("missing_loser_created_in_winner_bucket", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).
			WillReturnRows(ratingRows(storedRating(2, 1600, domain.BucketNeutral)))
		mock.ExpectQuery(findPairPattern).WillReturnRows(sqlmock.NewRows(comparisonColumns))
		mock.ExpectExec(insertComparisonPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(saveRatingPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(saveRatingPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
		require.NoError(t, err)
		assert.Equal(t, domain.BucketNeutral, result.Loser.Bucket)
		assert.Equal(t, commitTime, result.Loser.CreatedAt)
		assert.Less(t, result.Loser.EloRating, domain.DefaultEloRating)
	})

	t.Run("repeat_pair_is_not_applied", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		earlier := commitTime.Add(-time.Minute)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).
			WillReturnRows(ratingRows(
				storedRating(1, 1484, domain.BucketLiked),
				storedRating(2, 1516, domain.BucketLiked),
			))
		mock.ExpectQuery(findPairPattern).
			WithArgs(testUserID, low, high).
			WillReturnRows(sqlmock.NewRows(comparisonColumns).
				AddRow("cmp-1", testUserID, itemID(1), itemID(2), earlier))
		mock.ExpectRollback()

		result, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
		require.NoError(t, err)
		assert.True(t, result.AlreadyRecorded)
		assert.Equal(t, "cmp-1", result.Record.ID)
		assert.Equal(t, 1516, result.Winner.EloRating)
		assert.Equal(t, 1484, result.Loser.EloRating)
	})

	t.Run("duplicate_insert_reads_committed_record", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).
			WillReturnRows(ratingRows(
				storedRating(1, 1500, domain.BucketLiked),
				storedRating(2, 1500, domain.BucketLiked),
			))
		mock.ExpectQuery(findPairPattern).WillReturnRows(sqlmock.NewRows(comparisonColumns))
		mock.ExpectExec(insertComparisonPattern).
			WillReturnError(&mysqldriver.MySQLError{Number: errCodeDuplicateEntry, Message: "Duplicate entry"})
		mock.ExpectRollback()
		mock.ExpectQuery(findPairPattern).
			WithArgs(testUserID, low, high).
			WillReturnRows(sqlmock.NewRows(comparisonColumns).
				AddRow("cmp-2", testUserID, itemID(1), itemID(2), commitTime))
		mock.ExpectQuery(getRatingPattern).
			WithArgs(testUserID, itemID(2)).
			WillReturnRows(ratingRows(storedRating(2, 1484, domain.BucketLiked)))
		mock.ExpectQuery(getRatingPattern).
			WithArgs(testUserID, itemID(1)).
			WillReturnRows(ratingRows(storedRating(1, 1516, domain.BucketLiked)))

		result, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
		require.NoError(t, err)
		assert.True(t, result.AlreadyRecorded)
		assert.Equal(t, "cmp-2", result.Record.ID)
		assert.Equal(t, 1484, result.Winner.EloRating)
	})

	t.Run("deadlock_is_retried", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).
			WillReturnError(&mysqldriver.MySQLError{Number: errCodeDeadlock, Message: "Deadlock found"})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).
			WillReturnRows(ratingRows(
				storedRating(1, 1500, domain.BucketLiked),
				storedRating(2, 1500, domain.BucketLiked),
			))
		mock.ExpectQuery(findPairPattern).WillReturnRows(sqlmock.NewRows(comparisonColumns))
		mock.ExpectExec(insertComparisonPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(saveRatingPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(saveRatingPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		result, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
		require.NoError(t, err)
		assert.Equal(t, 1516, result.Winner.EloRating)
	})

	t.Run("neither_item_logged", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(lockPairPattern).WillReturnRows(ratingRows())
		mock.ExpectRollback()

		_, err := repo.CommitComparison(ctx, testUserID, itemID(2), itemID(1), eloUpdate)
		assert.ErrorIs(t, err, domain.ErrPreconditionUnmet)
	})
}

func TestResolvePair(t *testing.T) {
	liked1 := storedRating(1, 1520, domain.BucketLiked)
	liked2 := storedRating(2, 1480, domain.BucketLiked)
	disliked2 := storedRating(2, 1480, domain.BucketDisliked)

	cases := []struct {
		name       string
		winner     *domain.UserItemRating
		loser      *domain.UserItemRating
		wantErr    error
		wantWinner domain.UserItemRating
		wantLoser  domain.UserItemRating
	}{
		{
			name:       "both_present",
			winner:     &liked1,
			loser:      &liked2,
			wantWinner: liked1,
			wantLoser:  liked2,
		},
		{
			name:       "winner_missing",
			loser:      &liked2,
			wantWinner: domain.NewUserItemRating(testUserID, itemID(1), domain.BucketLiked, commitTime),
			wantLoser:  liked2,
		},
		{
			name:       "loser_missing",
			winner:     &liked1,
			wantWinner: liked1,
			wantLoser:  domain.NewUserItemRating(testUserID, itemID(2), domain.BucketLiked, commitTime),
		},
		{
			name:    "both_missing",
			wantErr: domain.ErrPreconditionUnmet,
		},
		{
			name:    "bucket_mismatch",
			winner:  &liked1,
			loser:   &disliked2,
			wantErr: domain.ErrBucketMismatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			winner, loser, err := resolvePair(testUserID, itemID(1), itemID(2), tc.winner, tc.loser, commitTime)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantWinner, winner)
			assert.Equal(t, tc.wantLoser, loser)
		})
	}
}

func TestIsRetryableTxError(t *testing.T) {
	assert.True(t, isRetryableTxError(&mysqldriver.MySQLError{Number: errCodeDeadlock}))
	assert.True(t, isRetryableTxError(&mysqldriver.MySQLError{Number: errCodeLockWaitTimeout}))
	assert.False(t, isRetryableTxError(&mysqldriver.MySQLError{Number: errCodeDuplicateEntry}))
	assert.True(t, isDuplicateEntry(&mysqldriver.MySQLError{Number: errCodeDuplicateEntry}))
	assert.False(t, isDuplicateEntry(context.Canceled))
}
