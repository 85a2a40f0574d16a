package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

var _ datasources.RatingRepository = (*Repository)(nil)

const maxCommitAttempts = 3

var ratingColumns = []string{
	"user_id",
	"item_id",
	"elo_rating",
	"sentiment_bucket",
	"comparison_count",
	"created_at",
	"updated_at",
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repository struct {
	db    *sql.DB
	clock func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, clock: time.Now}
}

func (r *Repository) now() time.Time {
	return r.clock().UTC().Truncate(time.Microsecond)
}

func (r *Repository) GetItemRating(ctx context.Context, userID, itemID string) (domain.UserItemRating, error) {
	return getRating(ctx, r.db, userID, itemID)
}

// setSentimentQuery inserts a fresh rating row, or moves an existing row to the
// requested bucket. Assignments run left to right, so the IF() checks see the
// old bucket; a bucket change resets the rating.
const setSentimentQuery = `
INSERT INTO user_item_ratings
	(user_id, item_id, elo_rating, sentiment_bucket, comparison_count, created_at, updated_at)
VALUES (?, ?, ?, ?, 0, ?, ?)
ON DUPLICATE KEY UPDATE
	elo_rating = IF(sentiment_bucket = VALUES(sentiment_bucket), elo_rating, VALUES(elo_rating)),
	updated_at = IF(sentiment_bucket = VALUES(sentiment_bucket), updated_at, VALUES(updated_at)),
	sentiment_bucket = VALUES(sentiment_bucket)`

func (r *Repository) SetItemSentiment(
	ctx context.Context,
	userID, itemID string,
	bucket domain.SentimentBucket,
) (domain.UserItemRating, error) {
	now := r.now()
	if _, err := r.db.ExecContext(ctx, setSentimentQuery,
		userID, itemID, domain.DefaultEloRating, string(bucket), now, now,
	); err != nil {
		return domain.UserItemRating{}, fmt.Errorf("upserting item sentiment: %w", err)
	}

	return getRating(ctx, r.db, userID, itemID)
}

func (r *Repository) ListBucketRatings(
	ctx context.Context,
	userID string,
	bucket domain.SentimentBucket,
	excludeIDs []string,
) ([]domain.UserItemRating, error) {
	sb := sqlbuilder.Select(ratingColumns...)
	sb.From("user_item_ratings")
	sb.Where(bucketConditions(sb, userID, &bucket, excludeIDs)...)
	sb.OrderBy("elo_rating DESC", "updated_at DESC", "item_id ASC")

	query, args := sb.Build()
	ratings, err := queryRatings(ctx, r.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing bucket ratings: %w", err)
	}
	return ratings, nil
}

func (r *Repository) ListRandomBucketRatings(
	ctx context.Context,
	userID string,
	bucket domain.SentimentBucket,
	excludeIDs []string,
	limit int,
) ([]domain.UserItemRating, error) {
	sb := sqlbuilder.Select(ratingColumns...)
	sb.From("user_item_ratings")
	sb.Where(bucketConditions(sb, userID, &bucket, excludeIDs)...)
	sb.OrderBy("RAND()")
	sb.Limit(limit)

	query, args := sb.Build()
	ratings, err := queryRatings(ctx, r.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing random bucket ratings: %w", err)
	}
	return ratings, nil
}

func (r *Repository) ListComparedItemIDs(ctx context.Context, userID, itemID string) ([]string, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(fmt.Sprintf(
		"CASE WHEN winner_item_id = %s THEN loser_item_id ELSE winner_item_id END",
		sb.Var(itemID),
	))
	sb.From("comparisons")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Or(sb.Equal("winner_item_id", itemID), sb.Equal("loser_item_id", itemID)),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying compared items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning compared item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating compared items: %w", err)
	}
	return ids, nil
}

func (r *Repository) CountItems(ctx context.Context, userID string, bucket *domain.SentimentBucket) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("user_item_ratings")
	sb.Where(bucketConditions(sb, userID, bucket, nil)...)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return count, nil
}

func (r *Repository) ListRankings(
	ctx context.Context,
	userID string,
	options domain.RankingOptions,
) ([]domain.UserItemRating, error) {
	sb := sqlbuilder.Select(ratingColumns...)
	sb.From("user_item_ratings")
	sb.Where(bucketConditions(sb, userID, options.Bucket, nil)...)
	if options.Desc {
		sb.OrderBy("elo_rating DESC", "updated_at DESC", "item_id ASC")
	} else {
		sb.OrderBy("elo_rating ASC", "updated_at ASC", "item_id ASC")
	}

	query, args := sb.Build()
	ratings, err := queryRatings(ctx, r.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("listing rankings: %w", err)
	}
	return ratings, nil
}

func (r *Repository) CommitComparison(
	ctx context.Context,
	userID, winnerID, loserID string,
	update datasources.RatingUpdateFunc,
) (domain.CommitResult, error) {
	var lastErr error
	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		result, err := r.commitComparisonOnce(ctx, userID, winnerID, loserID, update)
		if err == nil || !isRetryableTxError(err) {
			return result, err
		}
		lastErr = err
		domain.LoggerFromContext(ctx).WarnContext(ctx, "Retrying comparison commit",
			"attempt", attempt,
			"error", err)
	}
	return domain.CommitResult{}, lastErr
}

func (r *Repository) commitComparisonOnce(
	ctx context.Context,
	userID, winnerID, loserID string,
	update datasources.RatingUpdateFunc,
) (domain.CommitResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.CommitResult{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	lockedWinner, lockedLoser, err := lockPair(ctx, tx, userID, winnerID, loserID)
	if err != nil {
		return domain.CommitResult{}, err
	}

	now := r.now()
	winner, loser, err := resolvePair(userID, winnerID, loserID, lockedWinner, lockedLoser, now)
	if err != nil {
		return domain.CommitResult{}, err
	}

	low, high := domain.PairKey(winnerID, loserID)
	existing, err := findPairRecord(ctx, tx, userID, low, high)
	if err != nil {
		return domain.CommitResult{}, err
	}
	if existing != nil {
		return domain.CommitResult{Record: *existing, Winner: winner, Loser: loser, AlreadyRecorded: true}, nil
	}

	record := domain.ComparisonRecord{
		ID:           domain.NewComparisonID(),
		UserID:       userID,
		WinnerItemID: winnerID,
		LoserItemID:  loserID,
		CreatedAt:    now,
	}
	ib := sqlbuilder.InsertInto("comparisons")
	ib.Cols("id", "user_id", "winner_item_id", "loser_item_id", "pair_low", "pair_high", "created_at")
	ib.Values(record.ID, userID, winnerID, loserID, low, high, now)
	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateEntry(err) {
			// Lost a race with a concurrent commit of the same pair.
			_ = tx.Rollback()
			return r.alreadyRecorded(ctx, userID, winnerID, loserID)
		}
		return domain.CommitResult{}, fmt.Errorf("inserting comparison: %w", err)
	}

	winner.EloRating, loser.EloRating = update(winner, loser)
	for _, rating := range []*domain.UserItemRating{&winner, &loser} {
		rating.ComparisonCount++
		rating.UpdatedAt = now
		if err := saveRating(ctx, tx, *rating); err != nil {
			return domain.CommitResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.CommitResult{}, fmt.Errorf("committing comparison: %w", err)
	}

	return domain.CommitResult{Record: record, Winner: winner, Loser: loser}, nil
}

func (r *Repository) alreadyRecorded(
	ctx context.Context,
	userID, winnerID, loserID string,
) (domain.CommitResult, error) {
	low, high := domain.PairKey(winnerID, loserID)
	record, err := findPairRecord(ctx, r.db, userID, low, high)
	if err != nil {
		return domain.CommitResult{}, err
	}
	if record == nil {
		return domain.CommitResult{}, fmt.Errorf("comparison for pair %s/%s vanished after duplicate insert", low, high)
	}
	winner, err := getRating(ctx, r.db, userID, winnerID)
	if err != nil {
		return domain.CommitResult{}, err
	}
	loser, err := getRating(ctx, r.db, userID, loserID)
	if err != nil {
		return domain.CommitResult{}, err
	}
	return domain.CommitResult{Record: *record, Winner: winner, Loser: loser, AlreadyRecorded: true}, nil
}

func (r *Repository) ListComparisons(
	ctx context.Context,
	userID string,
	page, pageSize int,
) ([]domain.ComparisonRecord, error) {
	if page < 1 {
		page = 1
	}
	sb := sqlbuilder.Select("id", "user_id", "winner_item_id", "loser_item_id", "created_at")
	sb.From("comparisons")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC", "id ASC")
	sb.Limit(pageSize)
	sb.Offset((page - 1) * pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying comparisons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.ComparisonRecord{}
	for rows.Next() {
		var record domain.ComparisonRecord
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.WinnerItemID, &record.LoserItemID, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning comparison: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comparisons: %w", err)
	}
	return records, nil
}

// lockPair reads both rows FOR UPDATE in item id order. Missing rows come back as nil.
func lockPair(
	ctx context.Context,
	tx *sql.Tx,
	userID, winnerID, loserID string,
) (*domain.UserItemRating, *domain.UserItemRating, error) {
	sb := sqlbuilder.Select(ratingColumns...)
	sb.From("user_item_ratings")
	sb.Where(sb.Equal("user_id", userID), sb.In("item_id", winnerID, loserID))
	sb.OrderBy("item_id ASC")
	sb.ForUpdate()

	query, args := sb.Build()
	ratings, err := queryRatings(ctx, tx, query, args)
	if err != nil {
		return nil, nil, fmt.Errorf("locking ratings: %w", err)
	}

	var winner, loser *domain.UserItemRating
	for i := range ratings {
		switch ratings[i].ItemID {
		case winnerID:
			winner = &ratings[i]
		case loserID:
			loser = &ratings[i]
		}
	}
	return winner, loser, nil
}

// resolvePair creates whichever row is missing in the bucket of the other one.
func resolvePair(
	userID, winnerID, loserID string,
	winner, loser *domain.UserItemRating,
	now time.Time,
) (domain.UserItemRating, domain.UserItemRating, error) {
	switch {
	case winner == nil && loser == nil:
		return domain.UserItemRating{}, domain.UserItemRating{}, fmt.Errorf(
			"neither %s nor %s has a logged sentiment: %w", winnerID, loserID, domain.ErrPreconditionUnmet)
	case winner == nil:
		created := domain.NewUserItemRating(userID, winnerID, loser.Bucket, now)
		winner = &created
	case loser == nil:
		created := domain.NewUserItemRating(userID, loserID, winner.Bucket, now)
		loser = &created
	}
	if winner.Bucket != loser.Bucket {
		return domain.UserItemRating{}, domain.UserItemRating{}, fmt.Errorf(
			"%s is %s but %s is %s: %w",
			winnerID, winner.Bucket, loserID, loser.Bucket, domain.ErrBucketMismatch)
	}
	return *winner, *loser, nil
}

func findPairRecord(ctx context.Context, q queryer, userID, low, high string) (*domain.ComparisonRecord, error) {
	sb := sqlbuilder.Select("id", "user_id", "winner_item_id", "loser_item_id", "created_at")
	sb.From("comparisons")
	sb.Where(sb.Equal("user_id", userID), sb.Equal("pair_low", low), sb.Equal("pair_high", high))

	query, args := sb.Build()
	var record domain.ComparisonRecord
	err := q.QueryRowContext(ctx, query, args...).Scan(
		&record.ID, &record.UserID, &record.WinnerItemID, &record.LoserItemID, &record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying pair record: %w", err)
	}
	return &record, nil
}

const saveRatingQuery = `
INSERT INTO user_item_ratings
	(user_id, item_id, elo_rating, sentiment_bucket, comparison_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
	elo_rating = VALUES(elo_rating),
	comparison_count = VALUES(comparison_count),
	updated_at = VALUES(updated_at)`

func saveRating(ctx context.Context, q queryer, rating domain.UserItemRating) error {
	_, err := q.ExecContext(ctx, saveRatingQuery,
		rating.UserID,
		rating.ItemID,
		rating.EloRating,
		string(rating.Bucket),
		rating.ComparisonCount,
		rating.CreatedAt,
		rating.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving rating for %s: %w", rating.ItemID, err)
	}
	return nil
}

func getRating(ctx context.Context, q queryer, userID, itemID string) (domain.UserItemRating, error) {
	sb := sqlbuilder.Select(ratingColumns...)
	sb.From("user_item_ratings")
	sb.Where(sb.Equal("user_id", userID), sb.Equal("item_id", itemID))

	query, args := sb.Build()
	rating, err := scanRating(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserItemRating{}, fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotFound)
	}
	if err != nil {
		return domain.UserItemRating{}, fmt.Errorf("querying item rating: %w", err)
	}
	return rating, nil
}

func bucketConditions(
	sb *sqlbuilder.SelectBuilder,
	userID string,
	bucket *domain.SentimentBucket,
	excludeIDs []string,
) []string {
	conds := []string{sb.Equal("user_id", userID)}
	if bucket != nil {
		conds = append(conds, sb.Equal("sentiment_bucket", string(*bucket)))
	}
	if len(excludeIDs) > 0 {
		conds = append(conds, sb.NotIn("item_id", sqlbuilder.Flatten(excludeIDs)...))
	}
	return conds
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRating(row rowScanner) (domain.UserItemRating, error) {
	var (
		rating domain.UserItemRating
		bucket string
	)
	err := row.Scan(
		&rating.UserID,
		&rating.ItemID,
		&rating.EloRating,
		&bucket,
		&rating.ComparisonCount,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	rating.Bucket = domain.SentimentBucket(bucket)
	return rating, err
}

func queryRatings(ctx context.Context, q queryer, query string, args []any) ([]domain.UserItemRating, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ratings := []domain.UserItemRating{}
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
