package datasources

import (
	"context"

	"github.com/jbeshir/set-ranker/internal/domain"
)

// RatingRepository combines the rating store and comparison log operations.
type RatingRepository interface {
	ItemRatingGetter
	ItemSentimentSetter
	BucketRatingLister
	RandomBucketItemLister
	ComparedItemsLister
	ItemCounter
	RankingLister
	ComparisonCommitter
	ComparisonLister
}

// ItemRatingGetter reads a single rating row.
// Returns domain.ErrItemNotFound if the user has no rating for the item.
type ItemRatingGetter interface {
	GetItemRating(ctx context.Context, userID, itemID string) (domain.UserItemRating, error)
}

// ItemSentimentSetter places an item in a sentiment bucket, creating its rating
// row if needed. Moving an item to a different bucket resets its rating.
type ItemSentimentSetter interface {
	SetItemSentiment(
		ctx context.Context,
		userID, itemID string,
		bucket domain.SentimentBucket,
	) (domain.UserItemRating, error)
}

// BucketRatingLister lists every rating in a bucket not in excludeIDs, ordered
// by elo_rating descending, then most recently updated, then item id.
type BucketRatingLister interface {
	ListBucketRatings(
		ctx context.Context,
		userID string,
		bucket domain.SentimentBucket,
		excludeIDs []string,
	) ([]domain.UserItemRating, error)
}

// RandomBucketItemLister lists up to limit ratings from a bucket, excluding
// excludeIDs, in random order.
type RandomBucketItemLister interface {
	ListRandomBucketRatings(
		ctx context.Context,
		userID string,
		bucket domain.SentimentBucket,
		excludeIDs []string,
		limit int,
	) ([]domain.UserItemRating, error)
}

// ComparedItemsLister lists every item the user has ever compared itemID
// against, in either position.
type ComparedItemsLister interface {
	ListComparedItemIDs(ctx context.Context, userID, itemID string) ([]string, error)
}

// ItemCounter counts a user's rated items, optionally within one bucket.
type ItemCounter interface {
	CountItems(ctx context.Context, userID string, bucket *domain.SentimentBucket) (int64, error)
}

// RankingLister returns the user's ratings sorted by elo_rating. Ties break
// on updated_at (most recent first when descending) and then item id.
type RankingLister interface {
	ListRankings(ctx context.Context, userID string, options domain.RankingOptions) ([]domain.UserItemRating, error)
}

// RatingUpdateFunc computes the new (winner, loser) ratings from the current rows.
type RatingUpdateFunc func(winner, loser domain.UserItemRating) (newWinner, newLoser int)

// ComparisonCommitter atomically records a vote and applies its rating update.
//
// Both rating rows are read-or-created; a missing row takes the other row's
// bucket. If neither row exists domain.ErrPreconditionUnmet is returned, and if
// the rows are in different buckets domain.ErrBucketMismatch. If the unordered
// pair was already compared the existing record is returned with
// AlreadyRecorded set and nothing is changed. On any error no part of the
// write is visible.
type ComparisonCommitter interface {
	CommitComparison(
		ctx context.Context,
		userID, winnerID, loserID string,
		update RatingUpdateFunc,
	) (domain.CommitResult, error)
}

// ComparisonLister pages through the comparison log, newest first.
type ComparisonLister interface {
	ListComparisons(ctx context.Context, userID string, page, pageSize int) ([]domain.ComparisonRecord, error)
}
