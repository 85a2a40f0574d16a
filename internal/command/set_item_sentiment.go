package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type SetItemSentimentRequest struct {
	UserID string
	ItemID string
	Bucket domain.SentimentBucket
}

// SetItemSentiment logs an item into a sentiment bucket. A new item starts at
// the default rating; moving an item between buckets resets it.
type SetItemSentiment struct {
	Setter      datasources.ItemSentimentSetter
	Invalidator datasources.RankingsCacheInvalidator
}

func NewSetItemSentiment(
	setter datasources.ItemSentimentSetter,
	invalidator datasources.RankingsCacheInvalidator,
) *SetItemSentiment {
	return &SetItemSentiment{
		Setter:      setter,
		Invalidator: invalidator,
	}
}

func (c *SetItemSentiment) Execute(ctx context.Context, req SetItemSentimentRequest) (domain.UserItemRating, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := domain.ValidateItemID(req.ItemID); err != nil {
		return domain.UserItemRating{}, err
	}
	if !req.Bucket.Valid() {
		return domain.UserItemRating{}, fmt.Errorf("%q: %w", req.Bucket, domain.ErrInvalidBucket)
	}

	rating, err := c.Setter.SetItemSentiment(ctx, req.UserID, req.ItemID, req.Bucket)
	if err != nil {
		return domain.UserItemRating{}, &domain.PersistenceError{Op: "setting item sentiment", Err: err}
	}

	logger.DebugContext(ctx, "Set item sentiment",
		"item_id", req.ItemID,
		"bucket", req.Bucket,
		"elo_rating", rating.EloRating)

	if err := c.Invalidator.InvalidateUserRankings(ctx, req.UserID); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate cached rankings", "error", err)
	}

	return rating, nil
}
