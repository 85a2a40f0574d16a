package command

import (
	"context"
	"errors"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type SubmitVoteRequest struct {
	UserID       string
	WinnerItemID string
	LoserItemID  string
}

// SubmitVote records one pairwise vote and applies the Elo update to both
// items in a single commit.
type SubmitVote struct {
	Committer   datasources.ComparisonCommitter
	Invalidator datasources.RankingsCacheInvalidator
	Elo         domain.EloConfig
}

func NewSubmitVote(
	committer datasources.ComparisonCommitter,
	invalidator datasources.RankingsCacheInvalidator,
	elo domain.EloConfig,
) *SubmitVote {
	return &SubmitVote{
		Committer:   committer,
		Invalidator: invalidator,
		Elo:         elo,
	}
}

func (c *SubmitVote) Execute(ctx context.Context, req SubmitVoteRequest) (domain.CommitResult, error) {
	logger := domain.LoggerFromContext(ctx).With(
		"winner_item_id", req.WinnerItemID,
		"loser_item_id", req.LoserItemID)

	if err := domain.ValidateItemID(req.WinnerItemID); err != nil {
		return domain.CommitResult{}, err
	}
	if err := domain.ValidateItemID(req.LoserItemID); err != nil {
		return domain.CommitResult{}, err
	}
	if req.WinnerItemID == req.LoserItemID {
		return domain.CommitResult{}, domain.ErrSelfComparison
	}

	result, err := c.Committer.CommitComparison(ctx, req.UserID, req.WinnerItemID, req.LoserItemID,
		func(winner, loser domain.UserItemRating) (int, int) {
			return c.Elo.Update(winner.EloRating, loser.EloRating)
		})
	switch {
	case errors.Is(err, domain.ErrPreconditionUnmet), errors.Is(err, domain.ErrBucketMismatch):
		return domain.CommitResult{}, err
	case err != nil:
		return domain.CommitResult{}, &domain.PersistenceError{Op: "committing vote", Err: err}
	}

	if result.AlreadyRecorded {
		logger.InfoContext(ctx, "Pair already compared, vote not applied again",
			"comparison_id", result.Record.ID)
		return result, nil
	}

	logger.DebugContext(ctx, "Recorded vote",
		"comparison_id", result.Record.ID,
		"winner_rating", result.Winner.EloRating,
		"loser_rating", result.Loser.EloRating)

	if err := c.Invalidator.InvalidateUserRankings(ctx, req.UserID); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate cached rankings", "error", err)
	}

	return result, nil
}
