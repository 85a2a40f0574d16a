package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

type GetCandidatesRequest struct {
	UserID       string
	TargetItemID string
	ExcludeIDs   []string
}

type GetCandidatesResult struct {
	Target     domain.UserItemRating   `json:"rating"`
	Candidates []domain.UserItemRating `json:"candidates"`
}

// GetCandidates looks up the target's bucket and selects candidates from it.
type GetCandidates struct {
	RatingGetter datasources.ItemRatingGetter
	Selector     Command[SelectCandidatesRequest, []domain.UserItemRating]
}

func NewGetCandidates(
	ratingGetter datasources.ItemRatingGetter,
	selector Command[SelectCandidatesRequest, []domain.UserItemRating],
) *GetCandidates {
	return &GetCandidates{
		RatingGetter: ratingGetter,
		Selector:     selector,
	}
}

func (c *GetCandidates) Execute(ctx context.Context, req GetCandidatesRequest) (GetCandidatesResult, error) {
	if err := domain.ValidateItemID(req.TargetItemID); err != nil {
		return GetCandidatesResult{}, err
	}
	for _, id := range req.ExcludeIDs {
		if err := domain.ValidateItemID(id); err != nil {
			return GetCandidatesResult{}, err
		}
	}

	target, err := c.RatingGetter.GetItemRating(ctx, req.UserID, req.TargetItemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		return GetCandidatesResult{}, err
	}
	if err != nil {
		return GetCandidatesResult{}, &domain.PersistenceError{Op: "reading target rating", Err: err}
	}

	candidates, err := c.Selector.Execute(ctx, SelectCandidatesRequest{
		UserID:       req.UserID,
		TargetItemID: req.TargetItemID,
		Bucket:       target.Bucket,
		ExcludeIDs:   req.ExcludeIDs,
	})
	if err != nil {
		return GetCandidatesResult{}, fmt.Errorf("selecting candidates: %w", err)
	}

	return GetCandidatesResult{Target: target, Candidates: candidates}, nil
}
