package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

// SelectCandidatesConfig bounds candidate selection.
type SelectCandidatesConfig struct {
	// MinPeers is the number of other same-bucket items required before any
	// candidates are offered.
	MinPeers int
	// Limit caps the number of candidates returned.
	Limit int
}

// SelectCandidatesRequest asks for comparison candidates for a target item.
// Bucket must be the target's current bucket.
type SelectCandidatesRequest struct {
	UserID       string
	TargetItemID string
	Bucket       domain.SentimentBucket
	ExcludeIDs   []string
}

// CandidateQuery is what each CandidateStrategy sees. ExcludeIDs already holds
// the target and every item compared against it.
type CandidateQuery struct {
	UserID     string
	Bucket     domain.SentimentBucket
	ExcludeIDs []string
	Limit      int
}

// CandidateStrategy is one step of the selection fallback chain.
type CandidateStrategy interface {
	Name() string
	SelectCandidates(ctx context.Context, query CandidateQuery) ([]domain.UserItemRating, error)
}

// RankProbeStrategy ranks the whole bucket and probes it at the top, bottom,
// median and quartile positions.
type RankProbeStrategy struct {
	Lister datasources.BucketRatingLister
}

func (s *RankProbeStrategy) Name() string { return "rank_probe" }

func (s *RankProbeStrategy) SelectCandidates(
	ctx context.Context,
	query CandidateQuery,
) ([]domain.UserItemRating, error) {
	ranked, err := s.Lister.ListBucketRatings(ctx, query.UserID, query.Bucket, query.ExcludeIDs)
	if err != nil {
		return nil, fmt.Errorf("listing bucket ratings: %w", err)
	}
	return domain.PickRankProbes(ranked, query.Limit), nil
}

// RandomSampleStrategy picks random same-bucket items.
type RandomSampleStrategy struct {
	Lister datasources.RandomBucketItemLister
}

func (s *RandomSampleStrategy) Name() string { return "random_sample" }

func (s *RandomSampleStrategy) SelectCandidates(
	ctx context.Context,
	query CandidateQuery,
) ([]domain.UserItemRating, error) {
	sample, err := s.Lister.ListRandomBucketRatings(ctx, query.UserID, query.Bucket, query.ExcludeIDs, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("sampling bucket ratings: %w", err)
	}
	return sample, nil
}

// SelectCandidates picks up to Limit same-bucket items the target has never
// been compared against. It returns an empty list when the target has too few
// peers or every strategy comes back empty, and domain.ErrSelectionFailure only
// when every strategy failed.
type SelectCandidates struct {
	RatingGetter   datasources.ItemRatingGetter
	Counter        datasources.ItemCounter
	ComparedLister datasources.ComparedItemsLister
	Strategies     []CandidateStrategy
	Config         SelectCandidatesConfig
}

// NewSelectCandidates builds the selector with the rank probe strategy
// falling back to random sampling.
func NewSelectCandidates(repo datasources.RatingRepository, config SelectCandidatesConfig) *SelectCandidates {
	return &SelectCandidates{
		RatingGetter:   repo,
		Counter:        repo,
		ComparedLister: repo,
		Strategies: []CandidateStrategy{
			&RankProbeStrategy{Lister: repo},
			&RandomSampleStrategy{Lister: repo},
		},
		Config: config,
	}
}

func (c *SelectCandidates) Execute(
	ctx context.Context,
	req SelectCandidatesRequest,
) ([]domain.UserItemRating, error) {
	logger := domain.LoggerFromContext(ctx).With("target_item_id", req.TargetItemID, "bucket", req.Bucket)

	var (
		target   domain.UserItemRating
		count    int64
		compared []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		target, err = c.RatingGetter.GetItemRating(gctx, req.UserID, req.TargetItemID)
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		var err error
		count, err = c.Counter.CountItems(gctx, req.UserID, &req.Bucket)
		return err
	})
	g.Go(func() error {
		var err error
		compared, err = c.ComparedLister.ListComparedItemIDs(gctx, req.UserID, req.TargetItemID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &domain.PersistenceError{Op: "checking candidate preconditions", Err: err}
	}

	if target.ItemID == "" || target.Bucket != req.Bucket {
		logger.DebugContext(ctx, "Target has no rating in bucket, no candidates")
		return []domain.UserItemRating{}, nil
	}
	if peers := count - 1; peers < int64(c.Config.MinPeers) {
		logger.DebugContext(ctx, "Not enough peers to compare against", "peers", peers)
		return []domain.UserItemRating{}, nil
	}

	query := CandidateQuery{
		UserID:     req.UserID,
		Bucket:     req.Bucket,
		ExcludeIDs: exclusionSet(req.TargetItemID, compared, req.ExcludeIDs),
		Limit:      c.Config.Limit,
	}

	var failures int
	for _, strategy := range c.Strategies {
		candidates, err := strategy.SelectCandidates(ctx, query)
		if err != nil {
			failures++
			logger.WarnContext(ctx, "Candidate strategy failed, falling back",
				"strategy", strategy.Name(),
				"error", err)
			continue
		}
		candidates = filterCandidates(candidates, query.ExcludeIDs, query.Limit)
		if len(candidates) > 0 {
			logger.DebugContext(ctx, "Selected candidates",
				"strategy", strategy.Name(),
				"count", len(candidates))
			return candidates, nil
		}
	}

	if failures > 0 && failures == len(c.Strategies) {
		return nil, domain.ErrSelectionFailure
	}
	return []domain.UserItemRating{}, nil
}

func exclusionSet(targetID string, groups ...[]string) []string {
	seen := map[string]struct{}{targetID: {}}
	ids := []string{targetID}
	for _, group := range groups {
		for _, id := range group {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// filterCandidates drops excluded and duplicate items a strategy may have let
// through, keeping order.
func filterCandidates(candidates []domain.UserItemRating, excludeIDs []string, limit int) []domain.UserItemRating {
	skip := make(map[string]struct{}, len(excludeIDs)+len(candidates))
	for _, id := range excludeIDs {
		skip[id] = struct{}{}
	}
	filtered := make([]domain.UserItemRating, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := skip[candidate.ItemID]; ok {
			continue
		}
		skip[candidate.ItemID] = struct{}{}
		filtered = append(filtered, candidate)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}
