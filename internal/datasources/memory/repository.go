// Package memory provides in-process implementations of the rating store and
// rankings cache. State is lost on restart.
package memory

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/domain"
)

var _ datasources.RatingRepository = (*Repository)(nil)

type ratingKey struct {
	userID string
	itemID string
}

type pairKey struct {
	userID    string
	low, high string
}

// Repository keeps ratings and the comparison log in maps. A single mutex
// serialises every write, so concurrent votes touching the same item cannot
// lose updates.
type Repository struct {
	mu          sync.Mutex
	ratings     map[ratingKey]domain.UserItemRating
	comparisons []domain.ComparisonRecord
	pairs       map[pairKey]int
	clock       func() time.Time
	rng         *rand.Rand
}

type Option func(*Repository)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(clock func() time.Time) Option {
	return func(r *Repository) {
		r.clock = clock
	}
}

// WithRand sets the random source used for random candidate sampling.
func WithRand(rng *rand.Rand) Option {
	return func(r *Repository) {
		r.rng = rng
	}
}

func New(opts ...Option) *Repository {
	r := &Repository{
		ratings: make(map[ratingKey]domain.UserItemRating),
		pairs:   make(map[pairKey]int),
		clock:   time.Now,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // sampling order only
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) GetItemRating(_ context.Context, userID, itemID string) (domain.UserItemRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rating, ok := r.ratings[ratingKey{userID, itemID}]
	if !ok {
		return domain.UserItemRating{}, domain.ErrItemNotFound
	}
	return rating, nil
}

func (r *Repository) SetItemSentiment(
	_ context.Context,
	userID, itemID string,
	bucket domain.SentimentBucket,
) (domain.UserItemRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	key := ratingKey{userID, itemID}

	rating, ok := r.ratings[key]
	switch {
	case !ok:
		rating = domain.NewUserItemRating(userID, itemID, bucket, now)
	case rating.Bucket != bucket:
		rating.Bucket = bucket
		rating.EloRating = domain.DefaultEloRating
		rating.UpdatedAt = now
	}

	r.ratings[key] = rating
	return rating, nil
}

func (r *Repository) ListBucketRatings(
	_ context.Context,
	userID string,
	bucket domain.SentimentBucket,
	excludeIDs []string,
) ([]domain.UserItemRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.filterLocked(userID, &bucket, excludeIDs)
	sortRatings(result, true)
	return result, nil
}

func (r *Repository) ListRandomBucketRatings(
	_ context.Context,
	userID string,
	bucket domain.SentimentBucket,
	excludeIDs []string,
	limit int,
) ([]domain.UserItemRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.filterLocked(userID, &bucket, excludeIDs)
	// Map iteration order is not a usable shuffle; sort first so the seeded
	// source fully determines the order.
	sortRatings(result, true)
	r.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *Repository) ListComparedItemIDs(_ context.Context, userID, itemID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for _, c := range r.comparisons {
		if c.UserID != userID {
			continue
		}
		if opponent := c.Opponent(itemID); opponent != "" {
			ids = append(ids, opponent)
		}
	}
	return ids, nil
}

func (r *Repository) CountItems(_ context.Context, userID string, bucket *domain.SentimentBucket) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.filterLocked(userID, bucket, nil))), nil
}

func (r *Repository) ListRankings(
	_ context.Context,
	userID string,
	options domain.RankingOptions,
) ([]domain.UserItemRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.filterLocked(userID, options.Bucket, nil)
	sortRatings(result, options.Desc)
	return result, nil
}

func (r *Repository) CommitComparison(
	_ context.Context,
	userID, winnerID, loserID string,
	update datasources.RatingUpdateFunc,
) (domain.CommitResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	winnerKey, loserKey := ratingKey{userID, winnerID}, ratingKey{userID, loserID}

	winner, winnerExists := r.ratings[winnerKey]
	loser, loserExists := r.ratings[loserKey]
	switch {
	case !winnerExists && !loserExists:
		return domain.CommitResult{}, domain.ErrPreconditionUnmet
	case !winnerExists:
		winner = domain.NewUserItemRating(userID, winnerID, loser.Bucket, now)
	case !loserExists:
		loser = domain.NewUserItemRating(userID, loserID, winner.Bucket, now)
	case winner.Bucket != loser.Bucket:
		return domain.CommitResult{}, domain.ErrBucketMismatch
	}

	low, high := domain.PairKey(winnerID, loserID)
	pk := pairKey{userID: userID, low: low, high: high}
	if idx, ok := r.pairs[pk]; ok {
		return domain.CommitResult{
			Record:          r.comparisons[idx],
			Winner:          winner,
			Loser:           loser,
			AlreadyRecorded: true,
		}, nil
	}

	record := domain.ComparisonRecord{
		ID:           domain.NewComparisonID(),
		UserID:       userID,
		WinnerItemID: winnerID,
		LoserItemID:  loserID,
		CreatedAt:    now,
	}

	winner.EloRating, loser.EloRating = update(winner, loser)
	winner.ComparisonCount++
	loser.ComparisonCount++
	winner.UpdatedAt = now
	loser.UpdatedAt = now

	r.comparisons = append(r.comparisons, record)
	r.pairs[pk] = len(r.comparisons) - 1
	r.ratings[winnerKey] = winner
	r.ratings[loserKey] = loser

	return domain.CommitResult{Record: record, Winner: winner, Loser: loser}, nil
}

func (r *Repository) ListComparisons(
	_ context.Context,
	userID string,
	page, pageSize int,
) ([]domain.ComparisonRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var userComparisons []domain.ComparisonRecord
	for i := len(r.comparisons) - 1; i >= 0; i-- {
		if r.comparisons[i].UserID == userID {
			userComparisons = append(userComparisons, r.comparisons[i])
		}
	}

	start := (page - 1) * pageSize
	if start >= len(userComparisons) {
		return []domain.ComparisonRecord{}, nil
	}
	end := min(start+pageSize, len(userComparisons))
	return userComparisons[start:end], nil
}

func (r *Repository) filterLocked(
	userID string,
	bucket *domain.SentimentBucket,
	excludeIDs []string,
) []domain.UserItemRating {
	result := []domain.UserItemRating{}
	for key, rating := range r.ratings {
		if key.userID != userID {
			continue
		}
		if bucket != nil && rating.Bucket != *bucket {
			continue
		}
		if slices.Contains(excludeIDs, key.itemID) {
			continue
		}
		result = append(result, rating)
	}
	return result
}

func sortRatings(ratings []domain.UserItemRating, desc bool) {
	slices.SortFunc(ratings, func(a, b domain.UserItemRating) int {
		if a.EloRating != b.EloRating {
			if desc {
				return b.EloRating - a.EloRating
			}
			return a.EloRating - b.EloRating
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			if desc {
				return b.UpdatedAt.Compare(a.UpdatedAt)
			}
			return a.UpdatedAt.Compare(b.UpdatedAt)
		}
		return strings.Compare(a.ItemID, b.ItemID)
	})
}
