package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultEloRating is the rating every (user, item) pair starts at.
const DefaultEloRating = 1500

// UserItemRating is a user's current standing for one logged item.
type UserItemRating struct {
	UserID          string          `json:"-"`
	ItemID          string          `json:"item_id"`
	EloRating       int             `json:"elo_rating"`
	Bucket          SentimentBucket `json:"sentiment_bucket"`
	ComparisonCount int             `json:"comparison_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewUserItemRating returns a rating row at the default rating.
func NewUserItemRating(userID, itemID string, bucket SentimentBucket, now time.Time) UserItemRating {
	return UserItemRating{
		UserID:    userID,
		ItemID:    itemID,
		EloRating: DefaultEloRating,
		Bucket:    bucket,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ComparisonRecord is one resolved vote. Records are append-only.
type ComparisonRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	WinnerItemID string    `json:"winner_item_id"`
	LoserItemID  string    `json:"loser_item_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// PairKey returns the unordered pair for two items, lowest id first.
func PairKey(a, b string) (low, high string) {
	if strings.Compare(a, b) <= 0 {
		return a, b
	}
	return b, a
}

// Opponent returns the other item in the record, or "" if itemID took no part.
func (r ComparisonRecord) Opponent(itemID string) string {
	switch itemID {
	case r.WinnerItemID:
		return r.LoserItemID
	case r.LoserItemID:
		return r.WinnerItemID
	default:
		return ""
	}
}

// CommitResult is the outcome of committing a vote.
type CommitResult struct {
	Record ComparisonRecord
	Winner UserItemRating
	Loser  UserItemRating

	// AlreadyRecorded is set when the pair had been compared before; no
	// ratings were changed and Record is the earlier comparison.
	AlreadyRecorded bool
}

// RankingOptions controls the rankings projection.
type RankingOptions struct {
	Desc   bool
	Bucket *SentimentBucket
}

// CacheKey identifies this projection for a single user.
func (o RankingOptions) CacheKey() string {
	sort := "asc"
	if o.Desc {
		sort = "desc"
	}
	bucket := "all"
	if o.Bucket != nil {
		bucket = string(*o.Bucket)
	}
	return sort + ":" + bucket
}

// ParseRankingSort parses "asc" or "desc"; empty means descending.
func ParseRankingSort(s string) (desc bool, err error) {
	switch strings.ToLower(s) {
	case "", "desc":
		return true, nil
	case "asc":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognised sort order: %s", s)
	}
}
