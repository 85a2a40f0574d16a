package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SentimentBucket is the coarse sentiment a user logged an item with.
// Comparisons only ever happen between items in the same bucket.
type SentimentBucket string

const (
	BucketLiked    SentimentBucket = "liked"
	BucketNeutral  SentimentBucket = "neutral"
	BucketDisliked SentimentBucket = "disliked"
)

var ValidSentimentBuckets = []SentimentBucket{
	BucketLiked,
	BucketNeutral,
	BucketDisliked,
}

func (b SentimentBucket) Valid() bool {
	switch b {
	case BucketLiked, BucketNeutral, BucketDisliked:
		return true
	default:
		return false
	}
}

// ParseSentimentBucket parses a bucket name, case-insensitively.
func ParseSentimentBucket(s string) (SentimentBucket, error) {
	b := SentimentBucket(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("%w: [%s]", ErrInvalidBucket, s)
	}
	return b, nil
}

// ValidateItemID checks that id is a canonical, lowercase UUID string.
func ValidateItemID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: [%s]", ErrMalformedID, id)
	}
	if parsed.String() != id {
		return fmt.Errorf("%w: [%s] is not in canonical form", ErrMalformedID, id)
	}
	return nil
}

// NewComparisonID generates the identifier for a new comparison record.
func NewComparisonID() string {
	return uuid.New().String()
}
