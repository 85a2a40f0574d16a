package domain

import (
	"errors"
	"math"
)

var ErrInvalidKFactor = errors.New("k-factor must be positive")

// EloConfig parameterises rating updates. A zero MaxRating leaves ratings
// unbounded above.
type EloConfig struct {
	KFactor   int
	MinRating int
	MaxRating int
}

// DefaultEloConfig returns K=32 with ratings floored at zero.
func DefaultEloConfig() EloConfig {
	return EloConfig{
		KFactor:   32,
		MinRating: 0,
		MaxRating: 0,
	}
}

func (c EloConfig) Validate() error {
	if c.KFactor <= 0 {
		return ErrInvalidKFactor
	}
	if c.MaxRating != 0 && c.MaxRating <= c.MinRating {
		return errors.New("max rating must be greater than min rating")
	}
	return nil
}

// ExpectedScore is the probability that a player rated a beats one rated b.
func ExpectedScore(a, b int) float64 {
	return 1.0 / (1.0 + math.Pow(10.0, float64(b-a)/400.0))
}

// Update returns the ratings after winner beats loser. Results are rounded
// to the nearest integer, so repeated updates are not exactly reversible.
func (c EloConfig) Update(winner, loser int) (newWinner, newLoser int) {
	k := float64(c.KFactor)

	w := math.Round(float64(winner) + k*(1-ExpectedScore(winner, loser)))
	l := math.Round(float64(loser) + k*(0-ExpectedScore(loser, winner)))

	return c.clamp(int(w)), c.clamp(int(l))
}

func (c EloConfig) clamp(rating int) int {
	if rating < c.MinRating {
		return c.MinRating
	}
	if c.MaxRating != 0 && rating > c.MaxRating {
		return c.MaxRating
	}
	return rating
}
