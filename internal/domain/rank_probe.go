package domain

import "math"

// rankProbeFractions are the positions probed in a ranked list, in order:
// top, bottom, median, 25th percentile, 75th percentile. Probing these first
// places a new item roughly the way a binary search would.
var rankProbeFractions = []float64{0, 1, 0.5, 0.25, 0.75}

// PickRankProbes selects up to limit items from ranked (best first) at the
// probe positions. Small lists collapse several probes onto the same item;
// duplicates are dropped keeping first-seen order.
func PickRankProbes[T any](ranked []T, limit int) []T {
	n := len(ranked)
	if n == 0 || limit <= 0 {
		return nil
	}

	seen := make(map[int]bool, len(rankProbeFractions))
	picked := make([]T, 0, min(limit, len(rankProbeFractions)))
	for _, f := range rankProbeFractions {
		if len(picked) == limit {
			break
		}

		idx := int(math.Floor(f * float64(n)))
		if idx > n-1 {
			idx = n - 1
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		picked = append(picked, ranked[idx])
	}

	return picked
}
