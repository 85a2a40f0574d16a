package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankedInts(n int) []int {
	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	return ranked
}

func TestPickRankProbes(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		limit int
		want  []int
	}{
		{name: "empty", n: 0, limit: 5, want: nil},
		{name: "zero_limit", n: 10, limit: 0, want: nil},
		{name: "single", n: 1, limit: 5, want: []int{0}},
		{name: "two", n: 2, limit: 5, want: []int{0, 1}},
		{name: "three", n: 3, limit: 5, want: []int{0, 2, 1}},
		{name: "four", n: 4, limit: 5, want: []int{0, 3, 2, 1}},
		{name: "five", n: 5, limit: 5, want: []int{0, 4, 2, 1, 3}},
		{name: "six", n: 6, limit: 5, want: []int{0, 5, 3, 1, 4}},
		{name: "hundred", n: 100, limit: 5, want: []int{0, 99, 50, 25, 75}},
		{name: "limit_truncates", n: 100, limit: 2, want: []int{0, 99}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PickRankProbes(rankedInts(tc.n), tc.limit))
		})
	}
}

func TestPickRankProbes_CoversMinOfFiveAndN(t *testing.T) {
	for n := 1; n <= 64; n++ {
		got := PickRankProbes(rankedInts(n), 5)
		assert.Len(t, got, min(5, n), "n=%d", n)

		seen := map[int]bool{}
		for _, idx := range got {
			assert.False(t, seen[idx], "duplicate probe %d for n=%d", idx, n)
			seen[idx] = true
		}
	}
}
