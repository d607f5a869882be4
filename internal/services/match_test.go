package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yungbote/eurojackpot-backend/internal/types"
)

func TestCountMatches(t *testing.T) {
	cases := []struct {
		name string
		pred types.Prediction
		draw types.Draw
		want types.MatchResult
	}{
		{
			name: "partial_overlap",
			pred: types.Prediction{Main: []int{1, 2, 3, 4, 5}, Euro: []int{1, 2}},
			draw: types.Draw{Main: []int{3, 4, 5, 6, 7}, Euro: []int{2, 12}},
			want: types.MatchResult{Main: 3, Euro: 1, Total: 4},
		},
		{
			name: "no_overlap",
			pred: types.Prediction{Main: []int{1, 2, 3, 4, 5}, Euro: []int{1, 2}},
			draw: types.Draw{Main: []int{10, 20, 30, 40, 50}, Euro: []int{3, 4}},
			want: types.MatchResult{Main: 0, Euro: 0, Total: 0},
		},
		{
			name: "full_overlap",
			pred: types.Prediction{Main: []int{5, 4, 3, 2, 1}, Euro: []int{12, 1}},
			draw: types.Draw{Main: []int{1, 2, 3, 4, 5}, Euro: []int{1, 12}},
			want: types.MatchResult{Main: 5, Euro: 2, Total: 7},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CountMatches(&tc.pred, &tc.draw)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.Main+got.Euro, got.Total)
		})
	}
}

// Swapping which record holds which set must not change the counts.
func TestCountMatchesSymmetric(t *testing.T) {
	pred := types.Prediction{Main: []int{1, 2, 3, 4, 5}, Euro: []int{1, 2}}
	draw := types.Draw{Main: []int{3, 4, 5, 6, 7}, Euro: []int{2, 12}}

	forward := CountMatches(&pred, &draw)
	swapped := CountMatches(
		&types.Prediction{Main: draw.Main, Euro: draw.Euro},
		&types.Draw{Main: pred.Main, Euro: pred.Euro},
	)
	assert.Equal(t, forward, swapped)
}
