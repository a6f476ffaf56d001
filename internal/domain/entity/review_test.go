package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewsWith(ratings ...int) []*Review {
	out := make([]*Review, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, &Review{Rating: r})
	}

	return out
}

func TestSummarizeRatings(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{name: "single", ratings: []int{7}, want: 7},
		{name: "even mean", ratings: []int{8, 10}, want: 9},
		{name: "half rounds up", ratings: []int{7, 8}, want: 8},
		{name: "below half rounds down", ratings: []int{1, 1, 2}, want: 1},
		{name: "above half rounds up", ratings: []int{1, 2, 2}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := SummarizeRatings(reviewsWith(tt.ratings...))
			require.NotNil(t, summary.Rating)
			assert.Equal(t, tt.want, *summary.Rating)
			assert.Equal(t, len(tt.ratings), summary.ReviewCount)
		})
	}
}

func TestSummarizeRatings_Empty(t *testing.T) {
	summary := SummarizeRatings(nil)
	assert.Nil(t, summary.Rating)
	assert.Zero(t, summary.ReviewCount)
}
