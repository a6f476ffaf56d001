package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Overlaps(t *testing.T) {
	existing := NewDateRange(day(1), day(5))

	tests := []struct {
		name      string
		candidate DateRange
		want      bool
	}{
		{name: "back to back after", candidate: NewDateRange(day(5), day(10)), want: false},
		{name: "back to back before", candidate: NewDateRange(day(0), day(1)), want: false},
		{name: "straddles checkout", candidate: NewDateRange(day(4), day(6)), want: true},
		{name: "straddles checkin", candidate: NewDateRange(day(0), day(2)), want: true},
		{name: "inside", candidate: NewDateRange(day(2), day(3)), want: true},
		{name: "covers", candidate: NewDateRange(day(0), day(9)), want: true},
		{name: "identical", candidate: NewDateRange(day(1), day(5)), want: true},
		{name: "disjoint", candidate: NewDateRange(day(7), day(9)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(tt.candidate))
		})
	}
}

func TestDateRange_OverlapsMatchesIntervalFormula(t *testing.T) {
	for a := 0; a < 6; a++ {
		for b := a + 1; b < 7; b++ {
			for c := 0; c < 6; c++ {
				for d := c + 1; d < 7; d++ {
					r1 := NewDateRange(day(a+1), day(b+1))
					r2 := NewDateRange(day(c+1), day(d+1))
					assert.Equal(t, a < d && b > c, r1.Overlaps(r2), "[%d,%d) vs [%d,%d)", a, b, c, d)
				}
			}
		}
	}
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, NewDateRange(day(1), day(2)).IsValid())
	assert.False(t, NewDateRange(day(2), day(2)).IsValid())
	assert.False(t, NewDateRange(day(10), day(3)).IsValid())
}

func TestDateRange_Nights(t *testing.T) {
	assert.Equal(t, 4, NewDateRange(day(1), day(5)).Nights())
	assert.Equal(t, 1, NewDateRange(day(1), day(1).Add(3*time.Hour)).Nights())
	assert.Equal(t, 0, NewDateRange(day(5), day(1)).Nights())
}
