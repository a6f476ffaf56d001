package entity

import "time"

const hoursPerNight = 24

// DateRange is a half-open stay interval [Start, End).
// The checkout instant of one stay may equal the check-in instant of the next.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a DateRange without validating it.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

// IsValid reports whether Start is strictly before End.
func (r DateRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether the two half-open ranges share any instant.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Nights returns the number of started 24h periods in the range, 0 for an invalid range.
func (r DateRange) Nights() int {
	if !r.IsValid() {
		return 0
	}

	d := r.End.Sub(r.Start)
	nights := int(d / (hoursPerNight * time.Hour))
	if d%(hoursPerNight*time.Hour) != 0 {
		nights++
	}

	return nights
}
