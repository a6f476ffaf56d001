package entity

import (
	"math"
	"time"
)

// Review is an immutable guest rating of a property.
type Review struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserID     int64     `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingSummary is the derived aggregate stored on a property.
type RatingSummary struct {
	Rating      *int
	ReviewCount int
}

// SummarizeRatings returns the rounded mean (half away from zero) and the count.
// Rating is nil when there are no reviews.
func SummarizeRatings(reviews []*Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	avg := int(math.Round(float64(sum) / float64(len(reviews))))

	return RatingSummary{Rating: &avg, ReviewCount: len(reviews)}
}
