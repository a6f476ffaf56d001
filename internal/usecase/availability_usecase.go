package usecase

import (
	"context"
	"time"

	"stayscape/internal/domain/entity"
)

// AvailabilityOutput reports whether a stay can be booked.
type AvailabilityOutput struct {
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Available  bool      `json:"available"`
}

// AvailabilityUsecase answers date-overlap questions against existing bookings.
type AvailabilityUsecase interface {
	// HasConflict reports whether [start, end) overlaps a blocking booking of the property.
	HasConflict(ctx context.Context, propertyID int64, start, end time.Time) (bool, error)

	// CheckAvailability validates the range and the property before checking for conflicts.
	CheckAvailability(ctx context.Context, propertyID int64, start, end time.Time) (*AvailabilityOutput, error)

	// BlockedRanges lists the ranges occupied by blocking bookings, sorted by start.
	BlockedRanges(ctx context.Context, propertyID int64) ([]entity.DateRange, error)
}
