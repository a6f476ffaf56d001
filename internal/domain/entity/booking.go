package entity

import "time"

// Booking is a reservation of a property by a user for a date range.
// PropertyID and UserID are weak references checked only at creation time.
type Booking struct {
	ID         int64         `json:"id"`
	PropertyID int64         `json:"property_id"`
	UserID     int64         `json:"user_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Guests     int           `json:"guests"`
	TotalPrice int           `json:"total_price"` // Supplied by the caller.
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Range returns the booked stay interval.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// IsOwnedBy reports whether userID placed the booking.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b != nil && b.UserID == userID
}
