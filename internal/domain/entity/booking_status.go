package entity

import "slices"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingStatusPending is the initial state of every booking.
	BookingStatusPending BookingStatus = "pending"
	// BookingStatusConfirmed marks a booking accepted by the host.
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusCancelled marks a booking withdrawn by guest or host.
	BookingStatusCancelled BookingStatus = "cancelled"
	// BookingStatusCompleted marks a stay that has taken place.
	BookingStatusCompleted BookingStatus = "completed"
)

// String returns the string representation of the BookingStatus.
func (s BookingStatus) String() string {
	return string(s)
}

// IsValid checks if the BookingStatus is one of the known values.
// Transitions between known values are not restricted.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// BookingStatuses is a slice of BookingStatus for convenience.
type BookingStatuses []BookingStatus

// Contains checks if the slice contains a specific status.
func (ss BookingStatuses) Contains(status BookingStatus) bool {
	return slices.Contains(ss, status)
}
