package entity

import "github.com/pkg/errors"

// ConflictPolicy decides which existing bookings block new ones.
type ConflictPolicy string

const (
	// ConflictPolicyAll treats every booking as blocking, whatever its status.
	ConflictPolicyAll ConflictPolicy = "all"
	// ConflictPolicyIgnoreCancelled frees the dates of cancelled bookings.
	ConflictPolicyIgnoreCancelled ConflictPolicy = "ignore_cancelled"
	// ConflictPolicyIgnoreInactive frees the dates of cancelled and completed bookings.
	ConflictPolicyIgnoreInactive ConflictPolicy = "ignore_inactive"
)

// ParseConflictPolicy maps a configured value to a policy. Empty selects ConflictPolicyAll.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(s); p {
	case "":
		return ConflictPolicyAll, nil
	case ConflictPolicyAll, ConflictPolicyIgnoreCancelled, ConflictPolicyIgnoreInactive:
		return p, nil
	default:
		return "", errors.Errorf("unknown booking conflict policy %q", s)
	}
}

// Blocks reports whether a booking in the given status occupies its dates.
func (p ConflictPolicy) Blocks(status BookingStatus) bool {
	switch p {
	case ConflictPolicyIgnoreCancelled:
		return status != BookingStatusCancelled
	case ConflictPolicyIgnoreInactive:
		return !BookingStatuses{BookingStatusCancelled, BookingStatusCompleted}.Contains(status)
	default:
		return true
	}
}
