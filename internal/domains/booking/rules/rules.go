// Package rules holds the pure validity checks applied to a booking before
// it is priced or persisted.
package rules

import (
	"time"
)

const (
	DimensionAdults   = "adults"
	DimensionChildren = "children"
)

// ValidateDateRange requires the half-open [start, end) range to cover at
// least one night.
func ValidateDateRange(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidDateRange
	}

	return nil
}

// ValidateCapacity checks the party against a room's per-dimension limits.
// Adults and children never offset each other.
func ValidateCapacity(capacityAdults, capacityChildren, adults, children int) error {
	if adults > capacityAdults {
		return &CapacityExceededError{
			Dimension: DimensionAdults,
			Requested: adults,
			Max:       capacityAdults,
		}
	}

	if children > capacityChildren {
		return &CapacityExceededError{
			Dimension: DimensionChildren,
			Requested: children,
			Max:       capacityChildren,
		}
	}

	return nil
}

// Overlaps reports whether two half-open date ranges intersect. Back-to-back
// stays sharing a checkout/checkin day do not overlap.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}
