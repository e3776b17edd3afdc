package rules

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange is returned when a stay does not span at least one night.
var ErrInvalidDateRange = errors.New("end date must be after start date")

// CapacityExceededError reports which capacity dimension a party exceeds.
type CapacityExceededError struct {
	Dimension string
	Requested int
	Max       int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("room cannot accommodate %d %s (maximum %d)", e.Requested, e.Dimension, e.Max)
}

// RoomUnavailableError reports a date conflict with an existing booking.
type RoomUnavailableError struct {
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %s is not available from %s to %s",
		e.RoomID, e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"))
}
