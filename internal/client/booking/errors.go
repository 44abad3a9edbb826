package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateRange marks a check-out that is not strictly after the
	// check-in, or a malformed range.
	ErrInvalidDateRange = errors.New("check-out must be after check-in")

	// ErrMissingMeetPoint marks a custom trip without a hotel that lacks a
	// meet or drop coordinate.
	ErrMissingMeetPoint = errors.New("meet and drop points are required without a hotel")

	// ErrEmptyDraft marks a custom trip calculated with no attractions at all.
	ErrEmptyDraft = errors.New("trip draft has no attractions")
)

// NotEnoughRoomsError rejects a booking whose requested room count exceeds
// availability on at least one date in the range. MinAvailable is the true
// minimum found across the whole range.
type NotEnoughRoomsError struct {
	Requested    int
	MinAvailable int
}

func (e *NotEnoughRoomsError) Error() string {
	return fmt.Sprintf("not enough rooms: requested %d, only %d available", e.Requested, e.MinAvailable)
}

// InsufficientBalanceError rejects a booking locally before any network call
// when the cached balance cannot cover the total.
type InsufficientBalanceError struct {
	Required float64
	Balance  float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %.2f, have %.2f", e.Required, e.Balance)
}

// DayOverflowError rejects adding an attraction that would push a day past
// its time window. All values are minutes.
type DayOverflowError struct {
	Day       int
	Window    int
	Requested int
}

func (e *DayOverflowError) Error() string {
	return fmt.Sprintf("day %d over time budget: %d min requested, window is %d min", e.Day+1, e.Requested, e.Window)
}
