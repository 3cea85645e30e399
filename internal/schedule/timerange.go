// Package schedule computes bookable time slots and detects appointment
// conflicts. It is pure: callers pass snapshots of availability windows and
// existing bookings, and nothing here touches storage.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var (
	ErrInvalidRange    = errors.New("time range start must be before end")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidClock    = errors.New("clock value must be in HH:MM format")
)

// TimeRange is a half-open interval [Start, End) in minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

func (r TimeRange) Validate() error {
	if r.Start < 0 || r.End > minutesPerDay || r.Start >= r.End {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether two half-open ranges intersect. Ranges that are
// exactly adjacent (a.End == b.Start) do not overlap, so back-to-back
// appointments are legal. Every conflict and occupancy decision in this
// package goes through this predicate.
func Overlaps(a, b TimeRange) bool {
	return a.Start < b.End && b.Start < a.End
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	var hours, mins int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hours, &mins); err != nil {
		return 0, ErrInvalidClock
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidClock
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, ErrInvalidClock
	}
	return hours*60 + mins, nil
}

// FormatClock converts minutes since midnight to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Window is a recurring weekly interval during which a trainer may be booked.
type Window struct {
	Weekday time.Weekday
	Range   TimeRange
	Active  bool
}

// Booked is an existing appointment's time range on the requested date.
// Cancelled appointments never occupy a slot.
type Booked struct {
	Range     TimeRange
	Cancelled bool
}
