package schedule

import "time"

// Slot is a candidate bookable interval of exactly one service duration.
type Slot struct {
	Range  TimeRange
	IsFull bool
}

// GenerateSlots produces the ordered list of bookable slots for one day.
//
// Windows that do not match the weekday or are inactive are skipped; booked
// ranges with cancelled status are skipped. Each remaining window is walked
// from its start in durationMinutes steps, and a trailing partial slot that
// would run past the window end is dropped. Overlapping or abutting windows
// are emitted independently, without merging or dedup, so callers can see
// duplicate entries if the windows themselves overlap.
//
// No matching windows is a normal outcome and yields an empty slice.
func GenerateSlots(weekday time.Weekday, windows []Window, booked []Booked, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	occupied := make([]TimeRange, 0, len(booked))
	for _, b := range booked {
		if !b.Cancelled {
			occupied = append(occupied, b.Range)
		}
	}

	slots := []Slot{}
	for _, w := range windows {
		if w.Weekday != weekday || !w.Active {
			continue
		}

		for cursor := w.Range.Start; cursor+durationMinutes <= w.Range.End; cursor += durationMinutes {
			candidate := TimeRange{Start: cursor, End: cursor + durationMinutes}

			isFull := false
			for _, o := range occupied {
				if Overlaps(candidate, o) {
					isFull = true
					break
				}
			}

			slots = append(slots, Slot{Range: candidate, IsFull: isFull})
		}
	}

	return slots, nil
}
