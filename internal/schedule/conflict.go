package schedule

// IsTrainerAvailable reports whether the proposed range can be accepted
// given the trainer's existing bookings for the same date. Cancelled
// bookings free their slot; every other status occupies it.
//
// Callers must evaluate this against freshly read booking state at
// acceptance time, and the database exclusion constraint remains the
// authority when two requests race past this check.
func IsTrainerAvailable(proposed TimeRange, booked []Booked) bool {
	for _, b := range booked {
		if b.Cancelled {
			continue
		}
		if Overlaps(proposed, b.Range) {
			return false
		}
	}
	return true
}
