package scheduling

import "itsourstudio/models"

// IsSlotAvailable reports whether a candidate slot starting at startMinutes
// and running for durationMinutes is free of the given booked intervals.
// Intervals are half-open, so back-to-back bookings are permitted: a
// candidate ending exactly where an existing booking starts does not clash.
// A zero duration (no package selected yet) is treated as available.
func IsSlotAvailable(startMinutes, durationMinutes int, booked []models.BookedInterval) bool {
	if durationMinutes == 0 {
		return true
	}
	end := startMinutes + durationMinutes
	for _, r := range booked {
		if startMinutes < r.End && end > r.Start {
			return false
		}
	}
	return true
}

// IntervalsFromBookings derives the occupied windows from the bookings on a
// single date. Records without a time or duration are skipped.
func IntervalsFromBookings(bookings []models.Booking) []models.BookedInterval {
	var intervals []models.BookedInterval
	for _, b := range bookings {
		if b.Time == "" || b.DurationTotal <= 0 {
			continue
		}
		start := TimeToMinutes(b.Time)
		intervals = append(intervals, models.BookedInterval{
			Start: start,
			End:   start + b.DurationTotal,
		})
	}
	return intervals
}
