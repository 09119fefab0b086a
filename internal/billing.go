package internal

import "time"

// DaysInMonth returns the number of days in the month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsChargeDay reports whether date is a billing day for the subscription.
// The billing day is anchored to the day-of-month of StartDate. When the
// anchor day exceeds the length of date's month, billing clamps to the last
// day of that month. Dates on or after CancelDate never charge.
func IsChargeDay(s Subscription, date time.Time) bool {
	if s.CancelDate != nil && !truncateToDay(date).Before(truncateToDay(*s.CancelDate)) {
		return false
	}

	targetDay := s.StartDate.Day()
	currentDay := date.Day()
	lastDay := DaysInMonth(date)

	if currentDay == lastDay && targetDay > lastDay {
		return true
	}
	return currentDay == targetDay
}

// NextChargeDate computes the next billing date for a recurring subscription:
// the anchor day-of-month in the month after the reference point, clamped to
// that month's last day. The reference point is LastChargeDate when set,
// StartDate otherwise; the anchor day always comes from StartDate so it never
// drifts after a clamped month. Returns nil for non-recurring subscriptions.
// Cancellation is deliberately not consulted here; callers combine this with
// IsCancelledAt.
func NextChargeDate(s Subscription) *time.Time {
	if !s.IsRecurring {
		return nil
	}

	ref := s.StartDate
	if s.LastChargeDate != nil {
		ref = *s.LastChargeDate
	}
	targetDay := s.StartDate.Day()

	// First of the month after the reference point. time.Date normalizes
	// month 13 to January of the next year.
	firstOfNext := time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, ref.Location())
	lastDay := DaysInMonth(firstOfNext)

	day := targetDay
	if day > lastDay {
		day = lastDay
	}

	next := time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, ref.Location())
	return &next
}
