package internal

import "time"

// projectionHorizonMonths is how far ahead yearly totals project a
// subscription that has no cancellation date.
const projectionHorizonMonths = 12

// IsCancelledAt reports whether the subscription is cancelled-in-effect at
// date: a cancellation applies to every day on or after CancelDate.
func IsCancelledAt(s Subscription, date time.Time) bool {
	if s.CancelDate == nil {
		return false
	}
	return !truncateToDay(date).Before(truncateToDay(*s.CancelDate))
}

// RemainingMonths returns how many more months the subscription bills from
// the given date. Without a cancellation date it projects one year forward.
// With one, it counts whole calendar months between from and CancelDate plus
// one for the partial current month, floored at zero.
func RemainingMonths(s Subscription, from time.Time) int {
	if s.CancelDate == nil {
		return projectionHorizonMonths
	}

	months := wholeMonthsBetween(truncateToDay(from), truncateToDay(*s.CancelDate))
	if months+1 < 0 {
		return 0
	}
	return months + 1
}

// wholeMonthsBetween counts complete calendar months from a to b, truncating
// toward zero: a span shorter than one month is 0 in either direction, and
// the count only grows in magnitude once the day-of-month is reached in the
// direction of travel. Negative when b precedes a by a month or more.
func wholeMonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months > 0 && b.Day() < a.Day() {
		months--
	}
	if months < 0 && b.Day() > a.Day() {
		months++
	}
	return months
}
