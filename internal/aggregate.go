package internal

import "time"

// MonthlyTotal sums every record's amount converted to the display currency.
// The whole ledger counts: cancelled subscriptions and already-materialized
// one-time charges stay in the sum, nothing is filtered.
func MonthlyTotal(l *Ledger, display Currency) float64 {
	total := 0.0
	for _, sub := range l.Subscriptions() {
		total += Convert(sub.Amount, sub.Currency, display)
	}
	return total
}

// YearlyTotal projects spend for the coming year as of asOf: each record's
// converted amount times its remaining billable months (12 for records with
// no cancellation date).
func YearlyTotal(l *Ledger, display Currency, asOf time.Time) float64 {
	total := 0.0
	for _, sub := range l.Subscriptions() {
		converted := Convert(sub.Amount, sub.Currency, display)
		total += converted * float64(RemainingMonths(sub, asOf))
	}
	return total
}
