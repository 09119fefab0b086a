package internal

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dateP(s string) *time.Time {
	t := date(s)
	return &t
}

func recurring(start string) Subscription {
	return Subscription{
		Name:        "Netflix",
		Amount:      450,
		Currency:    TWD,
		StartDate:   date(start),
		IsRecurring: true,
	}
}

func TestIsChargeDay_AnchorDayMatch(t *testing.T) {
	sub := recurring("2025-02-15")

	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{"start date itself", "2025-02-15", true},
		{"same day next month", "2025-03-15", true},
		{"same day next year", "2026-02-15", true},
		{"day before", "2025-03-14", false},
		{"day after", "2025-03-16", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChargeDay(sub, date(tt.date)); got != tt.expected {
				t.Errorf("IsChargeDay(%s) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestIsChargeDay_ClampsToMonthEnd(t *testing.T) {
	sub := recurring("2025-01-31")

	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{"february 28 in a non-leap year", "2025-02-28", true},
		{"february 29 in a leap year", "2024-02-29", true},
		{"april 30", "2025-04-30", true},
		{"march 31 exact match", "2025-03-31", true},
		{"march 30 is not the charge day", "2025-03-30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChargeDay(sub, date(tt.date)); got != tt.expected {
				t.Errorf("IsChargeDay(%s) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestIsChargeDay_NoDoubleFireOnMonthEnd(t *testing.T) {
	// Anchor day 15 fits inside February, so the 28th must not fire.
	sub := recurring("2025-01-15")

	if IsChargeDay(sub, date("2025-02-28")) {
		t.Error("month-end fired even though the anchor day fits in the month")
	}
	if !IsChargeDay(sub, date("2025-02-15")) {
		t.Error("anchor day did not fire")
	}
}

func TestIsChargeDay_OncePerMonth(t *testing.T) {
	// For any anchor day, exactly one day per month charges.
	for _, start := range []string{"2025-01-01", "2025-01-15", "2025-01-28", "2025-01-31"} {
		sub := recurring(start)
		for month := 1; month <= 12; month++ {
			first := time.Date(2025, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			count := 0
			for day := 1; day <= DaysInMonth(first); day++ {
				if IsChargeDay(sub, time.Date(2025, time.Month(month), day, 0, 0, 0, 0, time.UTC)) {
					count++
				}
			}
			if count != 1 {
				t.Errorf("anchor %s month %d: %d charge days, want 1", start, month, count)
			}
		}
	}
}

func TestIsChargeDay_CancelledStopsCharging(t *testing.T) {
	sub := recurring("2025-01-15")
	sub.CancelDate = dateP("2025-03-01")

	if !IsChargeDay(sub, date("2025-02-15")) {
		t.Error("charge day before cancellation should fire")
	}
	if IsChargeDay(sub, date("2025-03-15")) {
		t.Error("charge day after cancellation should not fire")
	}
	if IsChargeDay(sub, date("2026-01-15")) {
		t.Error("charge day long after cancellation should not fire")
	}
}

func TestNextChargeDate_NonRecurring(t *testing.T) {
	sub := recurring("2025-02-15")
	sub.IsRecurring = false

	if next := NextChargeDate(sub); next != nil {
		t.Errorf("NextChargeDate = %v, want nil for non-recurring", next)
	}
}

func TestNextChargeDate_FromStartDate(t *testing.T) {
	sub := recurring("2025-02-15")

	next := NextChargeDate(sub)
	if next == nil {
		t.Fatal("NextChargeDate = nil")
	}
	if !SameDay(*next, date("2025-03-15")) {
		t.Errorf("NextChargeDate = %s, want 2025-03-15", next.Format("2006-01-02"))
	}
}

func TestNextChargeDate_FromLastChargeDate(t *testing.T) {
	sub := recurring("2025-02-15")
	sub.LastChargeDate = dateP("2025-05-15")

	next := NextChargeDate(sub)
	if next == nil {
		t.Fatal("NextChargeDate = nil")
	}
	if !SameDay(*next, date("2025-06-15")) {
		t.Errorf("NextChargeDate = %s, want 2025-06-15", next.Format("2006-01-02"))
	}
}

func TestNextChargeDate_YearRollover(t *testing.T) {
	sub := recurring("2025-12-10")

	next := NextChargeDate(sub)
	if next == nil {
		t.Fatal("NextChargeDate = nil")
	}
	if !SameDay(*next, date("2026-01-10")) {
		t.Errorf("NextChargeDate = %s, want 2026-01-10", next.Format("2006-01-02"))
	}
}

func TestNextChargeDate_AnchorDayNeverDrifts(t *testing.T) {
	// Start day 31: charges walk Jan 31 -> Feb 28 -> Mar 31 -> Apr 30,
	// returning to the 31st whenever the month allows it.
	sub := recurring("2025-01-31")

	want := []string{"2025-02-28", "2025-03-31", "2025-04-30", "2025-05-31"}
	for _, expected := range want {
		next := NextChargeDate(sub)
		if next == nil {
			t.Fatal("NextChargeDate = nil")
		}
		if !SameDay(*next, date(expected)) {
			t.Fatalf("NextChargeDate = %s, want %s", next.Format("2006-01-02"), expected)
		}
		sub.LastChargeDate = next
	}
}

func TestNextChargeDate_IgnoresCancelDate(t *testing.T) {
	sub := recurring("2025-02-15")
	sub.CancelDate = dateP("2025-01-01")

	next := NextChargeDate(sub)
	if next == nil {
		t.Fatal("NextChargeDate = nil, cancellation must not be consulted here")
	}
	if !SameDay(*next, date("2025-03-15")) {
		t.Errorf("NextChargeDate = %s, want 2025-03-15", next.Format("2006-01-02"))
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date     string
		expected int
	}{
		{"2025-01-10", 31},
		{"2025-02-10", 28},
		{"2024-02-10", 29},
		{"2025-04-10", 30},
		{"2025-12-10", 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(date(tt.date)); got != tt.expected {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.date, got, tt.expected)
		}
	}
}
