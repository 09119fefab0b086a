package internal

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMonthlyTotal_SingleCurrency(t *testing.T) {
	l := NewLedger()
	l.Add("Netflix", 450, TWD, date("2025-02-15"), true)
	l.Add("Spotify", 149, TWD, date("2025-03-01"), true)

	if got := MonthlyTotal(l, TWD); !almostEqual(got, 599) {
		t.Errorf("MonthlyTotal = %v, want 599", got)
	}
}

func TestMonthlyTotal_MixedCurrencies(t *testing.T) {
	l := NewLedger()
	l.Add("Netflix", 450, TWD, date("2025-02-15"), true)
	l.Add("iCloud", 2.99, USD, date("2025-03-01"), true)

	// 450 TWD is 14.85 USD.
	if got := MonthlyTotal(l, USD); !almostEqual(got, 14.85+2.99) {
		t.Errorf("MonthlyTotal(USD) = %v, want %v", got, 14.85+2.99)
	}

	// 2.99 USD is 2.99/0.033 TWD.
	wantTWD := 450 + 2.99/0.033
	if got := MonthlyTotal(l, TWD); !almostEqual(got, wantTWD) {
		t.Errorf("MonthlyTotal(TWD) = %v, want %v", got, wantTWD)
	}
}

func TestMonthlyTotal_IncludesCancelledAndAutoCharges(t *testing.T) {
	// The whole ledger counts: cancelled records and materialized one-time
	// charges stay in the running total.
	l := NewLedger()
	sub, _ := l.Add("Netflix", 450, TWD, date("2025-02-15"), true)
	l.Cancel(sub.ID, date("2025-03-01"))
	l.Tick(date("2025-03-15"))

	if l.Len() != 2 {
		t.Fatalf("ledger size = %d, want 2", l.Len())
	}
	if got := MonthlyTotal(l, TWD); !almostEqual(got, 900) {
		t.Errorf("MonthlyTotal = %v, want 900", got)
	}
}

func TestYearlyTotal_ProjectsTwelveMonths(t *testing.T) {
	l := NewLedger()
	l.Add("Netflix", 450, TWD, date("2025-02-15"), true)

	if got := YearlyTotal(l, TWD, date("2025-03-01")); !almostEqual(got, 450*12) {
		t.Errorf("YearlyTotal = %v, want %v", got, 450*12)
	}
}

func TestYearlyTotal_RespectsCancellation(t *testing.T) {
	l := NewLedger()
	sub, _ := l.Add("Netflix", 450, TWD, date("2025-01-15"), true)
	l.Cancel(sub.ID, date("2025-04-15"))

	// Three whole months plus the partial current one.
	if got := YearlyTotal(l, TWD, date("2025-01-15")); !almostEqual(got, 450*4) {
		t.Errorf("YearlyTotal = %v, want %v", got, 450*4)
	}
}

func TestYearlyTotal_ConvertsCurrency(t *testing.T) {
	l := NewLedger()
	l.Add("Netflix", 450, TWD, date("2025-02-15"), true)
	l.Add("iCloud", 2.99, USD, date("2025-03-01"), true)

	want := (14.85 + 2.99) * 12
	if got := YearlyTotal(l, USD, date("2025-03-01")); !almostEqual(got, want) {
		t.Errorf("YearlyTotal(USD) = %v, want %v", got, want)
	}
}

func TestTotals_EmptyLedger(t *testing.T) {
	l := NewLedger()
	if got := MonthlyTotal(l, TWD); got != 0 {
		t.Errorf("MonthlyTotal of empty ledger = %v, want 0", got)
	}
	if got := YearlyTotal(l, TWD, date("2025-01-01")); got != 0 {
		t.Errorf("YearlyTotal of empty ledger = %v, want 0", got)
	}
}
