package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputOptions controls how the ledger is displayed
type OutputOptions struct {
	Currency Currency  // display currency for amounts and totals
	AsOf     time.Time // reference date for status and yearly projection
}

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Subscriptions []JSONSubscription `json:"subscriptions"`
	Summary       JSONSummary        `json:"summary"`
}

// JSONSummary contains aggregate statistics
type JSONSummary struct {
	Count        int     `json:"count"`
	MonthlyTotal float64 `json:"monthly_total"`
	YearlyTotal  float64 `json:"yearly_total"`
	Currency     string  `json:"currency"`
}

// JSONSubscription is the JSON output format for a subscription
type JSONSubscription struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Recurring       bool    `json:"recurring"`
	Cancelled       bool    `json:"cancelled"`
	AutoCharge      bool    `json:"auto_charge"`
	StartDate       string  `json:"start_date"`
	LastChargeDate  string  `json:"last_charge_date,omitempty"`
	CancelDate      string  `json:"cancel_date,omitempty"`
	NextChargeDate  string  `json:"next_charge_date,omitempty"`
	RemainingMonths int     `json:"remaining_months"`
}

// PrintLedgerJSON outputs the ledger in JSON format
func PrintLedgerJSON(w io.Writer, l *Ledger, opts OutputOptions) error {
	var subscriptions []JSONSubscription

	for _, sub := range l.Subscriptions() {
		rec := JSONSubscription{
			ID:              sub.ID.String(),
			Name:            sub.Name,
			Amount:          sub.Amount,
			Currency:        string(sub.Currency),
			Recurring:       sub.IsRecurring,
			Cancelled:       IsCancelledAt(sub, opts.AsOf),
			AutoCharge:      sub.IsAutoCharge(),
			StartDate:       sub.StartDate.Format("2006-01-02"),
			RemainingMonths: RemainingMonths(sub, opts.AsOf),
		}
		if sub.LastChargeDate != nil {
			rec.LastChargeDate = sub.LastChargeDate.Format("2006-01-02")
		}
		if sub.CancelDate != nil {
			rec.CancelDate = sub.CancelDate.Format("2006-01-02")
		}
		if next := NextChargeDate(sub); next != nil {
			rec.NextChargeDate = next.Format("2006-01-02")
		}
		subscriptions = append(subscriptions, rec)
	}

	output := JSONOutput{
		Subscriptions: subscriptions,
		Summary: JSONSummary{
			Count:        len(subscriptions),
			MonthlyTotal: MonthlyTotal(l, opts.Currency),
			YearlyTotal:  YearlyTotal(l, opts.Currency, opts.AsOf),
			Currency:     string(opts.Currency),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// PrintLedgerTable outputs the ledger as a formatted table with monthly and
// yearly totals in the footer.
func PrintLedgerTable(w io.Writer, l *Ledger, opts OutputOptions) {
	subs := l.Subscriptions()

	activeCount := 0
	cancelledCount := 0
	for _, sub := range subs {
		if IsCancelledAt(sub, opts.AsOf) {
			cancelledCount++
		} else {
			activeCount++
		}
	}

	fmt.Fprintf(w, "%d subscriptions (%d active, %d cancelled), amounts in %s\n\n",
		len(subs), activeCount, cancelledCount, opts.Currency)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Status", "Started", "Next Charge", "Months Left", "Monthly"})

	for _, sub := range subs {
		status := text.FgGreen.Sprint("ACTIVE")
		if IsCancelledAt(sub, opts.AsOf) {
			status = text.FgRed.Sprint("CANCELLED")
		} else if !sub.IsRecurring {
			status = text.FgHiBlack.Sprint("ONE-TIME")
		}

		nextStr := text.FgHiBlack.Sprint("-")
		if next := NextChargeDate(sub); next != nil {
			nextStr = next.Format("2006-01-02")
		}

		converted := Convert(sub.Amount, sub.Currency, opts.Currency)

		t.AppendRow(table.Row{
			sub.Name,
			status,
			sub.StartDate.Format("2006-01-02"),
			nextStr,
			RemainingMonths(sub, opts.AsOf),
			opts.Currency.Format(converted),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{
		"", "", "", "",
		text.Bold.Sprint("Monthly total"),
		text.Bold.Sprint(opts.Currency.Format(MonthlyTotal(l, opts.Currency))),
	})
	t.AppendFooter(table.Row{
		"", "", "", "",
		text.Bold.Sprint("Yearly total"),
		text.Bold.Sprint(opts.Currency.Format(YearlyTotal(l, opts.Currency, opts.AsOf))),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	// Right-align the amount column
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
	})

	t.Render()
}

// PrintTotals outputs the monthly and yearly totals only.
func PrintTotals(w io.Writer, l *Ledger, opts OutputOptions) {
	fmt.Fprintf(w, "Monthly total: %s\n", opts.Currency.Format(MonthlyTotal(l, opts.Currency)))
	fmt.Fprintf(w, "Yearly total:  %s\n", opts.Currency.Format(YearlyTotal(l, opts.Currency, opts.AsOf)))
}
