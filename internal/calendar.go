package internal

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var weekdayHeader = table.Row{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// PrintCalendar renders a month grid of the ledger, marking each day that
// carries at least one charge with the count of charging subscriptions, and
// lists the charges below the grid.
func PrintCalendar(w io.Writer, l *Ledger, month time.Time) {
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysInMonth(firstDay)

	fmt.Fprintf(w, "%s\n\n", firstDay.Format("January 2006"))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(weekdayHeader)

	// Leading blanks up to the first day's weekday, then one cell per day,
	// one table row per week.
	row := make(table.Row, 7)
	for i := range row {
		row[i] = ""
	}
	col := int(firstDay.Weekday())

	chargeDays := make(map[int][]Subscription)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location())
		subs := l.OnDate(date)

		cell := fmt.Sprintf("%d", day)
		if len(subs) > 0 {
			chargeDays[day] = subs
			cell = text.FgCyan.Sprintf("%d *%d", day, len(subs))
		}
		row[col] = cell

		col++
		if col == 7 {
			t.AppendRow(row)
			row = make(table.Row, 7)
			for i := range row {
				row[i] = ""
			}
			col = 0
		}
	}
	if col > 0 {
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Render()

	if len(chargeDays) == 0 {
		fmt.Fprintln(w, "\nNo charges this month.")
		return
	}

	fmt.Fprintln(w)
	for day := 1; day <= daysInMonth; day++ {
		subs, ok := chargeDays[day]
		if !ok {
			continue
		}
		for _, sub := range subs {
			kind := "one-time"
			if sub.IsRecurring {
				kind = "monthly"
			}
			fmt.Fprintf(w, "%s  %s %s (%s)\n",
				time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location()).Format("2006-01-02"),
				sub.Name,
				sub.Currency.Format(sub.Amount),
				kind)
		}
	}
}
