package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/wenhsu/subtrack/internal"
)

type ListParams struct {
	File     string `descr:"Subscription file, optionally prefixed with a format (simple-json, yaml, xlsx)" positional:"true"`
	Currency string `descr:"Display currency, defaults to the config file then TWD" alts:"TWD,USD" strict:"true" default:""`
	Json     bool   `descr:"Output JSON instead of a table"`
	AsOf     string `descr:"Reference date (YYYY-MM-DD), defaults to today" default:""`
}

type TotalsParams struct {
	File     string `descr:"Subscription file, optionally prefixed with a format (simple-json, yaml, xlsx)" positional:"true"`
	Currency string `descr:"Display currency, defaults to the config file then TWD" alts:"TWD,USD" strict:"true" default:""`
	AsOf     string `descr:"Reference date (YYYY-MM-DD), defaults to today" default:""`
}

type CalendarParams struct {
	File  string `descr:"Subscription file, optionally prefixed with a format (simple-json, yaml, xlsx)" positional:"true"`
	Month string `descr:"Month to render (YYYY-MM), defaults to the current month" default:""`
}

type WatchParams struct {
	File     string `descr:"Subscription file, optionally prefixed with a format (simple-json, yaml, xlsx)" positional:"true"`
	Interval string `descr:"Tick interval" default:"24h"`
}

type SimulateParams struct {
	File     string `descr:"Subscription file, optionally prefixed with a format (simple-json, yaml, xlsx)" positional:"true"`
	From     string `descr:"First simulated day (YYYY-MM-DD), defaults to today" default:""`
	To       string `descr:"Last simulated day (YYYY-MM-DD), defaults to a month after the start" default:""`
	Currency string `descr:"Display currency, defaults to the config file then TWD" alts:"TWD,USD" strict:"true" default:""`
}

func main() {
	root := &cobra.Command{
		Use:   "subtrack",
		Short: "Track recurring subscriptions, their billing dates and totals",
		Long: "Reads a subscription file and computes billing dates, cancellation effects " +
			"and currency-converted monthly/yearly totals. The simulate command replays the " +
			"daily billing tick over a date range and shows the charges it would record.",
	}

	root.AddCommand(
		boa.NewCmdT[ListParams]("list").
			WithShort("List all subscriptions with next charge dates and totals").
			WithRunFunc(runList).
			ToCobra(),
		boa.NewCmdT[TotalsParams]("totals").
			WithShort("Print monthly and projected yearly totals").
			WithRunFunc(runTotals).
			ToCobra(),
		boa.NewCmdT[CalendarParams]("calendar").
			WithShort("Render a month grid of charge days").
			WithRunFunc(runCalendar).
			ToCobra(),
		boa.NewCmdT[SimulateParams]("simulate").
			WithShort("Replay the daily billing tick over a date range").
			WithRunFunc(runSimulate).
			ToCobra(),
		boa.NewCmdT[WatchParams]("watch").
			WithShort("Run the daily billing tick until interrupted").
			WithRunFunc(runWatch).
			ToCobra(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(params *ListParams) {
	ledger := mustLoadLedger(params.File)
	opts := internal.OutputOptions{
		Currency: mustCurrency(params.Currency),
		AsOf:     mustDate(params.AsOf, time.Now()),
	}

	if params.Json {
		if err := internal.PrintLedgerJSON(os.Stdout, ledger, opts); err != nil {
			fatal(err)
		}
		return
	}
	internal.PrintLedgerTable(os.Stdout, ledger, opts)
}

func runTotals(params *TotalsParams) {
	ledger := mustLoadLedger(params.File)
	internal.PrintTotals(os.Stdout, ledger, internal.OutputOptions{
		Currency: mustCurrency(params.Currency),
		AsOf:     mustDate(params.AsOf, time.Now()),
	})
}

func runCalendar(params *CalendarParams) {
	ledger := mustLoadLedger(params.File)

	month := time.Now()
	if params.Month != "" {
		m, err := time.Parse("2006-01", params.Month)
		if err != nil {
			fatal(fmt.Errorf("parsing month %q: %w", params.Month, err))
		}
		month = m
	}

	internal.PrintCalendar(os.Stdout, ledger, month)
}

func runSimulate(params *SimulateParams) {
	ledger := mustLoadLedger(params.File)
	display := mustCurrency(params.Currency)

	from := mustDate(params.From, time.Now())
	to := mustDate(params.To, from.AddDate(0, 1, 0))
	if to.Before(from) {
		fatal(fmt.Errorf("simulation end %s precedes start %s",
			to.Format("2006-01-02"), from.Format("2006-01-02")))
	}

	before := ledger.Len()
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		charges := ledger.Tick(day)
		for _, charge := range charges {
			fmt.Printf("%s  %s  %s\n",
				day.Format("2006-01-02"),
				charge.Name,
				charge.Currency.Format(charge.Amount))
		}
	}

	fmt.Printf("\nLedger grew from %d to %d records\n", before, ledger.Len())
	internal.PrintTotals(os.Stdout, ledger, internal.OutputOptions{Currency: display, AsOf: to})
}

func runWatch(params *WatchParams) {
	ledger := mustLoadLedger(params.File)

	interval, err := time.ParseDuration(params.Interval)
	if err != nil {
		fatal(fmt.Errorf("parsing interval %q: %w", params.Interval, err))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	scheduler := internal.NewScheduler(ledger, internal.SystemClock(), interval, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start(ctx)
	<-ctx.Done()
	scheduler.Wait()
}

func mustLoadLedger(fileArg string) *internal.Ledger {
	ledger, err := internal.LoadLedger(fileArg)
	if err != nil {
		fatal(err)
	}
	return ledger
}

// mustCurrency resolves the display currency: explicit flag first, then the
// config file default, then TWD.
func mustCurrency(flag string) internal.Currency {
	var cfg *internal.Config
	if path := internal.DefaultConfigPath(); path != "" {
		if loaded, err := internal.LoadConfig(path); err == nil {
			cfg = loaded
		}
	}

	curr, err := cfg.DisplayCurrency(flag)
	if err != nil {
		fatal(err)
	}
	return curr
}

func mustDate(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		fatal(fmt.Errorf("parsing date %q: %w", s, err))
	}
	return t
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
