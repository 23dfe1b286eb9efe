// Package cli implements the command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kiplangat-dev/catholicprayer/internal/config"
	"github.com/kiplangat-dev/catholicprayer/internal/usccb"
)

// FetchReadingCommand fetches the daily readings for a date and prints them
// as JSON, without touching the database.
type FetchReadingCommand struct {
	Date    string
	Timeout time.Duration
}

func NewFetchReadingCommand() *FetchReadingCommand {
	return &FetchReadingCommand{}
}

func (cmd *FetchReadingCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("fetch-reading", flag.ExitOnError)

	fs.StringVar(&cmd.Date, "date", "", "Date to fetch in YYYY-MM-DD format (default: today)")
	fs.DurationVar(&cmd.Timeout, "timeout", 30*time.Second, "Overall timeout for the fetch")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s fetch-reading [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Fetch the daily Mass readings and print them as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "When the source is unreachable the static fallback reading is printed,\n")
		fmt.Fprintf(os.Stderr, "so the command always produces output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s fetch-reading\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s fetch-reading -date 2026-12-25\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *FetchReadingCommand) Run() error {
	date := time.Now()
	if cmd.Date != "" {
		parsed, err := time.Parse("2006-01-02", cmd.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", cmd.Date)
		}
		date = parsed
	}

	cfg := config.NewConfig()
	client := usccb.NewClient(
		cfg.USCCB.BaseURL,
		cfg.USCCB.ProxyURL,
		cfg.USCCB.DirectTimeout,
		cfg.USCCB.ProxyTimeout,
	)

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	reading := client.GetDailyReading(ctx, date)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reading)
}
