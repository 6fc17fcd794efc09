// Package cmd implements the mrk CLI application: risk analytics over price
// series and portfolio valuation.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marketrisk"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvPrices   = "MRK_PRICES"
	EnvHoldings = "MRK_HOLDINGS"
	EnvCurrency = "MRK_CURRENCY"
	EnvLogLevel = "MRK_LOG_LEVEL"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&historyCmd{}, "market")
	c.Register(&marketCmd{}, "market")
	c.Register(&fmtCmd{}, "market")

	c.Register(&riskCmd{}, "risk")
	c.Register(&chartCmd{}, "risk")

	c.Register(&holdingsCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&summaryCmd{}, "portfolio")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
	c.Register(&healthCmd{}, "help")
}

// envOr returns the value of the environment variable key, or def if it is empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var pricesFile = flag.String("prices", envOr(EnvPrices, "prices.csv"), "Path to the price file, .csv or .jsonl (env "+EnvPrices+")")
var holdingsFile = flag.String("holdings", envOr(EnvHoldings, "holdings.jsonl"), "Path to the holdings file in JSONL format (env "+EnvHoldings+")")
var defaultCurrency = flag.String("currency", envOr(EnvCurrency, "INR"), "Currency of prices and holdings (env "+EnvCurrency+")")
var logLevel = flag.String("log-level", envOr(EnvLogLevel, "info"), "Logging level: debug, info, warn, error (env "+EnvLogLevel+")")

// SetupLogging configures the global logger from the -log-level flag.
// It must be called after the flags are parsed.
func SetupLogging() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", *logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// DecodeMarket decodes the price file of the application.
func DecodeMarket() (*marketrisk.Market, error) {
	m, err := marketrisk.DecodeMarketFile(*pricesFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", *pricesFile).Strs("symbols", m.Symbols()).Msg("prices loaded")
	return m, nil
}

// DecodeHoldings decodes the holdings file of the application into a store.
// If the file does not exist, the store is empty.
func DecodeHoldings() (*marketrisk.MemoryStore, error) {
	f, err := os.Open(*holdingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("file", *holdingsFile).Msg("holdings file does not exist, starting with no holdings")
		return marketrisk.NewMemoryStore()
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file %q: %w", *holdingsFile, err)
	}
	defer f.Close()

	holdings, err := marketrisk.DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *holdingsFile, err)
	}
	return marketrisk.NewMemoryStore(holdings...)
}

// EncodeHolding appends a single holding into the app holdings file.
func EncodeHolding(h marketrisk.Holding) error {
	f, err := os.OpenFile(*holdingsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open holdings file %q: %w", *holdingsFile, err)
	}
	defer f.Close()
	if err := marketrisk.EncodeHolding(f, h); err != nil {
		return fmt.Errorf("cannot write to holdings file %q: %w", *holdingsFile, err)
	}
	return nil
}

// printMarkdown renders md for the terminal. Raw markdown is printed when the
// output is not a terminal.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		log.Debug().Err(err).Msg("cannot render markdown")
		out = md
	}
	fmt.Print(out)
}

// printJSON prints v as a single line of JSON.
func printJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// fail logs err and returns the failure exit status.
func fail(err error, msg string) subcommands.ExitStatus {
	log.Error().Err(err).Msg(msg)
	return subcommands.ExitFailure
}
