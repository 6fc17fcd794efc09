package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marketrisk"
	"github.com/etnz/marketrisk/chart"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type chartCmd struct {
	symbol string
	kind   string
	start  float64
	output string
}

func (*chartCmd) Name() string { return "chart" }
func (*chartCmd) Synopsis() string {
	return "draw the equity curve or the closes of a symbol as a PNG image"
}
func (*chartCmd) Usage() string {
	return `mrk chart [-symbol <symbol>] [-kind equity|price] [-start <notional>] [-o <file.png>]

  Draws a line chart of the equity curve (default) or of the closes of a
  symbol, and writes it as a PNG image.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol to draw. Defaults to the only symbol of the price file.")
	f.StringVar(&c.kind, "kind", "equity", "What to draw: equity or price.")
	f.Float64Var(&c.start, "start", marketrisk.DefaultStartValue, "Starting notional of the equity curve.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to <symbol>-<kind>.png.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "cannot load prices")
	}
	s, err := m.Series(c.symbol)
	if err != nil {
		return fail(err, "cannot select symbol")
	}

	var png []byte
	switch c.kind {
	case "equity":
		curve, err := marketrisk.EquityCurve(s, c.start)
		if err != nil {
			return fail(err, "cannot compute the equity curve")
		}
		png, err = chart.EquityPNG(s.Symbol(), curve)
		if err != nil {
			return fail(err, "cannot draw the equity curve")
		}
	case "price":
		png, err = chart.PricePNG(s)
		if err != nil {
			return fail(err, "cannot draw the closes")
		}
	default:
		log.Error().Str("kind", c.kind).Msg("unknown chart kind, want equity or price")
		return subcommands.ExitUsageError
	}

	output := c.output
	if output == "" {
		output = strings.ToLower(s.Symbol()) + "-" + c.kind + ".png"
	}
	if err := os.WriteFile(output, png, 0644); err != nil {
		return fail(err, "cannot write chart")
	}
	fmt.Printf("Chart written to %s\n", output)
	return subcommands.ExitSuccess
}
