package cmd

import (
	"context"
	"flag"

	"github.com/etnz/marketrisk"
	"github.com/etnz/marketrisk/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type riskCmd struct {
	symbol     string
	confidence float64
	start      float64
	noCurve    bool
	json       bool
}

func (*riskCmd) Name() string { return "risk" }
func (*riskCmd) Synopsis() string {
	return "display the volatility, max drawdown, value-at-risk and equity curve of a symbol"
}
func (*riskCmd) Usage() string {
	return `mrk risk [-symbol <symbol>] [-confidence <level>] [-start <notional>] [-no-curve] [-json]

  Computes the risk metrics of the closes of a symbol:
  annualized volatility, max drawdown, historical value-at-risk and the
  equity curve of a notional invested on the first day.

  See 'mrk topic risk' for the definitions.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol to analyze. Defaults to the only symbol of the price file.")
	f.Float64Var(&c.confidence, "confidence", marketrisk.DefaultConfidence, "Confidence level of the value-at-risk, in [0, 1).")
	f.Float64Var(&c.start, "start", marketrisk.DefaultStartValue, "Starting notional of the equity curve.")
	f.BoolVar(&c.noCurve, "no-curve", false, "Do not display the equity curve table.")
	f.BoolVar(&c.json, "json", false, "Print the JSON form of the metrics.")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts := marketrisk.Options{Confidence: c.confidence, StartValue: c.start}
	if err := opts.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid options")
		return subcommands.ExitUsageError
	}

	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "cannot load prices")
	}
	s, err := m.Series(c.symbol)
	if err != nil {
		return fail(err, "cannot select symbol")
	}
	metrics, err := marketrisk.Analyze(s, opts)
	if err != nil {
		return fail(err, "cannot compute risk metrics")
	}

	if c.json {
		if err := printJSON(metrics); err != nil {
			return fail(err, "cannot encode risk metrics")
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderRisk(renderer.NewRisk(metrics), renderer.RiskRenderOptions{SkipCurve: c.noCurve}))
	return subcommands.ExitSuccess
}
