package cmd

import (
	"context"
	"flag"

	"github.com/etnz/marketrisk/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	symbol string
	json   bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the closes of a symbol" }
func (*historyCmd) Usage() string {
	return `mrk history [-symbol <symbol>] [-json]

  Displays the closes of a symbol in chronological order, with their change
  from the previous close.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol to display. Defaults to the only symbol of the price file.")
	f.BoolVar(&c.json, "json", false, "Print the JSON form of the history.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "cannot load prices")
	}
	s, err := m.Series(c.symbol)
	if err != nil {
		return fail(err, "cannot select symbol")
	}

	if c.json {
		if err := printJSON(s); err != nil {
			return fail(err, "cannot encode history")
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderHistory(renderer.NewHistory(s)))
	return subcommands.ExitSuccess
}
