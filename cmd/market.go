package cmd

import (
	"context"
	"flag"

	"github.com/etnz/marketrisk"
	"github.com/etnz/marketrisk/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct {
	json bool
}

func (*marketCmd) Name() string { return "market" }
func (*marketCmd) Synopsis() string {
	return "display the latest close of each symbol and its daily change"
}
func (*marketCmd) Usage() string {
	return `mrk market [-json] [<symbol>...]

  Displays, for each symbol (all symbols by default), the latest close and
  its change from the previous close. A symbol with a single close is
  compared to itself.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the JSON form of the snapshots.")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "cannot load prices")
	}
	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = m.Symbols()
	}

	snapshots := make([]marketrisk.MarketSnapshot, 0, len(symbols))
	for _, symbol := range symbols {
		s, err := m.Series(symbol)
		if err != nil {
			return fail(err, "cannot select symbol")
		}
		snap, err := marketrisk.NewMarketSnapshot(s)
		if err != nil {
			return fail(err, "cannot compute market snapshot")
		}
		snapshots = append(snapshots, snap)
	}

	if c.json {
		if err := printJSON(snapshots); err != nil {
			return fail(err, "cannot encode market snapshots")
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderMarket(renderer.NewMarket(snapshots...)))
	return subcommands.ExitSuccess
}
