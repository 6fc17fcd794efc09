package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/marketrisk"
	"github.com/etnz/marketrisk/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type holdingsCmd struct {
	json bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the holdings" }
func (*holdingsCmd) Usage() string {
	return `mrk holdings [-json]

  Lists the holdings of the holdings file in the order they were added.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the JSON form of the holdings.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeHoldings()
	if err != nil {
		return fail(err, "cannot load holdings")
	}
	holdings := store.List()

	if c.json {
		if holdings == nil {
			holdings = []marketrisk.Holding{}
		}
		if err := printJSON(holdings); err != nil {
			return fail(err, "cannot encode holdings")
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(*defaultCurrency, holdings)))
	return subcommands.ExitSuccess
}

type addCmd struct {
	symbol   string
	quantity float64
	price    float64
	json     bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding" }
func (*addCmd) Usage() string {
	return `mrk add -symbol <symbol> -qty <quantity> -price <buy price> [-json]

  Appends a holding to the holdings file. It is given the next id,
  starting at 1.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol of the holding.")
	f.Float64Var(&c.quantity, "qty", 0, "Quantity held.")
	f.Float64Var(&c.price, "price", 0, "Unit buy price.")
	f.BoolVar(&c.json, "json", false, "Print the JSON form of the added holding.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeHoldings()
	if err != nil {
		return fail(err, "cannot load holdings")
	}
	h, err := store.Add(marketrisk.HoldingInput{Symbol: c.symbol, Quantity: c.quantity, BuyPrice: c.price})
	if err != nil {
		log.Error().Err(err).Msg("invalid holding")
		return subcommands.ExitUsageError
	}
	if err := EncodeHolding(h); err != nil {
		return fail(err, "cannot save holding")
	}

	if c.json {
		if err := printJSON(h); err != nil {
			return fail(err, "cannot encode holding")
		}
		return subcommands.ExitSuccess
	}
	fmt.Printf("Added holding #%d %s %s to %s\n", h.ID, h.Quantity, h.Symbol, *holdingsFile)
	return subcommands.ExitSuccess
}
