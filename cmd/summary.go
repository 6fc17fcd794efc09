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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	symbol   string
	price    float64
	priceSet bool
	bySymbol bool
	currency string
	json     bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the valuation of the holdings" }
func (*summaryCmd) Usage() string {
	return `mrk summary [-symbol <symbol> | -price <price> | -by-symbol] [-c <currency>] [-json]

  Displays the total invested, the current value and the profit and loss of
  the holdings.

  By default every holding is valued at the same price: the latest close of
  the selected symbol, or -price. With -by-symbol each holding is valued at
  the latest close of its own symbol.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol whose latest close values the holdings. Defaults to the only symbol of the price file.")
	f.Float64Var(&c.price, "price", 0, "Current price of the holdings, overrides -symbol.")
	f.BoolVar(&c.bySymbol, "by-symbol", false, "Value each holding at the latest close of its own symbol.")
	f.StringVar(&c.currency, "c", "", "Currency of the valuation. Defaults to the global -currency.")
	f.BoolVar(&c.json, "json", false, "Print the JSON form of the summary.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currency := c.currency
	if currency == "" {
		currency = *defaultCurrency
	}
	f.Visit(func(fl *flag.Flag) { c.priceSet = c.priceSet || fl.Name == "price" })
	if c.priceSet {
		if _, err := c.uniformPrice(currency); err != nil {
			log.Error().Err(err).Msg("invalid -price")
			return subcommands.ExitUsageError
		}
	}

	store, err := DecodeHoldings()
	if err != nil {
		return fail(err, "cannot load holdings")
	}
	holdings := store.List()

	summary, pricing, err := c.valuate(holdings, currency)
	if err != nil {
		return fail(err, "cannot value the holdings")
	}

	if c.json {
		if err := printJSON(summary); err != nil {
			return fail(err, "cannot encode summary")
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(summary, pricing, holdings)))
	return subcommands.ExitSuccess
}

// valuate values holdings according to the flags, and describes how it was priced.
func (c *summaryCmd) valuate(holdings []marketrisk.Holding, currency string) (marketrisk.PortfolioSummary, string, error) {
	if c.priceSet {
		price, err := c.uniformPrice(currency)
		if err != nil {
			return marketrisk.PortfolioSummary{}, "", err
		}
		s, err := marketrisk.Valuate(holdings, price)
		return s, "a uniform price of " + price.String(), err
	}

	m, err := DecodeMarket()
	if err != nil {
		return marketrisk.PortfolioSummary{}, "", err
	}
	if c.bySymbol {
		s, err := marketrisk.ValuateBySymbol(holdings, m, currency)
		return s, "the latest close of each symbol", err
	}

	series, err := m.Series(c.symbol)
	if err != nil {
		return marketrisk.PortfolioSummary{}, "", err
	}
	last, ok := series.Latest()
	if !ok {
		return marketrisk.PortfolioSummary{}, "", marketrisk.ErrInsufficientData
	}
	price, err := marketrisk.NewMoney(last.Close, currency)
	if err != nil {
		return marketrisk.PortfolioSummary{}, "", err
	}
	log.Debug().Str("symbol", series.Symbol()).Stringer("on", last.Date).Float64("close", last.Close).Msg("uniform price")
	s, err := marketrisk.Valuate(holdings, price)
	return s, "the latest close of " + series.Symbol() + " on " + last.Date.String(), err
}

// uniformPrice returns the -price flag as money, rejecting negative or non-finite values.
func (c *summaryCmd) uniformPrice(currency string) (marketrisk.Money, error) {
	price, err := marketrisk.NewMoney(c.price, currency)
	if err != nil {
		return marketrisk.Money{}, err
	}
	if price.IsNegative() {
		return marketrisk.Money{}, fmt.Errorf("price %v is negative: %w", c.price, marketrisk.ErrInvalidInput)
	}
	return price, nil
}
