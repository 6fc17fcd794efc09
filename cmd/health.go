package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type healthCmd struct {
	json bool
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "check that the price and holdings files decode" }
func (*healthCmd) Usage() string {
	return `mrk health [-json]

  Decodes the price and holdings files and reports their content. It exits
  with a failure status if any of them is invalid.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, `Print {"status":"ok"} on success.`)
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "prices are not healthy")
	}
	store, err := DecodeHoldings()
	if err != nil {
		return fail(err, "holdings are not healthy")
	}

	if c.json {
		if err := printJSON(map[string]string{"status": "ok"}); err != nil {
			return fail(err, "cannot encode status")
		}
		return subcommands.ExitSuccess
	}
	fmt.Printf("ok: %d symbols in %s, %d holdings in %s\n", len(m.Symbols()), *pricesFile, len(store.List()), *holdingsFile)
	return subcommands.ExitSuccess
}
