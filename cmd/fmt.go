package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/marketrisk"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the price file into the canonical JSONL form"
}
func (*fmtCmd) Usage() string {
	return `mrk fmt [-o <file.jsonl>]

  Validates the price file, CSV or JSONL, and prints it in the canonical
  JSONL form: one line per day in chronological order, symbols in
  alphabetical order.

Usage Examples:
# Converts a CSV price file into JSONL.
$ mrk -prices prices.csv fmt -o prices.jsonl

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file. Prints to the standard output by default.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "cannot load prices")
	}

	var w io.Writer = os.Stdout
	if p.outputFile != "" {
		file, err := os.Create(p.outputFile)
		if err != nil {
			return fail(err, "cannot create output file")
		}
		defer file.Close()
		w = file
	}

	bw := bufio.NewWriter(w)
	if err := marketrisk.EncodeMarketJSONL(bw, m); err != nil {
		return fail(err, "cannot encode prices")
	}
	if err := bw.Flush(); err != nil {
		return fail(err, "cannot write prices")
	}
	if p.outputFile != "" {
		log.Info().Str("from", *pricesFile).Str("to", p.outputFile).Strs("symbols", m.Symbols()).Msg("prices formatted")
		fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s into %s.\n", *pricesFile, p.outputFile)
	}
	return subcommands.ExitSuccess
}
