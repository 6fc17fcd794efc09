package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marketrisk/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `mrk assist [<question>...]

  Starts an interactive session with the AI assistant. The assistant computes
  on the price file and the holdings file.

  The arguments, if any, are asked as the first question.
  The Gemini API key is read from the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	m, err := DecodeMarket()
	if err != nil {
		return fail(err, "cannot load prices")
	}
	store, err := DecodeHoldings()
	if err != nil {
		return fail(err, "cannot load holdings")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err, "cannot initialize Gemini's client")
	}

	data := &agent.Data{Market: m, Holdings: store, Currency: *defaultCurrency}
	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(data), agent.NewTrader())

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
