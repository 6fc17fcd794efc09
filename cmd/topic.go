package cmd

import (
	"context"
	"flag"

	"github.com/etnz/marketrisk/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `mrk topic [<topic>...]

  Show documentation for the given topics, '*' shows them all.
  Without topic, it lists the available ones.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail(err, "cannot read documentation")
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
