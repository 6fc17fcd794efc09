// Command mrk computes risk analytics on daily price series and values a
// portfolio of holdings.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/marketrisk/cmd"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Exits when called by the shell for completion.
	cmd.Completion(commander).Complete("mrk")

	flag.Parse()
	if err := cmd.SetupLogging(); err != nil {
		log.Error().Err(err).Msg("cannot setup logging")
		os.Exit(int(subcommands.ExitUsageError))
	}

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if ok, code := cmd.RunExtension(sub, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether c has a subcommand called name.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
