package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/marketrisk/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// symbols predicts the symbols of the price file.
var symbols = complete.PredictFunc(func(prefix string) []string {
	m, err := DecodeMarket()
	if err != nil {
		return nil
	}
	var res []string
	for _, s := range m.Symbols() {
		if strings.HasPrefix(s, strings.ToUpper(prefix)) {
			res = append(res, s)
		}
	}
	return res
})

// topicNames returns the topics accepted by the topic command.
func topicNames() []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, docs.Index, "*")
}

// predictor returns the predictor of the flag f of the subcommand name.
// Boolean flags take no value and get a nil predictor.
func predictor(name string, f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return nil
	}
	switch f.Name {
	case "prices":
		return predict.Or(predict.Files("*.csv"), predict.Files("*.jsonl"))
	case "holdings":
		return predict.Files("*.jsonl")
	case "symbol":
		return symbols
	case "kind":
		return predict.Set{"equity", "price"}
	case "log-level":
		return predict.Set{"debug", "info", "warn", "error"}
	case "o":
		if name == "chart" {
			return predict.Files("*.png")
		}
		return predict.Files("*.jsonl")
	}
	return predict.Something
}

// Completion returns the shell completion of the commands registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictor("", f)
	})
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictor(cmd.Name(), f)
		})
		if cmd.Name() == "topic" {
			sub.Args = predict.Set(topicNames())
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
