package cmd

import (
	"flag"

	"github.com/etnz/diary/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in commander.
func Completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(commander.VisitAll),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs.VisitAll)}
	})
	if topics, err := docs.List(); err == nil {
		if c, ok := root.Sub["topic"]; ok {
			c.Args = predict.Set(append(topics, docs.Index))
		}
	}
	if c, ok := root.Sub["analyze"]; ok {
		c.Flags["status"] = predict.Set{"Analyzed", "Watching", "Bought", "Sold"}
	}
	return root
}

// flagPredictors returns the predictors of the flags visited by visitAll.
func flagPredictors(visitAll func(func(*flag.Flag))) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	visitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "config":
			flags[f.Name] = predict.Files("*.yaml")
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}
