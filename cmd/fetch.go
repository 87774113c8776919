package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/diary"
	"github.com/etnz/diary/renderer"
	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "display the market data of a ticker" }
func (*fetchCmd) Usage() string {
	return `diary fetch <ticker>

  Displays a week of prices and the latest news of a ticker, without analysis.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one ticker is required")
		return subcommands.ExitUsageError
	}
	cfg, ok := loadConfig()
	if !ok {
		return subcommands.ExitFailure
	}

	ticker := f.Arg(0)
	data, err := diary.NewFetcher(newProvider(cfg)).Fetch(ctx, ticker)
	if err != nil {
		fmt.Fprintln(os.Stderr, describe(ticker, err))
		return subcommands.ExitFailure
	}

	s := &diary.Session{}
	s.Reset(diary.ResolvedTicker{Ticker: data.Ticker, CompanyName: data.Ticker, Input: ticker})
	s.Data = data
	printMarkdown(renderer.StockMarkdown(s))
	return subcommands.ExitSuccess
}
