package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type resolveCmd struct{}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "convert a company name into a ticker" }
func (*resolveCmd) Usage() string {
	return `diary resolve <ticker or company name>

  Prints the ticker and the company name, as TICKER|Company.
  See 'diary topic tickers'.
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {}

func (c *resolveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := strings.Join(f.Args(), " ")
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, "a ticker or a company name is required")
		return subcommands.ExitUsageError
	}
	j, ok := openJournal(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	r := j.Resolver.Resolve(ctx, input)
	fmt.Printf("%s|%s\n", r.Ticker, r.CompanyName)
	return subcommands.ExitSuccess
}
