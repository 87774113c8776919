package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/diary"
	"github.com/etnz/diary/date"
	"github.com/etnz/diary/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	save   bool
	note   string
	status string
	date   string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a stock and optionally save it to the diary" }
func (*analyzeCmd) Usage() string {
	return `diary analyze [-save] [-note <text>] [-status <status>] [-d <date>] <ticker or company name>

  Resolves the input, fetches its market data and writes an AI insight.
  See 'diary topic journal'.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "save the analysis as a Notion record")
	f.StringVar(&c.note, "note", "", "personal note appended to the saved summary")
	f.StringVar(&c.status, "status", "", "status of the saved record (default from the configuration)")
	f.StringVar(&c.date, "d", "today", "day of the saved record: today, yesterday, -<days> or YYYY-MM-DD")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := strings.Join(f.Args(), " ")
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, "a ticker or a company name is required")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	j, ok := openJournal(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if c.status != "" {
		j.Status = c.status
	}

	s := &diary.Session{}
	if err := j.Analyze(ctx, input, s); err != nil {
		fmt.Fprintln(os.Stderr, describe(input, err))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockMarkdown(s))

	if !c.save {
		return subcommands.ExitSuccess
	}
	s.Note = c.note
	if !on.IsZero() {
		s.On = on.Time()
	}
	msg, err := save(ctx, j, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, msg)
		return subcommands.ExitFailure
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}

// save publishes s and returns the message reporting the outcome.
func save(ctx context.Context, j *diary.Journal, s *diary.Session) (string, error) {
	rec, err := j.Save(ctx, s)
	switch {
	case errors.Is(err, diary.ErrNothingToSave), errors.Is(err, diary.ErrNoPublisher):
		return describe(s.Resolved.Input, err), err
	case err != nil:
		return fmt.Sprintf("Save failed: %v", err), err
	}
	return fmt.Sprintf("Saved %s to the diary: %s", s.Data.Ticker, rec.URL), nil
}
