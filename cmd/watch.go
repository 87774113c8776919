package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/diary"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
)

type watchCmd struct {
	spec string
	now  bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "analyze and save tickers on a schedule" }
func (*watchCmd) Usage() string {
	return `diary watch [-cron <spec>] [-now] <ticker or company name>...

  Analyzes and saves each input on a cron schedule, until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.spec, "cron", "0 18 * * 1-5", "cron schedule: minute hour day-of-month month day-of-week")
	f.BoolVar(&c.now, "now", false, "also run once immediately")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inputs := f.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "at least one ticker or company name is required")
		return subcommands.ExitUsageError
	}
	j, ok := openJournal(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	if j.Publisher == nil {
		fmt.Fprintln(os.Stderr, describe("", diary.ErrNoPublisher))
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := func() { runEntries(ctx, j, inputs) }
	sched := cron.New()
	id, err := sched.AddFunc(c.spec, job)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid schedule %q: %v\n", c.spec, err)
		return subcommands.ExitUsageError
	}
	if c.now {
		job()
	}
	sched.Start()
	log.Printf("watching %d tickers, next run at %v", len(inputs), sched.Entry(id).Next)

	<-ctx.Done()
	// wait for a running job to complete.
	<-sched.Stop().Done()
	return subcommands.ExitSuccess
}

// runEntries analyzes and saves each input in turn. Failures are logged and
// do not stop the others.
func runEntries(ctx context.Context, j *diary.Journal, inputs []string) (saved int) {
	for _, input := range inputs {
		if ctx.Err() != nil {
			return
		}
		s := &diary.Session{}
		if err := j.Analyze(ctx, input, s); err != nil {
			log.Printf("cannot analyze %q: %v", input, err)
			continue
		}
		rec, err := j.Save(ctx, s)
		if err != nil {
			log.Printf("cannot save %s: %v", s.Data.Ticker, err)
			continue
		}
		log.Printf("saved %s: %s", s.Data.Ticker, rec.URL)
		saved++
	}
	return saved
}
