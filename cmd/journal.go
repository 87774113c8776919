package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/diary"
	"github.com/etnz/diary/date"
	"github.com/etnz/diary/renderer"
	"github.com/google/subcommands"
)

const prompt = "> "

type journalCmd struct{}

func (*journalCmd) Name() string     { return "journal" }
func (*journalCmd) Synopsis() string { return "start an interactive journaling session" }
func (*journalCmd) Usage() string {
	return `diary journal [<ticker or company name>...]

  Starts an interactive session. Each line is a ticker or a company name to
  analyze. Commands:

    :note <text>  set the note appended to the saved summary
    :date <date>  set the day of the saved record (today by default)
    :save         save the last analysis to Notion
    bye           exit
`
}

func (c *journalCmd) SetFlags(f *flag.FlagSet) {}

func (c *journalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, ok := openJournal(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	r := newREPL(j, os.Stdin, os.Stdout)
	if err := r.Run(ctx, f.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, "Journal failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// repl is an interactive journaling session.
type repl struct {
	journal *diary.Journal
	session diary.Session
	r       *bufio.Reader
	w       io.Writer
}

func newREPL(j *diary.Journal, r io.Reader, w io.Writer) *repl {
	return &repl{journal: j, r: bufio.NewReader(r), w: w}
}

// Run reads and executes lines until "bye" or the end of input. prompts are
// executed first, as if typed by the user.
func (a *repl) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to your investment diary. Type a ticker or a company name, 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil && (err != io.EOF || input == "") {
				if err == io.EOF {
					fmt.Fprintln(a.w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		a.exec(ctx, input)
	}
}

// exec executes a single line. Failures are reported and the session goes on.
func (a *repl) exec(ctx context.Context, input string) {
	switch {
	case input == "":
	case input == ":save":
		msg, _ := save(ctx, a.journal, &a.session)
		fmt.Fprintln(a.w, msg)
	case input == ":note" || strings.HasPrefix(input, ":note "):
		if !a.session.Ready() {
			fmt.Fprintln(a.w, describe("", diary.ErrNothingToSave))
			return
		}
		a.session.Note = strings.TrimSpace(strings.TrimPrefix(input, ":note"))
		fmt.Fprintf(a.w, "Note set for %s.\n", a.session.Data.Ticker)
	case input == ":date" || strings.HasPrefix(input, ":date "):
		if !a.session.Ready() {
			fmt.Fprintln(a.w, describe("", diary.ErrNothingToSave))
			return
		}
		on, err := date.Parse(strings.TrimPrefix(input, ":date"))
		if err != nil {
			fmt.Fprintln(a.w, err)
			return
		}
		a.session.On = time.Time{}
		if !on.IsZero() {
			a.session.On = on.Time()
		}
		fmt.Fprintf(a.w, "Record date set to %s.\n", on)
	case strings.HasPrefix(input, ":"):
		fmt.Fprintf(a.w, "unknown command %q, use :note, :date, :save or bye\n", input)
	default:
		fmt.Fprintf(a.w, "Analyzing %s...\n", input)
		if err := a.journal.Analyze(ctx, input, &a.session); err != nil {
			fmt.Fprintln(a.w, describe(input, err))
			return
		}
		fprintMarkdown(a.w, renderer.StockMarkdown(&a.session))
	}
}
