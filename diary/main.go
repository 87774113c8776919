// Command diary keeps an investment diary.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/diary/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	cmd.Completion(commander).Complete("diary")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
