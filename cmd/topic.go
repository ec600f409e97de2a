package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/snapimport/docs"
	"github.com/google/subcommands"
)

// topicCmd prints pages of the user manual.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the user manual" }
func (*topicCmd) Usage() string {
	return `snap topic [-l] [<topic>...]

  Prints the manual pages named as arguments, the index when none is given,
  or the whole manual for "*".
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topic names only")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	all, err := docs.GetAllTopics()
	if err != nil {
		failure("listing topics: %v", err)
		return subcommands.ExitFailure
	}
	if c.list {
		stdout.Write([]byte(strings.Join(all, "\n") + "\n"))
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	md, err := docs.GetTopics(names...)
	if err != nil {
		failure("%v (known topics: %s)", err, strings.Join(all, ", "))
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
