package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/snapimport"
	"github.com/etnz/snapimport/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	old    string
	edited string
	name   string
	output string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "reconcile units, price and value after an edit" }
func (*editCmd) Usage() string {
	return `snap edit -old <units,price,value> -new <units,price,value> [-name <stock>] [-o md|json]

  Given a row before and after a user edit, recomputes the field the user did
  not touch so that value = units x price / 100 still holds. When the edit
  leaves several answers, all of them are listed.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.old, "old", "", "Units, price and value before the edit, comma separated")
	f.StringVar(&c.edited, "new", "", "Units, price and value after the edit, comma separated")
	f.StringVar(&c.name, "name", "", "Stock name, for display")
	f.StringVar(&c.output, "o", "md", "Output format: md or json")
}

// parseUnitsPriceValue reads a "units,price,value" triple into a row.
func parseUnitsPriceValue(s string) (snapimport.Row, error) {
	fields := snapimport.SplitLine(s)
	if len(fields) != 3 {
		return snapimport.Row{}, fmt.Errorf("want units,price,value, got %q", s)
	}
	return snapimport.Row{Units: fields[0], Price: fields[1], Value: fields[2]}, nil
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	old, err := parseUnitsPriceValue(c.old)
	if err != nil {
		failure("parsing -old: %v", err)
		return subcommands.ExitUsageError
	}
	edited, err := parseUnitsPriceValue(c.edited)
	if err != nil {
		failure("parsing -new: %v", err)
		return subcommands.ExitUsageError
	}
	old.StockName, edited.StockName = c.name, c.name

	outcome := snapimport.ResolveEdit(old, edited)
	switch c.output {
	case "json":
		if err := snapimport.EncodeRows(stdout, []snapimport.EditOutcome{outcome}); err != nil {
			failure("writing outcome: %v", err)
			return subcommands.ExitFailure
		}
	case "md":
		printMarkdown(renderer.EditMarkdown(old, outcome))
	default:
		failure("unknown output format %q", c.output)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
