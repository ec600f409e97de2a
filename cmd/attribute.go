package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/snapimport"
	"github.com/etnz/snapimport/renderer"
	"github.com/google/subcommands"
)

type attributeCmd struct {
	holdings string
	account  int64
	output   string
}

func (*attributeCmd) Name() string { return "attribute" }
func (*attributeCmd) Synopsis() string {
	return "compute the unit changes between prior holdings and a new snapshot"
}
func (*attributeCmd) Usage() string {
	return `snap attribute [-holdings <file>] [-account <id>] [-o jsonl|md] [<rows_file>]

  Reads snapshot rows (JSONL, as printed by 'snap import', stdin by default) and
  compares them with the latest known holdings of the account. Prints one delta
  per holding that changed, appeared or disappeared.
`
}

func (c *attributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdings, "holdings", "", "JSON file of the latest known holdings (a list of holding objects)")
	f.Int64Var(&c.account, "account", 0, "Account the snapshot belongs to (defaults to the config file's account)")
	f.StringVar(&c.output, "o", "jsonl", "Output format: jsonl or md")
}

func (c *attributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		failure("attribute takes at most one rows file")
		return subcommands.ExitUsageError
	}
	if c.output != "jsonl" && c.output != "md" {
		failure("unknown output format %q", c.output)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		failure("loading config: %v", err)
		return subcommands.ExitFailure
	}
	account := c.account
	if account == 0 {
		account = cfg.Account
	}

	in, err := openInput(f.Arg(0))
	if err != nil {
		failure("opening rows: %v", err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	rows, err := snapimport.DecodeRows(in)
	if err != nil {
		failure("reading rows: %v", err)
		return subcommands.ExitFailure
	}

	var latest []snapimport.Holding
	if c.holdings != "" {
		hf, err := os.Open(c.holdings)
		if err != nil {
			failure("opening holdings: %v", err)
			return subcommands.ExitFailure
		}
		defer hf.Close()
		if latest, err = snapimport.DecodeHoldings(hf); err != nil {
			failure("reading holdings: %v", err)
			return subcommands.ExitFailure
		}
	}

	deltas := snapimport.Attribute(account, latest, rows)
	if c.output == "md" {
		printMarkdown(renderer.DeltasMarkdown(account, deltas))
		return subcommands.ExitSuccess
	}
	if err := snapimport.EncodeRows(stdout, deltas); err != nil {
		failure("writing deltas: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
