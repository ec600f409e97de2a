package cmd

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/etnz/snapimport"
	"github.com/etnz/snapimport/date"
	"github.com/etnz/snapimport/renderer"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	date     string
	output   string
	encoding string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a holdings export into snapshot rows" }
func (*importCmd) Usage() string {
	return `snap import [-d <date>] [-o jsonl|csv|md] [-encoding <name>] <file>

  Reads a provider's holdings export (.csv or .xlsx, "-" for stdin), finds its
  header row or a known provider format, and prints one snapshot row per
  holding. Every problem found is reported at once.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Snapshot date stamped on rows that have none. See the user manual for supported date formats.")
	f.StringVar(&c.output, "o", "jsonl", "Output format: jsonl, csv, or md")
	f.StringVar(&c.encoding, "encoding", "", "Character encoding of a text file (utf-8, windows-1252, ...). Overrides the config file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		failure("import requires exactly one file argument")
		return subcommands.ExitUsageError
	}
	file := f.Arg(0)

	var on date.Date
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			failure("parsing date: %v", err)
			return subcommands.ExitUsageError
		}
	}
	switch c.output {
	case "jsonl", "csv", "md":
	default:
		failure("unknown output format %q", c.output)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		failure("loading config: %v", err)
		return subcommands.ExitFailure
	}
	fallbacks, err := cfg.fallbacks(providersPath())
	if err != nil {
		failure("loading providers: %v", err)
		return subcommands.ExitFailure
	}
	encoding := cfg.Encoding
	if c.encoding != "" {
		encoding = c.encoding
	}

	lines, err := readLines(file, encoding)
	if err != nil {
		failure("reading %q: %v", file, err)
		return subcommands.ExitFailure
	}

	imp := snapimport.Importer{Fallbacks: fallbacks, Extended: cfg.Extended}
	if *Verbose {
		imp.Logger = log.Default()
	}
	rows, err := imp.Import(lines)
	if err != nil {
		var ie *snapimport.ImportError
		if errors.As(err, &ie) {
			fprintMarkdown(stderr, renderer.ErrorsMarkdown(file, ie.Messages()))
		} else {
			failure("importing %q: %v", file, err)
		}
		return subcommands.ExitFailure
	}
	rows = snapimport.StampDates(rows, on)

	switch c.output {
	case "csv":
		err = snapimport.EncodeCSV(stdout, snapimport.DefaultFormat, rows)
	case "md":
		printMarkdown(renderer.RowsMarkdown(file, rows))
	default:
		err = snapimport.EncodeRows(stdout, rows)
	}
	if err != nil {
		failure("writing rows: %v", err)
		return subcommands.ExitFailure
	}
	success("imported %d rows from %s", len(rows), file)
	return subcommands.ExitSuccess
}
