package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/etnz/snapimport"
	"github.com/google/subcommands"
)

type formatsCmd struct {
	export string
}

func (*formatsCmd) Name() string     { return "formats" }
func (*formatsCmd) Synopsis() string { return "list the known provider formats" }
func (*formatsCmd) Usage() string {
	return `snap formats [-export <file>]

  Lists the column layouts tried on files without a header row, in the order
  they are tried. With -export, writes the provider formats as JSONL instead
  ("-" for stdout), ready to be used as a -providers file.
`
}

func (c *formatsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.export, "export", "", "Write the provider formats as JSONL to this file")
}

func (c *formatsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		failure("loading config: %v", err)
		return subcommands.ExitFailure
	}
	providers, err := cfg.providers(providersPath())
	if err != nil {
		failure("loading providers: %v", err)
		return subcommands.ExitFailure
	}

	if c.export != "" {
		return c.exportProviders(providers)
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, p := range providers {
		if len(p.Format) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Format)
	}
	fmt.Fprintf(w, "%s\t%s\n", "(default)", snapimport.DefaultFormat)
	if err := w.Flush(); err != nil {
		failure("writing formats: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *formatsCmd) exportProviders(providers []snapimport.Provider) subcommands.ExitStatus {
	if c.export == "-" {
		if err := snapimport.ExportProviders(stdout, providers); err != nil {
			failure("writing providers: %v", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	out, err := os.Create(c.export)
	if err != nil {
		failure("creating %q: %v", c.export, err)
		return subcommands.ExitFailure
	}
	if err := snapimport.ExportProviders(out, providers); err != nil {
		out.Close()
		failure("writing providers: %v", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		failure("closing %q: %v", c.export, err)
		return subcommands.ExitFailure
	}
	success("exported %d providers to %s", len(providers), c.export)
	return subcommands.ExitSuccess
}
