// Command snap imports holdings exports into portfolio snapshots.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/snapimport/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"import": {
			Flags: map[string]complete.Predictor{
				"d":        predict.Something,
				"o":        predict.Set{"jsonl", "csv", "md"},
				"encoding": predict.Set{"utf-8", "windows-1252", "iso-8859-1", "utf-16"},
			},
			Args: predict.Or(predict.Files("*.csv"), predict.Files("*.xlsx")),
		},
		"attribute": {
			Flags: map[string]complete.Predictor{
				"holdings": predict.Files("*.json"),
				"account":  predict.Something,
				"o":        predict.Set{"jsonl", "md"},
			},
			Args: predict.Files("*.jsonl"),
		},
		"edit": {
			Flags: map[string]complete.Predictor{
				"old":  predict.Something,
				"new":  predict.Something,
				"name": predict.Something,
				"o":    predict.Set{"md", "json"},
			},
		},
		"formats": {
			Flags: map[string]complete.Predictor{"export": predict.Files("*.jsonl")},
		},
		"topic": {
			Flags: map[string]complete.Predictor{"l": predict.Nothing},
			Args:  predict.Set{"readme", "import", "formats", "attribute", "edit", "*"},
		},
	},
	Flags: map[string]complete.Predictor{
		"config":    predict.Files("*.yaml"),
		"providers": predict.Files("*.jsonl"),
		"extended":  predict.Nothing,
		"v":         predict.Nothing,
	},
}

func main() {
	completion.Complete("snap")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, cannot load .env: %v", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, "snap")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is one of the commander's commands.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
