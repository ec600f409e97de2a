// Package cmd implements the snap command-line tool.
package cmd

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "snapshots")
	c.Register(&attributeCmd{}, "snapshots")
	c.Register(&editCmd{}, "snapshots")
	c.Register(&formatsCmd{}, "snapshots")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file (defaults to $"+EnvConfig+" or snap.yaml)")
var providersFile = flag.String("providers", "", "Path to a provider formats file (JSONL), added to the configured providers (defaults to $"+EnvProvidersFile+")")
var extended = flag.Bool("extended", false, "Require the ownership columns (user, provider, account, transaction attribution)")
var Verbose = flag.Bool("v", false, "Log the lines skipped while importing")

// stdout and stderr are where commands print, tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// configPath returns the configuration file to load.
func configPath() string {
	if *configFile != "" {
		return *configFile
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return "snap.yaml"
}

// providersPath returns the provider formats file, or "" if there is none.
func providersPath() string {
	if *providersFile != "" {
		return *providersFile
	}
	return os.Getenv(EnvProvidersFile)
}

// extendedMode reports whether the flag or the environment asks for the
// extended mode. The configuration file can also turn it on.
func extendedMode() bool {
	if *extended {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvExtended))
	return v
}
