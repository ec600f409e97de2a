package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// writeFile creates a file named name in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// isolate points the global flags at a missing config file and captures the
// command outputs.
func isolate(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvProvidersFile, "")
	t.Setenv(EnvExtended, "")

	oldConfig, oldProviders, oldExtended := *configFile, *providersFile, *extended
	oldStdout, oldStderr := stdout, stderr
	t.Cleanup(func() {
		*configFile, *providersFile, *extended = oldConfig, oldProviders, oldExtended
		stdout, stderr = oldStdout, oldStderr
	})

	*configFile = filepath.Join(t.TempDir(), "snap.yaml")
	*providersFile = ""
	*extended = false
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	stdout, stderr = out, errOut
	return out, errOut
}

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}
