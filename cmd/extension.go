package cmd

import (
	"errors"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment read by snap and handed over to extensions.
const (
	EnvConfig        = "SNAP_CONFIG"
	EnvProvidersFile = "SNAP_PROVIDERS_FILE"
	EnvExtended      = "SNAP_EXTENDED"
	EnvVerbose       = "SNAP_VERBOSE"
)

// extensionEnv returns the settings an extension inherits, as environment
// variables. They reflect the global flags as resolved by snap itself.
func extensionEnv() []string {
	settings := []struct{ name, value string }{
		{EnvConfig, configPath()},
		{EnvProvidersFile, providersPath()},
		{EnvExtended, strconv.FormatBool(extendedMode())},
		{EnvVerbose, strconv.FormatBool(*Verbose)},
	}
	env := os.Environ()
	for _, s := range settings {
		env = append(env, s.name+"="+s.value)
	}
	return env
}

// RunExtension runs the program snap-<name> found in PATH with args.
//
// found is false when there is no such program. Otherwise code is its exit
// code, or 1 if it could not be started.
func RunExtension(name string, args []string) (found bool, code int) {
	path, err := exec.LookPath("snap-" + name)
	if err != nil {
		if *Verbose {
			log.Printf("no extension for %q: %v", name, err)
		}
		return false, 0
	}

	ext := exec.Command(path, args...)
	ext.Stdin, ext.Stdout, ext.Stderr = os.Stdin, os.Stdout, os.Stderr
	ext.Env = extensionEnv()

	err = ext.Run()
	var exit *exec.ExitError
	switch {
	case err == nil:
		return true, 0
	case errors.As(err, &exit):
		return true, exit.ExitCode()
	default:
		failure("running extension %q: %v", path, err)
		return true, 1
	}
}
