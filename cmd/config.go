package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/snapimport"
	"gopkg.in/yaml.v3"
)

// Config is the content of the snap.yaml file.
type Config struct {
	Extended  bool             `yaml:"extended"`
	Encoding  string           `yaml:"encoding"`
	Account   int64            `yaml:"account"`
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig declares the column layout of a provider's export.
type ProviderConfig struct {
	Name   string `yaml:"name"`
	Format string `yaml:"csv_format"`
}

// DecodeConfig reads a configuration file. A missing file is an empty
// configuration.
func DecodeConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if *Verbose {
			log.Printf("warning, config file %q does not exist, using defaults", path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// loadConfig reads the configuration file and applies the global flags and
// environment on top of it.
func loadConfig() (*Config, error) {
	cfg, err := DecodeConfig(configPath())
	if err != nil {
		return nil, err
	}
	cfg.Extended = cfg.Extended || extendedMode()
	return cfg, nil
}

// providers returns the providers declared in the configuration followed by
// the ones of the providers file, if any.
func (c *Config) providers(file string) ([]snapimport.Provider, error) {
	var ps []snapimport.Provider
	for _, p := range c.Providers {
		ps = append(ps, snapimport.Provider{Name: p.Name, Format: snapimport.ParseFormat(p.Format)})
	}
	if file == "" {
		return ps, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	more, err := snapimport.ImportProviders(f)
	if err != nil {
		return nil, fmt.Errorf("reading providers file %q: %w", file, err)
	}
	return append(ps, more...), nil
}

// fallbacks returns the formats tried on files without a header row: every
// known provider format, then the export layout.
func (c *Config) fallbacks(file string) ([]snapimport.Format, error) {
	ps, err := c.providers(file)
	if err != nil {
		return nil, err
	}
	return append(snapimport.Fallbacks(ps), snapimport.DefaultFormat), nil
}
