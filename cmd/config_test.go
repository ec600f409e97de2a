package cmd

import (
	"path/filepath"
	"testing"

	"github.com/etnz/snapimport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	path := writeFile(t, "snap.yaml", `extended: true
encoding: windows-1252
account: 42
providers:
  - name: Hargreaves
    csv_format: stock_name,stock_code,units,price,value,cost
  - name: Manual
`)
	cfg, err := DecodeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Extended: true,
		Encoding: "windows-1252",
		Account:  42,
		Providers: []ProviderConfig{
			{Name: "Hargreaves", Format: "stock_name,stock_code,units,price,value,cost"},
			{Name: "Manual"},
		},
	}, cfg)
}

func TestDecodeConfigMissing(t *testing.T) {
	cfg, err := DecodeConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestDecodeConfigInvalid(t *testing.T) {
	_, err := DecodeConfig(writeFile(t, "snap.yaml", "providers: [\n"))
	assert.Error(t, err)
}

func TestConfigFallbacks(t *testing.T) {
	cfg := &Config{Providers: []ProviderConfig{
		{Name: "A", Format: "stock_name,units,value,cost"},
		{Name: "Manual"},
	}}
	file := writeFile(t, "providers.jsonl", `{"name":"B","csv_format":"stock_code,price,units"}`+"\n")

	fallbacks, err := cfg.fallbacks(file)
	require.NoError(t, err)
	require.Len(t, fallbacks, 3)
	assert.Equal(t, "stock_name,units,value,cost", fallbacks[0].String())
	assert.Equal(t, "stock_code,price,units", fallbacks[1].String())
	assert.Equal(t, snapimport.DefaultFormat, fallbacks[2])

	_, err = cfg.fallbacks(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestLoadConfigExtendedFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvExtended, "true")
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Extended)
}
