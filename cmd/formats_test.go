package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/snapimport"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatsCmdList(t *testing.T) {
	out, _ := isolate(t)
	*configFile = writeFile(t, "snap.yaml", `providers:
  - name: Hargreaves
    csv_format: stock_name,stock_code,units,price,value,cost
  - name: Manual
`)

	status := run(t, &formatsCmd{})

	require.Equal(t, subcommands.ExitSuccess, status)
	want := "Hargreaves  stock_name,stock_code,units,price,value,cost\n" +
		"(default)   " + snapimport.DefaultFormat.String() + "\n"
	assert.Equal(t, want, out.String())
}

func TestFormatsCmdExport(t *testing.T) {
	out, _ := isolate(t)
	*configFile = writeFile(t, "snap.yaml", `providers:
  - name: Hargreaves
    csv_format: stock_name,stock_code,units,price,value,cost
`)
	*providersFile = writeFile(t, "providers.jsonl", `{"name":"Vanguard","csv_format":"date,stock_name,units,value,cost"}`+"\n")
	want := `{"name":"Hargreaves","csv_format":"stock_name,stock_code,units,price,value,cost"}
{"name":"Vanguard","csv_format":"date,stock_name,units,value,cost"}
`

	require.Equal(t, subcommands.ExitSuccess, run(t, &formatsCmd{}, "-export", "-"))
	assert.Equal(t, want, out.String())

	file := filepath.Join(t.TempDir(), "exported.jsonl")
	require.Equal(t, subcommands.ExitSuccess, run(t, &formatsCmd{}, "-export", file))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestFormatsCmdBadProvidersFile(t *testing.T) {
	isolate(t)
	*providersFile = writeFile(t, "providers.jsonl", "{not json}\n")
	assert.Equal(t, subcommands.ExitFailure, run(t, &formatsCmd{}))
}
