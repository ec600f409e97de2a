package cmd

import (
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

func TestEditCmdJSON(t *testing.T) {
	tests := []struct {
		name      string
		old, edit string
		want      string
	}{
		{
			name: "units edited",
			old:  "10,500,50",
			edit: "12,500,50",
			want: `{"row":{"stock_code":"","stock_name":"Acme","units":"12","price":"500","cost":"","value":"60.00","absolute_change":"","transaction_attribution":""}}`,
		},
		{
			name: "units and value edited",
			old:  "10,500,50",
			edit: "0,500,80",
			want: `{
				"row":{"stock_code":"","stock_name":"Acme","units":"0","price":"500","cost":"","value":"80","absolute_change":"","transaction_attribution":""},
				"candidates":[
					{"units":"0","price":"500","value":"0.00"},
					{"units":"16.00","price":"500","value":"80"}
				]
			}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _ := isolate(t)
			status := run(t, &editCmd{}, "-old", tc.old, "-new", tc.edit, "-name", "Acme", "-o", "json")
			assert.Equal(t, subcommands.ExitSuccess, status)
			assert.JSONEq(t, tc.want, out.String())
		})
	}
}

func TestEditCmdMarkdown(t *testing.T) {
	out, _ := isolate(t)
	status := run(t, &editCmd{}, "-old", "10,500,50", "-new", "10,800,50", "-name", "Acme")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "Acme")
	assert.Contains(t, out.String(), "80.00")
}

func TestEditCmdUsage(t *testing.T) {
	tests := map[string][]string{
		"missing old": {"-new", "1,2,3"},
		"short new":   {"-old", "1,2,3", "-new", "1,2"},
		"bad output":  {"-old", "1,2,3", "-new", "1,2,3", "-o", "xml"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			if got := run(t, &editCmd{}, args...); got != subcommands.ExitUsageError {
				t.Errorf("edit %v = %v, want %v", args, got, subcommands.ExitUsageError)
			}
		})
	}
}
