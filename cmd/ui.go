package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// printMarkdown renders md for the terminal on stdout.
func printMarkdown(md string) { fprintMarkdown(stdout, md) }

// fprintMarkdown renders md for the terminal, or writes it unchanged if it
// cannot be rendered.
func fprintMarkdown(w io.Writer, md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		out = md
	}
	fmt.Fprint(w, out)
}

// success prints a status line on stderr, stdout being kept for data.
func success(format string, args ...any) {
	green.Fprintf(stderr, format+"\n", args...)
}

// failure prints an error line on stderr.
func failure(format string, args ...any) {
	red.Fprintf(stderr, "Error "+format+"\n", args...)
}
