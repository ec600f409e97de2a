package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/snapimport"
)

// openInput opens name, "-" or "" being stdin.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// readLines reads the lines of a snapshot file, a workbook or a text file in
// the given encoding.
func readLines(name, encoding string) ([]string, error) {
	r, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return snapimport.ReadWorkbookLines(r)
	}
	return snapimport.ReadLines(r, encoding)
}
