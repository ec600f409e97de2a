package snapimport

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// lookupEncoding returns the text encoding called name. The empty name is
// UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// ReadLines reads the lines of a text file in the given encoding. A byte
// order mark, when present, takes precedence over the encoding and is
// removed. Line endings may be "\n" or "\r\n".
func ReadLines(r io.Reader, encodingName string) ([]string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	tr := transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))

	var lines []string
	scanner := bufio.NewScanner(tr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read lines: %w", err)
	}
	return lines, nil
}

// EncodeCSV writes rows to 'w' in format f: a header line with the column
// names, then one line per row. Ignored columns are left empty. The output
// reads back through ParseFile to the same rows.
func EncodeCSV(w io.Writer, f Format, rows []Row) error {
	if _, err := fmt.Fprintln(w, f.String()); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	fields := make([]string, len(f))
	for _, r := range rows {
		for i, field := range f {
			fields[i] = r.Get(field)
		}
		if _, err := fmt.Fprintln(w, JoinLine(fields)); err != nil {
			return fmt.Errorf("cannot write CSV row %q: %w", r.StockName, err)
		}
	}
	return nil
}
