package snapimport

import (
	"log"
)

// Importer imports snapshot files.
// Its zero value imports files that have a header row, in basic mode.
type Importer struct {
	// Fallbacks are the known provider formats, in priority order, tried on
	// files with no recognisable header row.
	Fallbacks []Format
	// Extended requires the ownership columns as well.
	Extended bool
	// Logger, when set, receives a line for every skipped input line.
	Logger *log.Logger
}

// ParseFile imports lines with the given fallback formats.
// See Importer.Import.
func ParseFile(lines []string, fallbacks []Format, extended bool) ([]Row, error) {
	imp := Importer{Fallbacks: fallbacks, Extended: extended}
	return imp.Import(lines)
}

// Import parses the lines of a holdings export into rows.
//
// The first line that reads as a valid header decides the format of the
// lines below it. Without such a line, each fallback format is tried in turn
// on every line, and the first one producing rows wins.
//
// Lines that cannot be completed (blank lines, notes, sub headers) are
// skipped, and so are rows named "total". On failure the error is an
// *ImportError listing every problem.
func (imp Importer) Import(lines []string) ([]Row, error) {
	m := FindHeaderRow(lines, imp.Extended)
	if m.Found() {
		imp.logf("header found on line %d: %v", m.Index+1, m.Format)
		return imp.parseContent(lines[m.Index+1:], m.Index+1, m.Format)
	}
	for _, f := range imp.Fallbacks {
		rows, err := imp.parseContent(lines, 0, f)
		if err == nil {
			imp.logf("no header found, using fallback format %v", f)
			return rows, nil
		}
	}
	errs := make([]error, len(m.Missing))
	for i, field := range m.Missing {
		errs[i] = &FormatError{Field: field}
	}
	return nil, &ImportError{Errs: errs}
}

// parseContent turns lines into rows using format f. offset is the index of
// the first line in the file.
func (imp Importer) parseContent(lines []string, offset int, f Format) ([]Row, error) {
	var rows []Row
	for i, line := range lines {
		r, err := FillGaps(f.Record(SplitLine(line)))
		if err != nil {
			imp.logf("skipping line %d: %v", offset+i+1, err)
			continue
		}
		if r.IsTotal() {
			continue
		}
		rows = append(rows, r)
	}

	var errs []error
	for _, r := range rows {
		for _, err := range CheckTypes(r) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, &ImportError{Errs: errs}
	}
	if len(rows) == 0 {
		return nil, &ImportError{Errs: []error{&EmptyResultError{}}}
	}
	return rows, nil
}

func (imp Importer) logf(format string, args ...any) {
	if imp.Logger != nil {
		imp.Logger.Printf(format, args...)
	}
}
