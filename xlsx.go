package snapimport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbookLines reads the first sheet of an .xlsx workbook as CSV lines,
// so that spreadsheet exports go through the same import as text files. Cells
// are taken with their displayed text.
func ReadWorkbookLines(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	lines := make([]string, len(rows))
	for i, cells := range rows {
		lines[i] = JoinLine(cells)
	}
	return lines, nil
}
