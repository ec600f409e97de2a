package snapimport

import (
	"github.com/etnz/snapimport/date"
)

// StampDates returns rows with their dates in ISO format. Rows without a date
// get on, unless it is the zero date. Dates that do not parse are kept as is.
func StampDates(rows []Row, on date.Date) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		switch d, err := date.Parse(r.Date); {
		case r.Date == "" && !on.IsZero():
			r.Date = on.String()
		case err == nil:
			r.Date = d.String()
		}
		out[i] = r
	}
	return out
}
