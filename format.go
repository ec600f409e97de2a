package snapimport

import (
	"strings"
)

// Format maps column positions to fields. Columns mapped to FieldIgnore, or
// beyond the end of the Format, are not read.
type Format []Field

// DefaultFormat is the layout of snapshot CSV exports. Exported files have no
// ambiguity about their columns, so this layout is always a sensible fallback.
var DefaultFormat = ParseFormat("date,user,provider,stock_code,stock_name,region,sector,annual_fee,units,price,cost,value,absolute_change,normalised_performance")

// ParseFormat parses a comma separated list of column names, as stored in a
// provider's csv_format. Unknown names become FieldIgnore.
func ParseFormat(s string) Format {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	names := strings.Split(s, ",")
	f := make(Format, len(names))
	for i, name := range names {
		f[i] = ParseField(name)
	}
	return f
}

// String returns the comma separated column names of f.
func (f Format) String() string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = string(field)
	}
	return strings.Join(names, ",")
}

// Index returns the column of each field in f. The leftmost column wins when a
// field is present twice, FieldIgnore is never indexed.
func (f Format) Index() map[Field]int {
	idx := make(map[Field]int, len(f))
	for i, field := range f {
		if field == FieldIgnore {
			continue
		}
		if _, exists := idx[field]; !exists {
			idx[field] = i
		}
	}
	return idx
}

// Has reports whether field is mapped to some column.
func (f Format) Has(field Field) bool {
	for _, x := range f {
		if x == field {
			return true
		}
	}
	return false
}

// Record reads fields into a Record according to f. Empty or blank values are
// left out, numeric values lose their thousands separators.
func (f Format) Record(fields []string) Record {
	rec := make(Record)
	for field, i := range f.Index() {
		if i >= len(fields) {
			continue
		}
		v := strings.TrimSpace(fields[i])
		if v == "" {
			continue
		}
		if field.isNumeric() {
			v = stripSeparators(v)
		}
		rec[field] = v
	}
	return rec
}

// stripSeparators removes thousands separators and inner spaces from a
// numeric looking value.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', ' ':
			return -1
		}
		return r
	}, s)
}
