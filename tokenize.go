package snapimport

import "strings"

// SplitLine splits a single CSV line into its raw fields.
//
// A backslash escapes the next character, which is then taken literally. A
// double quote toggles quoting and is never part of a field. An unquoted
// comma ends the current field. The last field is emitted unless the line
// ends on an unquoted separator, so "a,b," yields two fields. An unterminated
// quote simply runs to the end of the line. An empty line has no fields.
func SplitLine(line string) []string {
	if line == "" {
		return nil
	}
	var (
		fields   []string
		b        strings.Builder
		escaped  bool
		quoted   bool
		separate bool // last processed character was an unquoted separator
	)
	for _, c := range line {
		separate = false
		switch {
		case escaped:
			b.WriteRune(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			fields = append(fields, b.String())
			b.Reset()
			separate = true
		default:
			b.WriteRune(c)
		}
	}
	if !separate {
		fields = append(fields, b.String())
	}
	return fields
}

// JoinLine is the inverse of SplitLine: it escapes backslashes, commas and
// quotes in every field and joins them with commas.
//
// A trailing empty field cannot survive a round trip, because SplitLine never
// emits a field after a final separator.
func JoinLine(fields []string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		for _, c := range f {
			switch c {
			case '\\', ',', '"':
				b.WriteByte('\\')
			}
			b.WriteRune(c)
		}
	}
	return b.String()
}
