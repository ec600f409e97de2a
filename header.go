package snapimport

import "regexp"

// headerRules recognises column names. Rules are tried in order and the first
// field with a matching pattern wins, so more specific fields come first: a
// "Stock Code" column is a stock code, not a stock name, and "Unit Price" is
// a price.
//
// Supporting a new provider export means adding a pattern here.
var headerRules = []struct {
	field    Field
	patterns []*regexp.Regexp
}{
	{FieldTransactionAttribution, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(change|transaction)[_ ](reason|attribution|)`),
	}},
	{FieldAccount, []*regexp.Regexp{
		regexp.MustCompile(`(?i)account(_(type|name))?`),
	}},
	{FieldProvider, []*regexp.Regexp{
		regexp.MustCompile(`(?i)provider|platform|dealer|broker|bank`),
	}},
	{FieldUser, []*regexp.Regexp{
		regexp.MustCompile(`(?i)user|person`),
	}},
	{FieldDate, []*regexp.Regexp{
		regexp.MustCompile(`(?i)date`),
	}},
	{FieldValue, []*regexp.Regexp{
		regexp.MustCompile(`(?i)value`),
	}},
	{FieldCost, []*regexp.Regexp{
		regexp.MustCompile(`(?i)cost`),
	}},
	{FieldPrice, []*regexp.Regexp{
		regexp.MustCompile(`(?i)price`),
	}},
	{FieldUnits, []*regexp.Regexp{
		regexp.MustCompile(`(?i)unit`),
		regexp.MustCompile(`(?i)quantity`),
	}},
	{FieldStockCode, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(stock|share|fund|holding|investment[_\-\s])code`),
		regexp.MustCompile(`(?i)(item)[_\-\s]code`),
		regexp.MustCompile(`(?i)isin`),
		regexp.MustCompile(`(?i)code`),
	}},
	{FieldStockName, []*regexp.Regexp{
		regexp.MustCompile(`(?i)stock|share|fund|holding|investment(([_\-\s]name)|$)`),
		regexp.MustCompile(`(?i)name$`),
		regexp.MustCompile(`(?i)item([_\-\s]name)?`),
	}},
}

// MatchHeader returns the field a column named name holds, or FieldIgnore.
// A column named after a field, as in exported files, is that field.
func MatchHeader(name string) Field {
	if f := ParseField(name); f != FieldIgnore {
		return f
	}
	for _, rule := range headerRules {
		for _, p := range rule.patterns {
			if p.MatchString(name) {
				return rule.field
			}
		}
	}
	return FieldIgnore
}

// requiredFields returns the fields a format must contain.
func requiredFields(extended bool) []Field {
	required := []Field{FieldStockName, FieldValue, FieldCost}
	if extended {
		required = append(required, FieldUser, FieldProvider, FieldAccount, FieldDate, FieldTransactionAttribution)
	}
	return required
}

// UnitsOrPrice is the missing entry reported when a format has neither units
// nor price.
const UnitsOrPrice = "units or price"

// ValidateFormat reports whether f holds every required field, and the
// missing ones otherwise. Extended mode also requires the ownership columns
// (user, provider, account, date and transaction_attribution).
func ValidateFormat(f Format, extended bool) (valid bool, missing []string) {
	for _, field := range requiredFields(extended) {
		if !f.Has(field) {
			missing = append(missing, string(field))
		}
	}
	if !f.Has(FieldUnits) && !f.Has(FieldPrice) {
		missing = append(missing, UnitsOrPrice)
	}
	return len(missing) == 0, missing
}

// HeaderMatch is the outcome of FindHeaderRow.
type HeaderMatch struct {
	Index   int      // line of the header, -1 if none validates
	Format  Format   // format read from the header line, nil if none validates
	Missing []string // when Index is -1, the fields missing from the closest line
}

// Found reports whether a header line was found.
func (m HeaderMatch) Found() bool { return m.Index >= 0 }

// FindHeaderRow returns the first line whose column names form a valid format.
//
// If no line validates, the returned Missing list is the one of the line that
// came closest, which is what the user needs to fix the file.
func FindHeaderRow(lines []string, extended bool) HeaderMatch {
	_, best := ValidateFormat(nil, extended)
	for i, line := range lines {
		names := SplitLine(line)
		f := make(Format, len(names))
		for j, name := range names {
			f[j] = MatchHeader(name)
		}
		valid, missing := ValidateFormat(f, extended)
		if valid {
			return HeaderMatch{Index: i, Format: f}
		}
		if len(missing) < len(best) {
			best = missing
		}
	}
	return HeaderMatch{Index: -1, Missing: best}
}
