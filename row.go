package snapimport

import (
	"encoding/json"
	"strings"
)

// Record holds the raw values read from one CSV line, keyed by field. A field
// is present only if the line has a non blank value for it.
type Record map[Field]string

// Row is one completed snapshot entry.
//
// Numeric members keep the decimal text they were given, so that the user's
// precision is never changed by a round trip through the engine.
type Row struct {
	StockCode      string
	StockName      string
	Units          string
	Price          string // in hundredths of the currency unit
	Cost           string
	Value          string
	AbsoluteChange string
	Attribution    Attribution

	// Ownership columns, only set by extended imports.
	Date     string
	User     string
	Provider string
	Account  string
}

// Get returns the value of field f.
func (r Row) Get(f Field) string {
	switch f {
	case FieldStockCode:
		return r.StockCode
	case FieldStockName:
		return r.StockName
	case FieldUnits:
		return r.Units
	case FieldPrice:
		return r.Price
	case FieldCost:
		return r.Cost
	case FieldValue:
		return r.Value
	case FieldAbsoluteChange:
		return r.AbsoluteChange
	case FieldTransactionAttribution:
		return string(r.Attribution)
	case FieldDate:
		return r.Date
	case FieldUser:
		return r.User
	case FieldProvider:
		return r.Provider
	case FieldAccount:
		return r.Account
	}
	return ""
}

// Set sets field f to v. Setting FieldIgnore does nothing.
func (r *Row) Set(f Field, v string) {
	switch f {
	case FieldStockCode:
		r.StockCode = v
	case FieldStockName:
		r.StockName = v
	case FieldUnits:
		r.Units = v
	case FieldPrice:
		r.Price = v
	case FieldCost:
		r.Cost = v
	case FieldValue:
		r.Value = v
	case FieldAbsoluteChange:
		r.AbsoluteChange = v
	case FieldTransactionAttribution:
		if a, err := ParseAttribution(v); err == nil {
			r.Attribution = a
		} else {
			// kept verbatim, CheckTypes reports it
			r.Attribution = Attribution(v)
		}
	case FieldDate:
		r.Date = v
	case FieldUser:
		r.User = v
	case FieldProvider:
		r.Provider = v
	case FieldAccount:
		r.Account = v
	}
}

// FillGaps completes a record into a Row.
//
// Stock name, value and cost are required, and at least one of units and
// price: the other one is derived so that value = units × price / 100. The
// absolute change defaults to value - cost, the attribution to BuySell.
// Derived numbers have two decimal places, or more when two are not enough to
// keep the value right to the penny. A derivation whose inputs do not parse,
// or that would divide by zero, is left empty for CheckTypes to report.
func FillGaps(rec Record) (Row, error) {
	for _, f := range []Field{FieldStockName, FieldValue, FieldCost} {
		if _, ok := rec[f]; !ok {
			return Row{}, errMissingFields
		}
	}
	_, hasUnits := rec[FieldUnits]
	_, hasPrice := rec[FieldPrice]
	if !hasUnits && !hasPrice {
		return Row{}, errUnitsOrPrice
	}

	var r Row
	for f, v := range rec {
		r.Set(f, v)
	}
	if !hasPrice {
		r.Price = deriveMember(rec, FieldPrice)
	}
	if !hasUnits {
		r.Units = deriveMember(rec, FieldUnits)
	}
	if _, ok := rec[FieldAbsoluteChange]; !ok {
		value, err1 := ParseNumber(rec[FieldValue])
		cost, err2 := ParseNumber(rec[FieldCost])
		if err1 == nil && err2 == nil {
			r.AbsoluteChange = value.Sub(cost).Round(2).String()
		}
	}
	if _, ok := rec[FieldTransactionAttribution]; !ok {
		r.Attribution = BuySell
	}
	return r, nil
}

// deriveMember computes f, units or price, from the two other members of the
// triple in rec. It returns "" if they do not parse or the divisor is zero.
func deriveMember(rec Record, f Field) string {
	var t triple
	for _, in := range []Field{FieldUnits, FieldPrice, FieldValue} {
		if in == f {
			continue
		}
		n, err := ParseNumber(rec[in])
		if err != nil {
			return ""
		}
		*t.get(in) = n
	}
	t, ok := t.solve(f, 2)
	if !ok {
		return ""
	}
	return t.get(f).String()
}

// CheckTypes returns the numeric values of r that do not parse, in units,
// cost, price, value order, followed by an unknown attribution if any.
func CheckTypes(r Row) []*TypeError {
	var errs []*TypeError
	for _, f := range numericFields {
		if _, err := ParseNumber(r.Get(f)); err != nil {
			errs = append(errs, &TypeError{Field: f, Raw: r.Get(f)})
		}
	}
	switch r.Attribution {
	case BuySell, IncomeFee:
	default:
		errs = append(errs, &TypeError{Field: FieldTransactionAttribution, Raw: string(r.Attribution)})
	}
	return errs
}

// IsTotal reports whether r is an export summary line rather than a holding.
func (r Row) IsTotal() bool { return strings.EqualFold(strings.TrimSpace(r.StockName), "total") }

// Numbers returns the parsed units, price and value of r.
func (r Row) Numbers() (units, price, value Number, err error) {
	if units, err = ParseNumber(r.Units); err != nil {
		return
	}
	if price, err = ParseNumber(r.Price); err != nil {
		return
	}
	value, err = ParseNumber(r.Value)
	return
}

// MarshalJSON writes r with the canonical field order. Ownership columns are
// omitted when empty.
func (r Row) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(string(FieldStockCode), r.StockCode)
	w.Append(string(FieldStockName), r.StockName)
	w.Append(string(FieldUnits), r.Units)
	w.Append(string(FieldPrice), r.Price)
	w.Append(string(FieldCost), r.Cost)
	w.Append(string(FieldValue), r.Value)
	w.Append(string(FieldAbsoluteChange), r.AbsoluteChange)
	w.Append(string(FieldTransactionAttribution), r.Attribution)
	w.Optional(string(FieldDate), r.Date)
	w.Optional(string(FieldUser), r.User)
	w.Optional(string(FieldProvider), r.Provider)
	w.Optional(string(FieldAccount), r.Account)
	return w.MarshalJSON()
}

// UnmarshalJSON reads r from an object keyed by field names. Numbers may be
// given as JSON numbers or strings.
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Row{}
	for key, val := range raw {
		f := ParseField(key)
		if f == FieldIgnore {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			// plain JSON numbers are kept with their literal text
			var num json.Number
			if err := json.Unmarshal(val, &num); err != nil {
				return err
			}
			s = num.String()
		}
		r.Set(f, s)
	}
	return nil
}
