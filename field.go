package snapimport

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Field is the semantic name of a snapshot column.
type Field string

const (
	FieldStockName              Field = "stock_name"
	FieldStockCode              Field = "stock_code"
	FieldUnits                  Field = "units"
	FieldPrice                  Field = "price"
	FieldCost                   Field = "cost"
	FieldValue                  Field = "value"
	FieldAbsoluteChange         Field = "absolute_change"
	FieldDate                   Field = "date"
	FieldUser                   Field = "user"
	FieldProvider               Field = "provider"
	FieldAccount                Field = "account"
	FieldTransactionAttribution Field = "transaction_attribution"
	FieldIgnore                 Field = "_" // column is not used
)

// Fields lists every known field in canonical order, FieldIgnore excluded.
var Fields = []Field{
	FieldStockName, FieldStockCode, FieldUnits, FieldPrice, FieldCost, FieldValue,
	FieldAbsoluteChange, FieldDate, FieldUser, FieldProvider, FieldAccount,
	FieldTransactionAttribution,
}

// numericFields are checked by CheckTypes, in reporting order.
var numericFields = []Field{FieldUnits, FieldCost, FieldPrice, FieldValue}

// isNumeric reports whether thousands separators must be stripped from f.
func (f Field) isNumeric() bool {
	switch f {
	case FieldUnits, FieldPrice, FieldCost, FieldValue, FieldAbsoluteChange:
		return true
	}
	return false
}

// ParseField returns the field named s, or FieldIgnore if s names no field.
func ParseField(s string) Field {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fields {
		if string(f) == s {
			return f
		}
	}
	return FieldIgnore
}

// Attribution classifies the change recorded by a snapshot row.
type Attribution string

const (
	BuySell   Attribution = "BuySell"
	IncomeFee Attribution = "IncomeFee"
)

// ParseAttribution parses an attribution leniently: case, spaces and
// punctuation are ignored, so "buy/sell" and "Income Fee" are accepted.
func ParseAttribution(s string) (Attribution, error) {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
	switch key {
	case "buysell", "buy", "sell":
		return BuySell, nil
	case "incomefee", "income", "fee", "dividend":
		return IncomeFee, nil
	}
	return "", fmt.Errorf("invalid transaction attribution %q", s)
}

func (a Attribution) String() string { return string(a) }

func (a *Attribution) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAttribution(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
