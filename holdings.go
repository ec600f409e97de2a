package snapimport

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// holdingPaths locate the members of a latest snapshot record, as served by
// the snapshots API.
var holdingPaths = struct {
	id, account, code, name, price, units, attribution string
}{
	id:          "$.id",
	account:     "$.account_id",
	code:        "$.stock.stock_code",
	name:        "$.stock.name",
	price:       "$.price",
	units:       "$.units",
	attribution: "$.transaction_attribution",
}

// DecodeHoldings reads the JSON array of latest snapshots of some accounts.
//
// Only the members the differencer needs are read; stock code and
// attribution are optional, numbers may be JSON numbers or strings.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var records []any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot parse holdings: %w", err)
	}

	holdings := make([]Holding, 0, len(records))
	for i, rec := range records {
		h, err := decodeHolding(rec)
		if err != nil {
			return nil, fmt.Errorf("holding #%d: %w", i, err)
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

func decodeHolding(rec any) (h Holding, err error) {
	var s string
	if s, err = jsonString(rec, holdingPaths.id, true); err != nil {
		return
	}
	if h.ID, err = strconv.ParseInt(s, 10, 64); err != nil {
		return h, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if s, err = jsonString(rec, holdingPaths.account, true); err != nil {
		return
	}
	if h.AccountID, err = strconv.ParseInt(s, 10, 64); err != nil {
		return h, fmt.Errorf("invalid account_id %q: %w", s, err)
	}
	if h.StockCode, err = jsonString(rec, holdingPaths.code, false); err != nil {
		return
	}
	if h.StockName, err = jsonString(rec, holdingPaths.name, true); err != nil {
		return
	}
	if h.Price, err = jsonString(rec, holdingPaths.price, true); err != nil {
		return
	}
	if s, err = jsonString(rec, holdingPaths.units, true); err != nil {
		return
	}
	if h.Units, err = ParseNumber(s); err != nil {
		return
	}
	if s, err = jsonString(rec, holdingPaths.attribution, false); err != nil {
		return
	}
	if s != "" {
		if h.Attribution, err = ParseAttribution(s); err != nil {
			return
		}
	}
	return h, nil
}

// jsonString evaluates path on v and returns the result as text. A missing or
// null optional member is "".
func jsonString(v any, path string, required bool) (string, error) {
	jval, err := jsonpath.Get(path, v)
	if err != nil {
		if required {
			return "", fmt.Errorf("error reading %q: %w", path, err)
		}
		return "", nil
	}
	// jsonpath may wrap a single answer in a list: keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch x := jval.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case nil:
		if required {
			return "", fmt.Errorf("error reading %q: null value", path)
		}
		return "", nil
	}
	return "", fmt.Errorf("error reading %q: unexpected %T", path, jval)
}
