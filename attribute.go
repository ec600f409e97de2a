package snapimport

// Holding is the latest known snapshot of a stock in an account.
type Holding struct {
	ID          int64
	AccountID   int64
	StockCode   string
	StockName   string
	Price       string
	Units       Number
	Attribution Attribution
}

// matches reports whether r is a new snapshot of the holding h.
func (h Holding) matches(r Row) bool {
	return (h.StockCode != "" && h.StockCode == r.StockCode) || h.StockName == r.StockName
}

// Delta is the change to record for one stock of an account.
type Delta struct {
	Row   Row
	Units Number // signed change in units since the latest snapshot
}

// Float64 returns the unit change as a float.
func (d Delta) Float64() float64 { return d.Units.Float64() }

// IsDisposal reports whether d records a holding that is no longer held.
func (d Delta) IsDisposal() bool { return d.Row.Units == "0" && d.Units.Decimal().IsNegative() }

// MarshalJSON writes the row members followed by "delta".
func (d Delta) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(d.Row)
	w.Append("delta", d.Units)
	return w.MarshalJSON()
}

// Attribute computes the unit deltas of rows, freshly imported for account,
// against the account's latest holdings. Holdings of other accounts in latest
// are ignored.
//
// A row matches the first holding with the same non empty stock code or the
// same stock name. A matched row takes the holding's attribution and its
// delta is the change in units. An unmatched row is a purchase: BuySell, all
// of its units. Every holding no row matched has been sold: it is returned as
// a zero row, keeping its last price, with a delta of minus its units.
//
// Deltas are returned in rows order, followed by the disposals in holdings
// order.
func Attribute(account int64, latest []Holding, rows []Row) []Delta {
	var prior []Holding
	for _, h := range latest {
		if h.AccountID == account {
			prior = append(prior, h)
		}
	}

	matched := make(map[int]bool)
	deltas := make([]Delta, 0, len(rows)+len(prior))
	for _, r := range rows {
		units, err := ParseNumber(r.Units)
		if err != nil {
			// imported rows always have numeric units
			units = N(0)
		}
		base, attribution := N(0), BuySell
		for i, h := range prior {
			if h.matches(r) {
				matched[i] = true
				base = h.Units
				if h.Attribution != "" {
					attribution = h.Attribution
				}
				break
			}
		}
		r.Attribution = attribution
		deltas = append(deltas, Delta{Row: r, Units: units.Sub(base)})
	}

	for i, h := range prior {
		if matched[i] {
			continue
		}
		deltas = append(deltas, Delta{
			Row: Row{
				StockCode:      h.StockCode,
				StockName:      h.StockName,
				Units:          "0",
				Price:          h.Price,
				Cost:           "0",
				Value:          "0",
				AbsoluteChange: "0",
				Attribution:    BuySell,
			},
			Units: h.Units.Neg(),
		})
	}
	return deltas
}
