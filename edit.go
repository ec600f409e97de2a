package snapimport

// changeSet tells which members of the units/price/value triple an edit
// changed.
type changeSet uint8

const (
	unitsChanged changeSet = 1 << iota
	priceChanged
	valueChanged

	allChanged = unitsChanged | priceChanged | valueChanged
)

// maxPlaces bounds the precision of a recomputed number.
const maxPlaces = 8

// triple is a parsed units/price/value triple.
type triple struct {
	units, price, value Number
}

func parseTriple(r Row) (t triple, err error) {
	t.units, t.price, t.value, err = r.Numbers()
	return
}

// get returns the member of t for f, which must be units, price or value.
func (t *triple) get(f Field) *Number {
	switch f {
	case FieldUnits:
		return &t.units
	case FieldPrice:
		return &t.price
	}
	return &t.value
}

// consistent reports whether value = units × price / 100 at two decimals.
func (t triple) consistent() bool { return valueOf(t.units, t.price).EqualAt(t.value, 2) }

// exact returns the exact value of f that makes t consistent, given the two
// other members. ok is false if that would divide by zero.
func (t triple) exact(f Field) (Number, bool) {
	switch f {
	case FieldUnits:
		return unitsOf(t.value, t.price)
	case FieldPrice:
		return priceOf(t.value, t.units)
	}
	return valueOf(t.units, t.price), true
}

// solve recomputes f from the two other members of t. The result has the
// fewest decimal places, at least minPlaces, that make t consistent.
func (t triple) solve(f Field, minPlaces int32) (triple, bool) {
	n, ok := t.exact(f)
	if !ok {
		return t, false
	}
	minPlaces = max(minPlaces, 2)
	for places := minPlaces; places <= maxPlaces; places++ {
		*t.get(f) = n.Round(places)
		if t.consistent() {
			return t, true
		}
	}
	*t.get(f) = n.Round(max(minPlaces, maxPlaces))
	return t, true
}

// Assignment is the value a candidate gives to one field.
type Assignment struct {
	Field Field
	Value Number
}

// Candidate is one consistent completion of an edit: units, price and value,
// in that order.
type Candidate [3]Assignment

func newCandidate(t triple) Candidate {
	return Candidate{
		{Field: FieldUnits, Value: t.units},
		{Field: FieldPrice, Value: t.price},
		{Field: FieldValue, Value: t.value},
	}
}

// Apply returns r with the candidate's values.
func (c Candidate) Apply(r Row) Row {
	for _, a := range c {
		r.Set(a.Field, a.Value.String())
	}
	return r
}

// MarshalJSON writes c as an object keyed by field.
func (c Candidate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, a := range c {
		w.Append(string(a.Field), a.Value)
	}
	return w.MarshalJSON()
}

// EditOutcome is the result of ResolveEdit.
type EditOutcome struct {
	// Row is the edited row, with any deterministic recomputation applied.
	Row Row
	// Candidates are the possible completions of an ambiguous edit, in
	// presentation order. Empty when Row is final.
	Candidates []Candidate
}

// Ambiguous reports whether the user has to pick a candidate.
func (o EditOutcome) Ambiguous() bool { return len(o.Candidates) > 0 }

func (o EditOutcome) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("row", o.Row)
	w.Optional("candidates", o.Candidates)
	return w.MarshalJSON()
}

// ResolveEdit restores value = units × price / 100 on a manually edited row.
//
// Fields are compared numerically to old to find what the user changed. An
// edit that changed nothing, or that is already consistent, is kept as typed.
// Otherwise the field the user did not touch is recomputed from the others,
// keeping at least its previous number of decimal places. When the edit
// leaves more than one sensible completion, they are all returned as
// candidates and Row is the edit as typed. A single completion is always
// applied, even when all three fields changed: with units and price both
// zero only value = 0 remains, and the row gets it without candidates.
//
// ResolveEdit never fails: an edited row whose numbers do not parse is
// returned as is.
func ResolveEdit(old, edited Row) EditOutcome {
	verbatim := EditOutcome{Row: edited}
	next, err := parseTriple(edited)
	if err != nil {
		return verbatim
	}

	var changes changeSet
	var places [3]int32 // previous places of units, price, value
	for i, f := range []Field{FieldUnits, FieldPrice, FieldValue} {
		prev, err := ParseNumber(old.Get(f))
		if err != nil {
			changes |= 1 << i
			continue
		}
		places[i] = prev.Places()
		if !prev.Equal(*next.get(f)) {
			changes |= 1 << i
		}
	}
	if changes == 0 || next.consistent() {
		return verbatim
	}

	var candidates []triple
	switch changes {
	case unitsChanged, priceChanged, unitsChanged | priceChanged:
		t, _ := next.solve(FieldValue, places[2])
		candidates = append(candidates, t)

	case valueChanged:
		if t, ok := next.solve(FieldPrice, places[1]); ok {
			candidates = append(candidates, t)
		} else if t, ok := next.solve(FieldUnits, places[0]); ok {
			candidates = append(candidates, t)
		}

	case priceChanged | valueChanged:
		if t, ok := next.solve(FieldUnits, places[0]); ok {
			candidates = append(candidates, t)
		} else {
			t, _ := next.solve(FieldValue, places[2])
			candidates = append(candidates, t)
		}

	case unitsChanged | valueChanged:
		if t, ok := next.solve(FieldPrice, places[1]); ok {
			candidates = append(candidates, t)
			break
		}
		// No units: either nothing is held, or the value meant some units.
		t, _ := next.solve(FieldValue, places[2])
		candidates = append(candidates, t)
		if t, ok := next.solve(FieldUnits, places[0]); ok {
			candidates = append(candidates, t)
		}

	case allChanged:
		for _, f := range []Field{FieldValue, FieldPrice, FieldUnits} {
			if t, ok := next.solve(f, 2); ok {
				candidates = append(candidates, t)
			}
		}
	}

	switch len(candidates) {
	case 0:
		return verbatim
	case 1:
		return EditOutcome{Row: newCandidate(candidates[0]).Apply(edited)}
	}
	out := EditOutcome{Row: edited}
	for _, t := range candidates {
		out.Candidates = append(out.Candidates, newCandidate(t))
	}
	return out
}
