package params

// Vectors is the flat hand-off format consumed by numerical solvers: five
// parallel slices aligned with the collection's insertion order.
type Vectors struct {
	Names       []string
	Values      []float64
	LowerBounds []float64
	UpperBounds []float64
	Vary        []bool
}

// ToVectors marshals the collection into parallel slices. Every slice is a
// fresh copy, so a solver can scribble on them without touching the
// collection. Vary holds IsVaried rather than the stored flag: a degenerate
// bound range always reads as fixed here, even when the raw flag still says
// otherwise.
func (ps *Parameters) ToVectors() Vectors {
	n := len(ps.names)
	v := Vectors{
		Names:       make([]string, n),
		Values:      make([]float64, n),
		LowerBounds: make([]float64, n),
		UpperBounds: make([]float64, n),
		Vary:        make([]bool, n),
	}
	for i, name := range ps.names {
		p := ps.byName[name]
		v.Names[i] = p.Name
		v.Values[i] = p.Value
		v.LowerBounds[i] = p.LowerBound
		v.UpperBounds[i] = p.UpperBound
		v.Vary[i] = p.IsVaried()
	}
	return v
}

// SetValues assigns values positionally: element i goes to the entry at
// position i in insertion order, locked entries included. The length is
// checked before any entry is written, so a mismatch mutates nothing.
func (ps *Parameters) SetValues(values []float64) error {
	if len(values) != len(ps.names) {
		return &LengthMismatchError{Field: "values", Want: len(ps.names), Got: len(values)}
	}
	for i, name := range ps.names {
		ps.byName[name].Value = values[i]
	}
	return nil
}

// FillValues broadcasts a single value to every entry, locked or not
func (ps *Parameters) FillValues(v float64) {
	for _, name := range ps.names {
		ps.byName[name].Value = v
	}
}
