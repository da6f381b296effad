package params

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strings"
)

// Parameters is an insertion-ordered collection of uniquely named parameters.
// Order is load-bearing: it defines positional access and the layout of every
// slice produced by ToVectors. The collection is not safe for concurrent
// mutation; it is meant for exclusive use by one caller at a time.
type Parameters struct {
	names  []string
	byName map[string]*Parameter
}

// New creates an empty collection
func New() *Parameters {
	return &Parameters{
		byName: make(map[string]*Parameter),
	}
}

// FromVectors builds a collection from parallel slices, inserting entries in
// the order given by names. lowerBounds, upperBounds, and vary may each be
// nil, in which case every entry gets the corresponding default (infinite
// bound, vary on); a supplied slice applies element for element and must
// match len(names). A repeated name overwrites the earlier entry and keeps
// its original position, the same as repeated keyed assignment.
// All lengths are checked before any entry is inserted.
func FromVectors(names []string, values []float64, lowerBounds, upperBounds []float64, vary []bool) (*Parameters, error) {
	n := len(names)
	if len(values) != n {
		return nil, &LengthMismatchError{Field: "values", Want: n, Got: len(values)}
	}
	if lowerBounds != nil && len(lowerBounds) != n {
		return nil, &LengthMismatchError{Field: "lower bounds", Want: n, Got: len(lowerBounds)}
	}
	if upperBounds != nil && len(upperBounds) != n {
		return nil, &LengthMismatchError{Field: "upper bounds", Want: n, Got: len(upperBounds)}
	}
	if vary != nil && len(vary) != n {
		return nil, &LengthMismatchError{Field: "vary", Want: n, Got: len(vary)}
	}

	pars := New()
	for i, name := range names {
		lower := math.Inf(-1)
		if lowerBounds != nil {
			lower = lowerBounds[i]
		}
		upper := math.Inf(1)
		if upperBounds != nil {
			upper = upperBounds[i]
		}
		v := true
		if vary != nil {
			v = vary[i]
		}
		pars.Set(name, NewBoundedParameter("", values[i], lower, upper, v))
	}
	return pars, nil
}

// Len returns the number of entries
func (ps *Parameters) Len() int {
	return len(ps.names)
}

// Get returns the parameter stored under name
func (ps *Parameters) Get(name string) (*Parameter, error) {
	p, ok := ps.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return p, nil
}

// Lookup returns the parameter stored under name and whether it exists
func (ps *Parameters) Lookup(name string) (*Parameter, bool) {
	p, ok := ps.byName[name]
	return p, ok
}

// Set inserts or overwrites the entry for name. A new name is appended to
// the iteration order; an existing name keeps its position. When the entry's
// Name field is empty it is set to the key, so entries built without a name
// pick it up here. An entry pre-named to something else keeps its own Name
// even when inserted under a different key.
func (ps *Parameters) Set(name string, p *Parameter) {
	if p.Name == "" {
		p.Name = name
	}
	if _, ok := ps.byName[name]; !ok {
		ps.names = append(ps.names, name)
	}
	ps.byName[name] = p
}

// At returns the entry at position i in insertion order, starting at zero
func (ps *Parameters) At(i int) (*Parameter, error) {
	if i < 0 || i >= len(ps.names) {
		return nil, &IndexError{Index: i, Len: len(ps.names)}
	}
	return ps.byName[ps.names[i]], nil
}

// Names returns the keys in insertion order. The slice is a copy.
func (ps *Parameters) Names() []string {
	out := make([]string, len(ps.names))
	copy(out, ps.names)
	return out
}

// Entries returns the parameters in insertion order. The slice is fresh but
// the entries are the stored ones, not copies.
func (ps *Parameters) Entries() []*Parameter {
	out := make([]*Parameter, 0, len(ps.names))
	for _, name := range ps.names {
		out = append(out, ps.byName[name])
	}
	return out
}

// All iterates over (name, parameter) pairs in insertion order. The sequence
// is restartable: ranging over it again starts from the first entry.
func (ps *Parameters) All() iter.Seq2[string, *Parameter] {
	return func(yield func(string, *Parameter) bool) {
		for _, name := range ps.names {
			if !yield(name, ps.byName[name]) {
				return
			}
		}
	}
}

// Merge inserts every entry of src into ps, following src's insertion order.
// An existing key is overwritten in place and keeps its position; a new key
// is appended at the end. The entries themselves are shared with src, not
// copied.
func (ps *Parameters) Merge(src *Parameters) {
	if src == nil {
		return
	}
	for _, name := range src.names {
		ps.Set(name, src.byName[name])
	}
}

// NumVaried counts the entries that are actually free, per IsVaried
func (ps *Parameters) NumVaried() int {
	n := 0
	for _, name := range ps.names {
		if ps.byName[name].IsVaried() {
			n++
		}
	}
	return n
}

// WriteTo writes every entry's line rendering in insertion order, one per
// line. It implements io.WriterTo so the collection can stream to any sink.
func (ps *Parameters) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, name := range ps.names {
		n, err := fmt.Fprintln(w, ps.byName[name])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// String renders the whole collection, one entry per line
func (ps *Parameters) String() string {
	var b strings.Builder
	for _, name := range ps.names {
		b.WriteString(ps.byName[name].String())
		b.WriteByte('\n')
	}
	return b.String()
}
