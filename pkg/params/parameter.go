package params

import (
	"fmt"
	"math"
	"strings"
)

// Parameter is a single named scalar with bounds and a vary flag.
// Every field stays mutable after construction; only the empty Name is
// back-filled once, on first keyed insert into a Parameters collection.
type Parameter struct {
	Name       string
	Value      float64
	LowerBound float64
	UpperBound float64
	Vary       bool
}

// NewParameter creates a free parameter with infinite bounds
func NewParameter(name string, value float64) *Parameter {
	return NewBoundedParameter(name, value, math.Inf(-1), math.Inf(1), true)
}

// NewBoundedParameter creates a parameter with explicit bounds and vary flag.
// A degenerate bound range (lower equal to upper) forces the vary flag off
// regardless of the argument. Bounds are otherwise taken as given; there is
// no ordering check between lower and upper.
func NewBoundedParameter(name string, value, lowerBound, upperBound float64, vary bool) *Parameter {
	if lowerBound == upperBound {
		vary = false
	}
	return &Parameter{
		Name:       name,
		Value:      value,
		LowerBound: lowerBound,
		UpperBound: upperBound,
		Vary:       vary,
	}
}

// IsVaried reports whether the parameter is actually free during a fit.
// It is recomputed from the current fields on every call, so mutating the
// bounds after construction changes the answer without touching Vary.
func (p *Parameter) IsVaried() bool {
	return p.Vary && p.LowerBound != p.UpperBound
}

// String renders the parameter on one line: name, value, a locked marker
// when the stored Vary flag is off, and the bound interval. The marker
// follows the raw flag, not IsVaried.
func (p *Parameter) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %g", p.Name, p.Value)
	if !p.Vary {
		b.WriteString(" (locked)")
	}
	fmt.Fprintf(&b, " [%g, %g]", p.LowerBound, p.UpperBound)
	return b.String()
}
