package params

import (
	"errors"
	"math"
	"testing"
)

func TestToVectorsRoundTrip(t *testing.T) {
	pars, err := FromVectors([]string{"a", "b"}, []float64{1.0, 2.0}, nil, nil, nil)
	if err != nil {
		t.Fatalf("Failed to build from vectors: %v", err)
	}

	vecs := pars.ToVectors()
	if len(vecs.Names) != 2 || vecs.Names[0] != "a" || vecs.Names[1] != "b" {
		t.Errorf("Expected names [a b], got %v", vecs.Names)
	}
	if vecs.Values[0] != 1.0 || vecs.Values[1] != 2.0 {
		t.Errorf("Expected values [1 2], got %v", vecs.Values)
	}
	for i := range vecs.Names {
		if !math.IsInf(vecs.LowerBounds[i], -1) {
			t.Errorf("Expected lower bound %d to be -Inf, got %g", i, vecs.LowerBounds[i])
		}
		if !math.IsInf(vecs.UpperBounds[i], 1) {
			t.Errorf("Expected upper bound %d to be +Inf, got %g", i, vecs.UpperBounds[i])
		}
		if !vecs.Vary[i] {
			t.Errorf("Expected entry %d to be varied", i)
		}
	}
}

func TestToVectorsReconcilesVary(t *testing.T) {
	pars := New()
	pars.Set("a", NewParameter("", 1.0))
	pars.Set("b", NewParameter("", 2.0))

	// Collapse the bounds of "a" after construction; the raw flag stays
	// true, but the marshalled vary must read the reconciled state.
	a, err := pars.Get("a")
	if err != nil {
		t.Fatalf("Failed to get 'a': %v", err)
	}
	a.LowerBound = 4
	a.UpperBound = 4

	vecs := pars.ToVectors()
	if vecs.Vary[0] {
		t.Error("Expected marshalled vary false for collapsed bounds")
	}
	if !a.Vary {
		t.Error("Expected the raw flag to stay true")
	}
	if !vecs.Vary[1] {
		t.Error("Expected untouched entry to stay varied")
	}

	for i, p := range pars.Entries() {
		if vecs.Vary[i] != p.IsVaried() {
			t.Errorf("Expected vary[%d] to match IsVaried, got %v vs %v",
				i, vecs.Vary[i], p.IsVaried())
		}
	}
}

func TestToVectorsReturnsCopies(t *testing.T) {
	pars := New()
	pars.Set("a", NewParameter("", 1.0))

	vecs := pars.ToVectors()
	vecs.Values[0] = 99
	vecs.Names[0] = "mutated"

	a, err := pars.Get("a")
	if err != nil {
		t.Fatalf("Failed to get 'a': %v", err)
	}
	if a.Value != 1.0 {
		t.Errorf("Expected stored value untouched, got %g", a.Value)
	}
	if a.Name != "a" {
		t.Errorf("Expected stored name untouched, got '%s'", a.Name)
	}

	// The vectors are a snapshot: later mutation of the collection does
	// not show up in a marshalling taken earlier.
	snapshot := pars.ToVectors()
	a.Value = 42
	if snapshot.Values[0] != 1.0 {
		t.Errorf("Expected snapshot value 1, got %g", snapshot.Values[0])
	}
}

func TestSetValues(t *testing.T) {
	pars, err := FromVectors([]string{"a", "b"}, []float64{1.0, 2.0}, nil, nil, nil)
	if err != nil {
		t.Fatalf("Failed to build from vectors: %v", err)
	}

	if err := pars.SetValues([]float64{10.0, 20.0}); err != nil {
		t.Fatalf("Failed to set values: %v", err)
	}

	a, err := pars.Get("a")
	if err != nil {
		t.Fatalf("Failed to get 'a': %v", err)
	}
	if a.Value != 10.0 {
		t.Errorf("Expected 'a' updated to 10, got %g", a.Value)
	}
	b, err := pars.Get("b")
	if err != nil {
		t.Fatalf("Failed to get 'b': %v", err)
	}
	if b.Value != 20.0 {
		t.Errorf("Expected 'b' updated to 20, got %g", b.Value)
	}
	if !math.IsInf(a.LowerBound, -1) || !math.IsInf(a.UpperBound, 1) {
		t.Error("Expected bounds untouched by value assignment")
	}
}

func TestSetValuesLengthMismatch(t *testing.T) {
	pars, err := FromVectors([]string{"a", "b"}, []float64{1.0, 2.0}, nil, nil, nil)
	if err != nil {
		t.Fatalf("Failed to build from vectors: %v", err)
	}

	err = pars.SetValues([]float64{10.0})
	if err == nil {
		t.Fatal("Expected length mismatch error")
	}
	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected LengthMismatchError, got %T", err)
	}
	if mismatch.Want != 2 || mismatch.Got != 1 {
		t.Errorf("Expected want=2 got=1, got want=%d got=%d", mismatch.Want, mismatch.Got)
	}

	// The length check runs before any write, so nothing moved.
	a, getErr := pars.Get("a")
	if getErr != nil {
		t.Fatalf("Failed to get 'a': %v", getErr)
	}
	if a.Value != 1.0 {
		t.Errorf("Expected 'a' untouched after failed assignment, got %g", a.Value)
	}
}

func TestFillValues(t *testing.T) {
	pars := New()
	pars.Set("free", NewParameter("", 1.0))
	pars.Set("locked", NewBoundedParameter("", 2.0, 0, 10, false))
	pars.Set("pinned", NewBoundedParameter("", 3.0, 5, 5, true))

	pars.FillValues(5.0)

	for name, p := range pars.All() {
		if p.Value != 5.0 {
			t.Errorf("Expected %s broadcast to 5, got %g", name, p.Value)
		}
	}
}

func TestSetValuesEmptyCollection(t *testing.T) {
	pars := New()
	if err := pars.SetValues(nil); err != nil {
		t.Errorf("Expected empty assignment on empty collection to succeed, got %v", err)
	}
	if err := pars.SetValues([]float64{1.0}); err == nil {
		t.Error("Expected length mismatch on empty collection")
	}
}
