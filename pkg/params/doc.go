// Package params provides the named-parameter collection shared between a
// curve-fitting caller and a numerical solver.
//
// A Parameter is a single scalar with bounds and a vary flag; Parameters is
// an insertion-ordered, uniquely keyed collection of them. The collection
// marshals to flat parallel vectors for a solver and accepts the solver's
// answer back as a bulk value assignment, so the caller and the solver only
// ever exchange order-aligned slices.
//
// Main Types:
//   - Parameter: a named scalar with bounds and a vary flag
//   - Parameters: the ordered collection with keyed and positional access
//   - Vectors: the parallel-slice hand-off format for solvers
//
// Usage:
//
//	pars := params.New()
//	pars.Set("amplitude", params.NewParameter("", 2.0))
//	pars.Set("decay", params.NewBoundedParameter("", 0.5, 0, 1, true))
//
//	vecs := pars.ToVectors()
//	// ... hand vecs to a solver, get a value slice back ...
//	if err := pars.SetValues(result); err != nil {
//	    log.Fatal(err)
//	}
package params
