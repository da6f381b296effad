package fit

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/fitting-core/pkg/logger"
	"github.com/GoSim-25-26J-441/fitting-core/pkg/params"
	"github.com/GoSim-25-26J-441/fitting-core/pkg/utils"
)

// Problem is the frozen hand-off a solver works on: the parameter vectors
// captured at the start of the fit plus the objective to minimize. Later
// mutation of the source collection does not reach a Problem.
type Problem struct {
	Vectors   params.Vectors
	Objective Objective
}

// NewProblem captures the collection's current state into a Problem
func NewProblem(pars *params.Parameters, objective Objective) (*Problem, error) {
	if pars == nil {
		return nil, &InvalidProblemError{Reason: "parameters are nil"}
	}
	if objective == nil {
		return nil, &InvalidProblemError{Reason: "objective is nil"}
	}
	if pars.Len() == 0 {
		return nil, &InvalidProblemError{Reason: "no parameters"}
	}
	if pars.NumVaried() == 0 {
		return nil, &InvalidProblemError{Reason: "no varied parameters"}
	}
	return &Problem{
		Vectors:   pars.ToVectors(),
		Objective: objective,
	}, nil
}

// Solver runs a fitting algorithm against a Problem. Implementations decide
// how to search; the only contract is that the returned Values align element
// for element with Problem.Vectors, locked entries carried through unchanged.
type Solver interface {
	// Solve searches for the value vector minimizing the problem's objective.
	Solve(ctx context.Context, prob *Problem) (*Result, error)

	// Name returns the name of the solver.
	Name() string
}

// Step records one point of a solver's trajectory
type Step struct {
	Iteration int
	Score     float64
}

// Result contains a solver's final answer
type Result struct {
	Values     []float64
	Score      float64
	Iterations int
	History    []Step
	Converged  bool
	Reason     string
}

// Fit runs solver against pars and writes the winning values back into the
// collection. The collection is untouched when the solver fails or returns
// a vector of the wrong length.
func Fit(ctx context.Context, pars *params.Parameters, objective Objective, solver Solver) (*Result, error) {
	if solver == nil {
		return nil, &InvalidProblemError{Reason: "solver is nil"}
	}
	prob, err := NewProblem(pars, objective)
	if err != nil {
		return nil, err
	}

	fitID := utils.GenerateFitID()
	log := logger.With("fit_id", fitID, "solver", solver.Name())
	log.Info("fit started", "parameters", pars.Len(), "varied", pars.NumVaried())

	start := time.Now()
	res, err := solver.Solve(ctx, prob)
	if err != nil {
		log.Error("fit failed", "error", err)
		return nil, fmt.Errorf("solver %s: %w", solver.Name(), err)
	}
	if res == nil {
		return nil, &InvalidResultError{Reason: "solver returned no result"}
	}
	if err := pars.SetValues(res.Values); err != nil {
		return nil, fmt.Errorf("apply solver result: %w", err)
	}

	log.Info("fit finished",
		"score", res.Score,
		"iterations", res.Iterations,
		"converged", res.Converged,
		"reason", res.Reason,
		"elapsed", utils.FormatDuration(time.Since(start)))
	return res, nil
}

// InvalidProblemError indicates a fit request that cannot be run
type InvalidProblemError struct {
	Reason string
}

func (e *InvalidProblemError) Error() string {
	return "invalid fit problem: " + e.Reason
}

// InvalidResultError indicates a solver response that cannot be applied
type InvalidResultError struct {
	Reason string
}

func (e *InvalidResultError) Error() string {
	return "invalid solver result: " + e.Reason
}
