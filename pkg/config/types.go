package config

import (
	"fmt"
	"math"

	"github.com/GoSim-25-26J-441/fitting-core/pkg/params"
)

// FitConfig represents a fit job description
type FitConfig struct {
	LogLevel   string          `yaml:"log_level"`
	Solver     *SolverSettings `yaml:"solver,omitempty"`
	Parameters []ParameterSpec `yaml:"parameters"`
}

// SolverSettings represents the solver a caller plugs into the fit
type SolverSettings struct {
	Name          string  `yaml:"name"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance,omitempty"`
	Seed          int64   `yaml:"seed,omitempty"`
}

// ParameterSpec describes one parameter entry. LowerBound, UpperBound, and
// Vary are pointers so an omitted field falls back to the collection default
// (infinite bound, vary on) instead of the zero value.
type ParameterSpec struct {
	Name       string   `yaml:"name"`
	Value      float64  `yaml:"value"`
	LowerBound *float64 `yaml:"lower_bound,omitempty"`
	UpperBound *float64 `yaml:"upper_bound,omitempty"`
	Vary       *bool    `yaml:"vary,omitempty"`
}

// BuildParameters constructs the parameter collection described by the
// config, in file order. Entry names are left to the keyed insert, so the
// collection back-fills them the same way as hand-built entries.
func (c *FitConfig) BuildParameters() (*params.Parameters, error) {
	pars := params.New()
	for _, spec := range c.Parameters {
		if _, ok := pars.Lookup(spec.Name); ok {
			return nil, fmt.Errorf("duplicate parameter name: %s", spec.Name)
		}

		lower := math.Inf(-1)
		if spec.LowerBound != nil {
			lower = *spec.LowerBound
		}
		upper := math.Inf(1)
		if spec.UpperBound != nil {
			upper = *spec.UpperBound
		}
		vary := true
		if spec.Vary != nil {
			vary = *spec.Vary
		}
		pars.Set(spec.Name, params.NewBoundedParameter("", spec.Value, lower, upper, vary))
	}
	return pars, nil
}
