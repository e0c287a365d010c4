// Package poisson inverts the Laplacian on a periodic domain in Fourier
// space: given a source q, it recovers the potential psi with
// Laplacian(psi) = q by dividing the source spectrum by -(K^2 + L^2).
package poisson

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/grid"
	"github.com/cwbudde/algo-spectral/spectral/transform"
)

// Solver binds a grid and a transform plan for repeated Poisson solves on
// fields sampled on that grid.
type Solver struct {
	g    *grid.Grid
	plan *transform.Plan
}

// New creates a solver for sources sampled on g.
func New(g *grid.Grid) (*Solver, error) {
	plan, err := transform.NewPlan(g.Nx, g.Ny)
	if err != nil {
		return nil, fmt.Errorf("poisson: %w", err)
	}
	return &Solver{g: g, plan: plan}, nil
}

// Solve returns the zero-mean potential whose Laplacian equals the zero-mean
// part of q.
//
// The division uses the grid's inversion-safe wavenumbers, whose [0,0] entry
// is +Inf: the DC coefficient of the result is therefore exactly zero. The
// periodic Poisson problem is only determined up to an additive constant, and
// this convention fixes the constant to zero mean. A source with nonzero mean
// is still solved; its mean is simply discarded, so callers comparing against
// a non-zero-mean analytic potential must expect the corresponding offset.
func (s *Solver) Solve(q core.Field) (core.Field, error) {
	if err := s.g.CheckField(q); err != nil {
		return core.Field{}, fmt.Errorf("poisson: %w", err)
	}

	spec, err := s.plan.Forward(q)
	if err != nil {
		return core.Field{}, fmt.Errorf("poisson: %w", err)
	}

	for i := range spec.Data {
		k := s.g.Kinv.Data[i]
		l := s.g.Linv.Data[i]
		spec.Data[i] *= complex(-1/(k*k+l*l), 0)
	}

	psi, err := s.plan.Inverse(spec)
	if err != nil {
		return core.Field{}, fmt.Errorf("poisson: %w", err)
	}
	return psi, nil
}
