// Package dealias removes aliasing error from quadratic nonlinearities using
// the 2/3 rule.
//
// Multiplying two band-limited fields pointwise in physical space creates
// wavenumbers above the Nyquist limit; on the discrete grid those fold back
// onto resolved modes. Zeroing the top third of each factor's spectrum before
// the product guarantees the folded-back part of the true product would have
// landed outside the retained band, at the cost of deliberately truncating
// the factors. The de-aliased product is therefore a smoothed approximation
// of the plain pointwise product, not a reproduction of it.
package dealias

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/grid"
	"github.com/cwbudde/algo-spectral/spectral/transform"
)

// Filter applies 2/3-rule truncation to spectral fields on a fixed grid.
//
// The filter never mutates caller arrays: truncation always happens on
// private copies, so spectra passed in remain usable afterwards.
type Filter struct {
	g      *grid.Grid
	plan   *transform.Plan
	mask   []bool
	cutoff float64
}

// New creates a filter for spectra on g. The cutoff magnitude is two thirds
// of the Nyquist magnitude of the shorter axis: (2/3) * (min(Nx,Ny)/2) * dk,
// with dk the smaller fundamental wavenumber step.
func New(g *grid.Grid) (*Filter, error) {
	plan, err := transform.NewPlan(g.Nx, g.Ny)
	if err != nil {
		return nil, fmt.Errorf("dealias: %w", err)
	}

	dk, dl := g.FundamentalStep()
	step := dk
	if dl < step {
		step = dl
	}
	nmin := g.Nx
	if g.Ny < nmin {
		nmin = g.Ny
	}
	cutoff := 2.0 / 3.0 * float64(nmin/2) * step

	mask := make([]bool, g.Kmag.Len())
	for i, m := range g.Kmag.Data {
		mask[i] = m >= cutoff
	}

	return &Filter{g: g, plan: plan, mask: mask, cutoff: cutoff}, nil
}

// Cutoff returns the truncation magnitude; modes at or above it are zeroed.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// Truncate returns a copy of s with every coefficient at or above the cutoff
// magnitude set to zero. The input is not modified.
func (f *Filter) Truncate(s core.Spectral) (core.Spectral, error) {
	if err := f.g.CheckSpectral(s); err != nil {
		return core.Spectral{}, fmt.Errorf("dealias: %w", err)
	}

	out := s.Clone()
	for i, dead := range f.mask {
		if dead {
			out.Data[i] = 0
		}
	}
	return out, nil
}

// Product returns the de-aliased pointwise product of the physical fields
// whose spectra are u and v: both spectra are truncated at the cutoff,
// inverse-transformed, and multiplied sample by sample. Neither input is
// modified.
func (f *Filter) Product(u, v core.Spectral) (core.Field, error) {
	ut, err := f.Truncate(u)
	if err != nil {
		return core.Field{}, err
	}
	vt, err := f.Truncate(v)
	if err != nil {
		return core.Field{}, err
	}

	uf, err := f.plan.Inverse(ut)
	if err != nil {
		return core.Field{}, fmt.Errorf("dealias: %w", err)
	}
	vf, err := f.plan.Inverse(vt)
	if err != nil {
		return core.Field{}, fmt.Errorf("dealias: %w", err)
	}

	out := core.NewField(f.g.Nx, f.g.Ny)
	vecmath.MulBlock(out.Data, uf.Data, vf.Data)
	return out, nil
}
