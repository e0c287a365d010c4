// Package grid builds the uniform periodic sample grid and the matching
// Fourier wavenumber grids that every spectral operator is keyed by.
//
// The physical grid is cell-centered: samples sit half a spacing inside the
// domain edges, symmetric about a configurable center. Wavenumbers follow the
// standard FFT bin ordering (zero, positive multiples of the fundamental up
// to the Nyquist index, then negative multiples wrapping back), expressed as
// angular wavenumbers in radians per unit length.
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// Errors returned by the grid builder.
var (
	// ErrInvalidSamples is returned when a sample count is odd, zero, or
	// negative. Sample counts must be even so the Nyquist index exists.
	ErrInvalidSamples = errors.New("grid: sample counts must be even and >= 2")

	// ErrInvalidDomain is returned for non-positive domain sizes.
	ErrInvalidDomain = errors.New("grid: domain sizes must be positive")
)

// Grid holds the physical coordinates and wavenumber arrays for a uniform
// periodic rectangular domain of Lx by Ly sampled Nx by Ny times.
//
// All 2D arrays share the (Ny, Nx) shape and the row-major layout of
// [core.Field]: K varies along columns (the x index), L along rows.
type Grid struct {
	Nx, Ny int
	Lx, Ly float64
	Dx, Dy float64

	// X, Y are the cell-centered physical coordinates of each sample.
	X, Y core.Field

	// K, L are the angular wavenumbers of each Fourier mode; Kmag is the
	// elementwise magnitude sqrt(K^2 + L^2). K[0,0] and L[0,0] are exactly 0.
	K, L, Kmag core.Field

	// Kinv, Linv equal K, L except the [0,0] entry is +Inf, so dividing by
	// Kinv^2 + Linv^2 forces the DC component of any inverted field to zero.
	Kinv, Linv core.Field

	centerX, centerY float64
}

// Option configures grid construction.
type Option func(*config)

type config struct {
	centerX float64
	centerY float64
}

// WithCenter places the domain center at (cx, cy) instead of the origin.
func WithCenter(cx, cy float64) Option {
	return func(c *config) {
		c.centerX = cx
		c.centerY = cy
	}
}

// New validates the configuration and builds the grid together with its
// wavenumber arrays. Sample counts must be even and at least 2; domain sizes
// must be positive.
func New(nx, ny int, lx, ly float64, opts ...Option) (*Grid, error) {
	if nx < 2 || nx%2 != 0 || ny < 2 || ny%2 != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSamples, nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, fmt.Errorf("%w: got %gx%g", ErrInvalidDomain, lx, ly)
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	g := &Grid{
		Nx: nx, Ny: ny,
		Lx: lx, Ly: ly,
		Dx: lx / float64(nx), Dy: ly / float64(ny),

		centerX: cfg.centerX,
		centerY: cfg.centerY,
	}

	x := axisCoords(nx, g.Dx, cfg.centerX-lx/2)
	y := axisCoords(ny, g.Dy, cfg.centerY-ly/2)
	k := axisWavenumbers(nx, lx)
	l := axisWavenumbers(ny, ly)

	g.X = core.NewField(nx, ny)
	g.Y = core.NewField(nx, ny)
	g.K = core.NewField(nx, ny)
	g.L = core.NewField(nx, ny)
	g.Kmag = core.NewField(nx, ny)

	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			idx := iy*nx + ix
			g.X.Data[idx] = x[ix]
			g.Y.Data[idx] = y[iy]
			g.K.Data[idx] = k[ix]
			g.L.Data[idx] = l[iy]
			g.Kmag.Data[idx] = math.Hypot(k[ix], l[iy])
		}
	}

	g.Kinv = g.K.Clone()
	g.Linv = g.L.Clone()
	g.Kinv.Data[0] = math.Inf(1)
	g.Linv.Data[0] = math.Inf(1)

	return g, nil
}

// axisCoords fills cell-centered coordinates: edge + (i+0.5)*d.
func axisCoords(n int, d, edge float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) + 0.5
	}
	floats.Scale(d, out)
	floats.AddConst(edge, out)
	return out
}

// axisWavenumbers fills the FFT bin-to-frequency mapping for one axis:
// index 0 carries 0, indices 1..n/2 carry positive multiples of 2*pi/length,
// and indices n/2+1..n-1 wrap to negative multiples counting back down.
func axisWavenumbers(n int, length float64) []float64 {
	step := 2 * math.Pi / length
	out := make([]float64, n)
	for i := 0; i <= n/2; i++ {
		out[i] = float64(i) * step
	}
	for i := n/2 + 1; i < n; i++ {
		out[i] = float64(i-n) * step
	}
	return out
}

// Center returns the configured domain center.
func (g *Grid) Center() (cx, cy float64) {
	return g.centerX, g.centerY
}

// FundamentalStep returns the fundamental wavenumber spacing along each axis,
// 2*pi/Lx and 2*pi/Ly.
func (g *Grid) FundamentalStep() (dk, dl float64) {
	return 2 * math.Pi / g.Lx, 2 * math.Pi / g.Ly
}

// Nyquist returns the Nyquist wavenumber along each axis, the highest
// magnitude representable without aliasing at index N/2.
func (g *Grid) Nyquist() (kx, ky float64) {
	dk, dl := g.FundamentalStep()
	return float64(g.Nx/2) * dk, float64(g.Ny/2) * dl
}

// CheckField returns a shape error unless f matches the grid dimensions.
func (g *Grid) CheckField(f core.Field) error {
	if err := core.CheckShape(f.Nx, f.Ny, g.Nx, g.Ny); err != nil {
		return fmt.Errorf("grid: field does not match grid: %w", err)
	}
	return nil
}

// CheckSpectral returns a shape error unless s matches the grid dimensions.
func (g *Grid) CheckSpectral(s core.Spectral) error {
	if err := core.CheckShape(s.Nx, s.Ny, g.Nx, g.Ny); err != nil {
		return fmt.Errorf("grid: spectral field does not match grid: %w", err)
	}
	return nil
}
