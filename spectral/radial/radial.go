//nolint:funcorder
package radial

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// ErrInvalidTolerance is returned by [SpectrumTolerance] for a non-positive
// tolerance. Exact grouping has no tolerance parameter to misuse.
var ErrInvalidTolerance = errors.New("radial: tolerance must be positive")

// Magnitude returns |S| for each coefficient of a spectral field as a real
// field with the same layout.
//
// The reduction runs through SIMD-optimized kernels (AVX2, SSE2, NEON) when
// available.
func Magnitude(s core.Spectral) core.Field {
	out := core.NewField(s.Nx, s.Ny)
	re, im := splitParts(s)
	vecmath.Magnitude(out.Data, re, im)
	return out
}

// Power returns |S|^2 for each coefficient of a spectral field as a real
// field with the same layout. This is the usual input to [Spectrum].
func Power(s core.Spectral) core.Field {
	out := core.NewField(s.Nx, s.Ny)
	re, im := splitParts(s)
	vecmath.Power(out.Data, re, im)
	return out
}

func splitParts(s core.Spectral) (re, im []float64) {
	n := s.Len()
	buf := make([]float64, 2*n)
	re, im = buf[:n], buf[n:]
	for i, c := range s.Data {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

// Spectrum collapses a 2D array s onto a 1D function of wavenumber magnitude
// by averaging s over all cells sharing the same magnitude in kmag. It
// returns the distinct magnitudes in ascending order and the index-aligned
// group means; the output length is at most s.Len() and strictly less
// whenever the wavenumber grid's symmetry repeats a magnitude.
//
// Grouping uses exact floating-point equality: two cells belong to the same
// radius only if their magnitudes compare bit for bit equal. That matches
// how symmetric wavenumber grids are actually built, but it is fragile if
// kmag was produced with a different summation order; callers needing
// robustness to such drift must opt into [SpectrumTolerance] explicitly.
func Spectrum(s, kmag core.Field) (k, avg []float64, err error) {
	if err := checkPair(s, kmag); err != nil {
		return nil, nil, err
	}

	groups := make(map[float64][]float64)
	for i, m := range kmag.Data {
		groups[m] = append(groups[m], s.Data[i])
	}

	k = make([]float64, 0, len(groups))
	for m := range groups {
		k = append(k, m)
	}
	sort.Float64s(k)

	avg = make([]float64, len(k))
	for i, m := range k {
		vals := groups[m]
		avg[i] = floats.Sum(vals) / float64(len(vals))
	}
	return k, avg, nil
}

// SpectrumTolerance is the tolerance-binned variant of [Spectrum]: cells
// whose magnitudes lie within tol of a bin's first magnitude share the bin.
// The reported magnitude of each bin is the mean of its members' magnitudes.
//
// This is never a silent fallback; tol must be positive or the call fails
// with [ErrInvalidTolerance].
func SpectrumTolerance(s, kmag core.Field, tol float64) (k, avg []float64, err error) {
	if tol <= 0 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrInvalidTolerance, tol)
	}
	if err := checkPair(s, kmag); err != nil {
		return nil, nil, err
	}

	type cell struct{ mag, val float64 }
	cells := make([]cell, kmag.Len())
	for i, m := range kmag.Data {
		cells[i] = cell{mag: m, val: s.Data[i]}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].mag < cells[j].mag })

	var magSum, valSum float64
	var count int
	binStart := cells[0].mag

	flush := func() {
		k = append(k, magSum/float64(count))
		avg = append(avg, valSum/float64(count))
	}

	for _, c := range cells {
		if count > 0 && c.mag-binStart > tol {
			flush()
			magSum, valSum, count = 0, 0, 0
			binStart = c.mag
		}
		magSum += c.mag
		valSum += c.val
		count++
	}
	flush()
	return k, avg, nil
}

func checkPair(s, kmag core.Field) error {
	if s.Len() == 0 {
		return fmt.Errorf("radial: %w", core.ErrEmpty)
	}
	if err := core.CheckShape(s.Nx, s.Ny, kmag.Nx, kmag.Ny); err != nil {
		return fmt.Errorf("radial: value and magnitude grids differ: %w", err)
	}
	return nil
}
