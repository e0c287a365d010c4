// Package testutil provides shared helpers for package tests: tolerance
// assertions on 2D fields and small deterministic field fixtures.
package testutil

import (
	"math"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// FieldFromRows builds a field from row-ordered literal values. Handy for
// small hand-computed fixtures.
func FieldFromRows(rows [][]float64) core.Field {
	ny := len(rows)
	nx := len(rows[0])
	out := core.NewField(nx, ny)
	for iy, row := range rows {
		for ix, v := range row {
			out.Set(iy, ix, v)
		}
	}
	return out
}

// SampledField evaluates fn at each sample of the coordinate grids x, y.
func SampledField(x, y core.Field, fn func(x, y float64) float64) core.Field {
	out := core.NewField(x.Nx, x.Ny)
	for i := range out.Data {
		out.Data[i] = fn(x.Data[i], y.Data[i])
	}
	return out
}

// Mean returns the arithmetic mean of f.
func Mean(f core.Field) float64 {
	sum := 0.0
	for _, v := range f.Data {
		sum += v
	}
	return sum / float64(f.Len())
}

// MaxAbs returns the largest absolute sample of f.
func MaxAbs(f core.Field) float64 {
	m := 0.0
	for _, v := range f.Data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
