// Package norms provides error norms between 2D fields, the quantities the
// diagnostic tooling reports when checking operators against analytic
// references.
package norms

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// L2 returns the root-mean-square difference between a and b.
func L2(a, b core.Field) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a.Data, b.Data, 2) / math.Sqrt(float64(a.Len())), nil
}

// Linf returns the maximum absolute difference between a and b.
func Linf(a, b core.Field) (float64, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a.Data, b.Data, math.Inf(1)), nil
}

// RMS returns the root-mean-square of f.
func RMS(f core.Field) float64 {
	if f.Len() == 0 {
		return 0
	}
	return floats.Norm(f.Data, 2) / math.Sqrt(float64(f.Len()))
}

// MaxAbs returns the largest absolute sample of f.
func MaxAbs(f core.Field) float64 {
	if f.Len() == 0 {
		return 0
	}
	return floats.Norm(f.Data, math.Inf(1))
}

// Mean returns the arithmetic mean of f.
func Mean(f core.Field) float64 {
	if f.Len() == 0 {
		return 0
	}
	return floats.Sum(f.Data) / float64(f.Len())
}

func check(a, b core.Field) error {
	if a.Len() == 0 {
		return fmt.Errorf("norms: %w", core.ErrEmpty)
	}
	if err := core.CheckShape(a.Nx, a.Ny, b.Nx, b.Ny); err != nil {
		return fmt.Errorf("norms: %w", err)
	}
	return nil
}
