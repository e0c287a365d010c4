package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// RequireFieldNearlyEqual fails t if got and want differ in shape or if any
// sample pair exceeds eps (absolute tolerance).
func RequireFieldNearlyEqual(t *testing.T, got, want core.Field, eps float64) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Nx, got.Ny, want.Nx, want.Ny)
	}
	for i := range got.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if diff > eps {
			t.Fatalf("index %d (row %d, col %d): got %v, want %v (diff %v > eps %v)",
				i, i/got.Nx, i%got.Nx, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample of f is NaN or Inf.
func RequireFinite(t *testing.T, f core.Field) {
	t.Helper()
	for i, v := range f.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two fields.
// Returns an error if the fields differ in shape.
func MaxAbsDiff(a, b core.Field) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d", a.Nx, a.Ny, b.Nx, b.Ny)
	}
	maxDiff := 0.0
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
