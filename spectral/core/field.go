// Package core provides the shared 2D array types used by every spectral
// package: real-valued fields sampled on a uniform periodic grid and their
// complex spectral counterparts.
//
// Both types are stored row-major with Nx columns and Ny rows; row iy spans
// Data[iy*Nx : (iy+1)*Nx]. A physical field and its forward transform index
// identically, so wavenumber grids and spectral fields can be combined
// elementwise without any reindexing.
//
// No function in this package (or its consumers) mutates an input array;
// operations allocate their results. The flat Data slices are exported so
// that elementwise kernels and FFT passes can run without per-sample method
// calls.
package core

import (
	"errors"
	"fmt"
)

// Errors shared by the spectral packages.
var (
	// ErrShapeMismatch is returned when two arrays, or an array and a grid,
	// disagree in dimensions. Consumers wrap it with package context.
	ErrShapeMismatch = errors.New("spectral: shape mismatch")

	// ErrEmpty is returned for zero-sized arrays.
	ErrEmpty = errors.New("spectral: empty array")
)

// Field is a real 2D array of Ny rows by Nx columns in row-major order.
type Field struct {
	Nx   int
	Ny   int
	Data []float64
}

// NewField allocates a zero-filled field of the given dimensions.
func NewField(nx, ny int) Field {
	return Field{Nx: nx, Ny: ny, Data: make([]float64, nx*ny)}
}

// At returns the sample at row iy, column ix.
func (f Field) At(iy, ix int) float64 {
	return f.Data[iy*f.Nx+ix]
}

// Set stores v at row iy, column ix.
func (f Field) Set(iy, ix int, v float64) {
	f.Data[iy*f.Nx+ix] = v
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := Field{Nx: f.Nx, Ny: f.Ny, Data: make([]float64, len(f.Data))}
	copy(out.Data, f.Data)
	return out
}

// Len returns the number of samples, Nx*Ny.
func (f Field) Len() int { return len(f.Data) }

// SameShape reports whether f and g have identical dimensions.
func (f Field) SameShape(g Field) bool {
	return f.Nx == g.Nx && f.Ny == g.Ny
}

// Spectral is a complex 2D array with the same layout as Field. It holds the
// forward transform of a physical field, indexed identically to the
// wavenumber grids built alongside it.
type Spectral struct {
	Nx   int
	Ny   int
	Data []complex128
}

// NewSpectral allocates a zero-filled spectral array of the given dimensions.
func NewSpectral(nx, ny int) Spectral {
	return Spectral{Nx: nx, Ny: ny, Data: make([]complex128, nx*ny)}
}

// At returns the coefficient at row iy, column ix.
func (s Spectral) At(iy, ix int) complex128 {
	return s.Data[iy*s.Nx+ix]
}

// Set stores v at row iy, column ix.
func (s Spectral) Set(iy, ix int, v complex128) {
	s.Data[iy*s.Nx+ix] = v
}

// Clone returns a deep copy of the spectral array.
func (s Spectral) Clone() Spectral {
	out := Spectral{Nx: s.Nx, Ny: s.Ny, Data: make([]complex128, len(s.Data))}
	copy(out.Data, s.Data)
	return out
}

// Len returns the number of coefficients, Nx*Ny.
func (s Spectral) Len() int { return len(s.Data) }

// SameShape reports whether s and t have identical dimensions.
func (s Spectral) SameShape(t Spectral) bool {
	return s.Nx == t.Nx && s.Ny == t.Ny
}

// MatchesField reports whether s has the same dimensions as f.
func (s Spectral) MatchesField(f Field) bool {
	return s.Nx == f.Nx && s.Ny == f.Ny
}

// ShapeOf formats dimensions for error messages, e.g. "64x128" for a field
// of 64 columns and 128 rows.
func ShapeOf(nx, ny int) string {
	return fmt.Sprintf("%dx%d", nx, ny)
}

// CheckShape returns ErrShapeMismatch (wrapped with both shapes) unless the
// two dimension pairs agree. It performs no allocation on success.
func CheckShape(nxA, nyA, nxB, nyB int) error {
	if nxA == nxB && nyA == nyB {
		return nil
	}
	return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, ShapeOf(nxA, nyA), ShapeOf(nxB, nyB))
}
