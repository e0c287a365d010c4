// Package transform provides the 2D discrete Fourier transform used by the
// spectral operators, composed from 1D FFT plans: a contiguous pass over
// rows followed by a strided pass over columns.
//
// The backend's inverse transform is 1/N normalized, so a forward/inverse
// round trip through this package reproduces the input without any manual
// scaling.
package transform

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectral/spectral/core"
)

// ErrInvalidSize is returned when a plan is requested for non-positive
// dimensions.
var ErrInvalidSize = errors.New("transform: dimensions must be positive")

// Plan holds the per-axis FFT plans for a fixed Nx by Ny layout.
//
// A Plan is not safe for concurrent use: the strided column pass shares
// scratch memory inside the axis plans. Results are deterministic and
// independent of the backend's internal kernel selection.
type Plan struct {
	nx, ny int
	row    *algofft.Plan[complex128]
	col    *algofft.Plan[complex128]
}

// NewPlan creates a 2D transform plan for fields of nx columns by ny rows.
func NewPlan(nx, ny int) (*Plan, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSize, core.ShapeOf(nx, ny))
	}

	row, err := algofft.NewPlan64(nx)
	if err != nil {
		return nil, fmt.Errorf("transform: row plan: %w", err)
	}

	col := row
	if ny != nx {
		col, err = algofft.NewPlan64(ny)
		if err != nil {
			return nil, fmt.Errorf("transform: column plan: %w", err)
		}
	}

	return &Plan{nx: nx, ny: ny, row: row, col: col}, nil
}

// Nx returns the number of columns the plan transforms.
func (p *Plan) Nx() int { return p.nx }

// Ny returns the number of rows the plan transforms.
func (p *Plan) Ny() int { return p.ny }

// Forward computes the 2D forward transform of a real field, returning a
// newly allocated spectral array. The input is not modified.
func (p *Plan) Forward(f core.Field) (core.Spectral, error) {
	if err := p.check(f.Nx, f.Ny); err != nil {
		return core.Spectral{}, err
	}

	out := core.NewSpectral(p.nx, p.ny)
	for i, v := range f.Data {
		out.Data[i] = complex(v, 0)
	}

	if err := p.transform(out.Data, false); err != nil {
		return core.Spectral{}, err
	}
	return out, nil
}

// Inverse computes the 2D inverse transform of a spectral array and returns
// the real part as a physical field. The input is not modified.
func (p *Plan) Inverse(s core.Spectral) (core.Field, error) {
	if err := p.check(s.Nx, s.Ny); err != nil {
		return core.Field{}, err
	}

	buf := make([]complex128, len(s.Data))
	copy(buf, s.Data)

	if err := p.transform(buf, true); err != nil {
		return core.Field{}, err
	}

	out := core.NewField(p.nx, p.ny)
	for i, v := range buf {
		out.Data[i] = real(v)
	}
	return out, nil
}

// transform runs the row pass followed by the strided column pass, in place.
func (p *Plan) transform(data []complex128, inverse bool) error {
	for iy := 0; iy < p.ny; iy++ {
		row := data[iy*p.nx : (iy+1)*p.nx]
		var err error
		if inverse {
			err = p.row.Inverse(row, row)
		} else {
			err = p.row.Forward(row, row)
		}
		if err != nil {
			return fmt.Errorf("transform: row %d: %w", iy, err)
		}
	}

	for ix := 0; ix < p.nx; ix++ {
		col := data[ix:]
		var err error
		if inverse {
			err = p.col.InverseStrided(col, col, p.nx)
		} else {
			err = p.col.ForwardStrided(col, col, p.nx)
		}
		if err != nil {
			return fmt.Errorf("transform: column %d: %w", ix, err)
		}
	}
	return nil
}

func (p *Plan) check(nx, ny int) error {
	if err := core.CheckShape(nx, ny, p.nx, p.ny); err != nil {
		return fmt.Errorf("transform: input does not match plan: %w", err)
	}
	return nil
}
