package operator

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/grid"
	"github.com/cwbudde/algo-spectral/spectral/signal"
)

func mustGrid(t *testing.T, nx, ny int, lx, ly float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(nx, ny, lx, ly)
	if err != nil {
		t.Fatalf("grid.New(%d,%d): %v", nx, ny, err)
	}
	return g
}

func mustOperator(t *testing.T, g *grid.Grid) *Operator {
	t.Helper()
	op, err := New(g)
	if err != nil {
		t.Fatalf("operator.New: %v", err)
	}
	return op
}

func TestDXPlaneWaveExactness(t *testing.T) {
	g := mustGrid(t, 128, 128, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	// kx=3, ky=2 are integer multiples of the fundamental step (here 1),
	// so the wave is band limited and exactly periodic.
	const kx, ky = 3.0, 2.0
	f := signal.NewGenerator(g).PlaneWave(kx, ky, 1)

	got, err := op.DX(f)
	if err != nil {
		t.Fatalf("DX: %v", err)
	}
	want := testutil.SampledField(g.X, g.Y, func(x, y float64) float64 {
		return kx * math.Cos(kx*x) * math.Sin(ky*y)
	})

	testutil.RequireFieldNearlyEqual(t, got, want, 1e-10*testutil.MaxAbs(want))
}

func TestDYPlaneWaveExactness(t *testing.T) {
	g := mustGrid(t, 128, 128, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	const kx, ky = 2.0, 5.0
	f := signal.NewGenerator(g).PlaneWave(kx, ky, 1)

	got, err := op.DY(f)
	if err != nil {
		t.Fatalf("DY: %v", err)
	}
	want := testutil.SampledField(g.X, g.Y, func(x, y float64) float64 {
		return ky * math.Sin(kx*x) * math.Cos(ky*y)
	})

	testutil.RequireFieldNearlyEqual(t, got, want, 1e-10*testutil.MaxAbs(want))
}

func TestLaplacianEigenfunction(t *testing.T) {
	g := mustGrid(t, 64, 64, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	// sin(kx*x)*sin(ky*y) is an eigenfunction of the Laplacian with
	// eigenvalue -(kx^2+ky^2).
	const kx, ky = 4.0, 3.0
	f := signal.NewGenerator(g).PlaneWave(kx, ky, 1)

	got, err := op.Laplacian(f)
	if err != nil {
		t.Fatalf("Laplacian: %v", err)
	}

	want := f.Clone()
	for i := range want.Data {
		want.Data[i] *= -(kx*kx + ky*ky)
	}

	testutil.RequireFieldNearlyEqual(t, got, want, 1e-9*testutil.MaxAbs(want))
}

func TestDivergenceIsScalarDerivativeSum(t *testing.T) {
	g := mustGrid(t, 32, 32, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	f := signal.NewGenerator(g, signal.WithSeed(7)).WhiteNoise(1)

	div, err := op.Divergence(f)
	if err != nil {
		t.Fatalf("Divergence: %v", err)
	}
	fx, err := op.DX(f)
	if err != nil {
		t.Fatalf("DX: %v", err)
	}
	fy, err := op.DY(f)
	if err != nil {
		t.Fatalf("DY: %v", err)
	}

	want := fx.Clone()
	for i := range want.Data {
		want.Data[i] += fy.Data[i]
	}

	testutil.RequireFieldNearlyEqual(t, div, want, 1e-9*testutil.MaxAbs(want))
}

func TestGradientMatchesSingleDerivatives(t *testing.T) {
	g := mustGrid(t, 32, 32, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	f := signal.NewGenerator(g).PlaneWave(2, 1, 1.5)

	gx, gy, err := op.Gradient(f)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	fx, err := op.DX(f)
	if err != nil {
		t.Fatalf("DX: %v", err)
	}
	fy, err := op.DY(f)
	if err != nil {
		t.Fatalf("DY: %v", err)
	}

	testutil.RequireFieldNearlyEqual(t, gx, fx, 1e-12)
	testutil.RequireFieldNearlyEqual(t, gy, fy, 1e-12)
}

func TestVectorDivergence(t *testing.T) {
	g := mustGrid(t, 64, 64, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	gen := signal.NewGenerator(g)
	u := gen.PlaneWave(3, 1, 1)
	v := gen.PlaneWave(1, 2, 1)

	got, err := op.VectorDivergence(u, v)
	if err != nil {
		t.Fatalf("VectorDivergence: %v", err)
	}

	ux, err := op.DX(u)
	if err != nil {
		t.Fatalf("DX: %v", err)
	}
	vy, err := op.DY(v)
	if err != nil {
		t.Fatalf("DY: %v", err)
	}
	want := ux.Clone()
	for i := range want.Data {
		want.Data[i] += vy.Data[i]
	}

	testutil.RequireFieldNearlyEqual(t, got, want, 1e-12)
}

func TestInputNotMutated(t *testing.T) {
	g := mustGrid(t, 16, 16, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	f := signal.NewGenerator(g, signal.WithSeed(3)).WhiteNoise(1)
	orig := f.Clone()

	if _, err := op.Laplacian(f); err != nil {
		t.Fatalf("Laplacian: %v", err)
	}
	for i := range f.Data {
		if f.Data[i] != orig.Data[i] {
			t.Fatalf("Laplacian mutated its input at %d", i)
		}
	}
}

func TestShapeMismatchRejection(t *testing.T) {
	g := mustGrid(t, 16, 16, 2*math.Pi, 2*math.Pi)
	op := mustOperator(t, g)

	bad := core.NewField(16, 18)

	if _, err := op.DX(bad); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("DX: got %v", err)
	}
	if _, err := op.DY(bad); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("DY: got %v", err)
	}
	if _, err := op.Laplacian(bad); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("Laplacian: got %v", err)
	}
	if _, err := op.Divergence(bad); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("Divergence: got %v", err)
	}
	if _, _, err := op.Gradient(bad); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("Gradient: got %v", err)
	}
	good := core.NewField(16, 16)
	if _, err := op.VectorDivergence(bad, good); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("VectorDivergence: got %v", err)
	}
}
