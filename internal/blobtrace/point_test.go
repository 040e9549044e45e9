package blobtrace

import (
	"math"
	"testing"
)

func TestNewPointRejectsDegenerate(t *testing.T) {
	if _, err := NewPoint(V3{0, 0, 0}, 0, 1); err == nil {
		t.Fatal("expected error for zero radius")
	}
	if _, err := NewPoint(V3{0, 0, 0}, -1, 1); err == nil {
		t.Fatal("expected error for negative radius")
	}
	if _, err := NewPoint(V3{math.NaN(), 0, 0}, 1, 1); err == nil {
		t.Fatal("expected error for non-finite center")
	}
	if _, err := NewPoint(V3{0, 0, 0}, 1, math.Inf(1)); err == nil {
		t.Fatal("expected error for non-finite energy")
	}
}

func TestPointIntensityZeroOutsideBox(t *testing.T) {
	p, err := NewPoint(V3{0, 0, 0}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if i := p.Intensity(V3{10, 10, 10}); i != 0 {
		t.Fatalf("expected 0 outside box, got %v", i)
	}
	if i := p.Intensity(V3{0, 0, 0}); i != 1 {
		t.Fatalf("expected g(0)=1 at center, got %v", i)
	}
}

func TestPointGlobalK(t *testing.T) {
	p, err := NewPoint(V3{0, 0, 0}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.72 * 3.0 / 2.0
	if !almostEqual(p.K(), want, 1e-12) {
		t.Fatalf("expected k=%v, got %v", want, p.K())
	}
}

func TestPointKSegmentLEQGlobalK(t *testing.T) {
	p, err := NewPoint(V3{0, 0, 0}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	segs := []Segment{
		NewSegment(V3{-5, 0, 0}, V3{5, 0, 0}),
		NewSegment(V3{-1, -1, -1}, V3{1, 1, 1}),
		NewSegment(V3{0.5, 0, 0}, V3{1.5, 0, 0}),
		NewSegment(V3{3, 3, 3}, V3{4, 4, 4}),
	}
	for _, s := range segs {
		ks := p.KSegment(s)
		if ks > p.K()+1e-9 {
			t.Errorf("K(segment)=%v exceeds global K=%v for segment %+v", ks, p.K(), s)
		}
		if ks < 0 {
			t.Errorf("K(segment) negative: %v", ks)
		}
	}
}

func TestPointKSegmentZeroFarFromSupport(t *testing.T) {
	p, err := NewPoint(V3{0, 0, 0}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	far := NewSegment(V3{100, 100, 100}, V3{101, 101, 101})
	if ks := p.KSegment(far); ks != 0 {
		t.Fatalf("expected 0 for a segment outside every AABB, got %v", ks)
	}
	if p.K() <= 0 {
		t.Fatal("expected global K > 0")
	}
}

func TestPointLipschitzBoundHolds(t *testing.T) {
	p, err := NewPoint(V3{0, 0, 0}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	k := p.K()
	samples := []V3{{0, 0, 0}, {0.5, 0, 0}, {1, 0.5, 0}, {1.9, 0, 0}, {2.5, 0, 0}}
	for _, a := range samples {
		for _, b := range samples {
			lhs := math.Abs(p.Intensity(a) - p.Intensity(b))
			rhs := k * a.Sub(b).Norm()
			if lhs > rhs+1e-9 {
				t.Errorf("Lipschitz bound violated for %+v,%+v: |Δf|=%v > k|Δp|=%v", a, b, lhs, rhs)
			}
		}
	}
}

func TestPointFiniteDifferenceGradientMatchesAnalytic(t *testing.T) {
	// f(p) = e*(1-u)^3, u=|p-c|^2/r^2
	// df/dx = e * 3*(1-u)^2 * (-2*dx/r^2)
	c := V3{0, 0, 0}
	r, e := 2.0, 1.5
	p, err := NewPoint(c, r, e)
	if err != nil {
		t.Fatal(err)
	}
	at := V3{0.3, -0.2, 0.1}
	delta := at.Sub(c)
	u := delta.SquaredNorm() / (r * r)
	factor := e * 3 * (1 - u) * (1 - u) * (-2.0 / (r * r))
	analytic := delta.Mul(factor)

	got := p.Gradient(at)
	relErr := got.Sub(analytic).Norm() / analytic.Norm()
	if relErr > 1e-4 {
		t.Fatalf("gradient mismatch: got %+v, want %+v (relErr=%v)", got, analytic, relErr)
	}
}
