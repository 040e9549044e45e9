package blobtrace

import "testing"

func mustPoint(t *testing.T, c V3, r, e Real) *Point {
	t.Helper()
	p, err := NewPoint(c, r, e)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBlendBoxIsUnion(t *testing.T) {
	l := mustPoint(t, V3{-2, 0, 0}, 1, 1)
	r := mustPoint(t, V3{2, 0, 0}, 1, 1)
	bl := NewBlend(l, r)

	want := Union(l.Box(), r.Box())
	if bl.Box() != want {
		t.Fatalf("expected box %+v, got %+v", want, bl.Box())
	}
}

func TestBlendKIsSum(t *testing.T) {
	l := mustPoint(t, V3{-2, 0, 0}, 1, 1)
	r := mustPoint(t, V3{2, 0, 0}, 1, 2)
	bl := NewBlend(l, r)
	if !almostEqual(bl.K(), l.K()+r.K(), 1e-12) {
		t.Fatalf("expected k=%v, got %v", l.K()+r.K(), bl.K())
	}
}

func TestBlendIntensityIsSumOfOverlappingPrimitives(t *testing.T) {
	l := mustPoint(t, V3{-0.5, 0, 0}, 1.5, 1)
	r := mustPoint(t, V3{0.5, 0, 0}, 1.5, 1)
	bl := NewBlend(l, r)

	mid := V3{0, 0, 0}
	want := l.Intensity(mid) + r.Intensity(mid)
	if got := bl.Intensity(mid); !almostEqual(got, want, 1e-12) {
		t.Fatalf("expected sum %v, got %v", want, got)
	}

	if got := bl.Intensity(V3{100, 100, 100}); got != 0 {
		t.Fatalf("expected 0 far outside the union box, got %v", got)
	}
}

func TestBlendGradientIsSum(t *testing.T) {
	l := mustPoint(t, V3{-0.5, 0, 0}, 1.5, 1)
	r := mustPoint(t, V3{0.5, 0, 0}, 1.5, 1)
	bl := NewBlend(l, r)

	at := V3{0.1, 0.2, -0.1}
	want := l.Gradient(at).Add(r.Gradient(at))
	got := bl.Gradient(at)
	if got.Sub(want).Norm() > 1e-9 {
		t.Fatalf("expected gradient sum %+v, got %+v", want, got)
	}
}

func TestBlendKSegmentZeroWhenBoxDisjoint(t *testing.T) {
	l := mustPoint(t, V3{-2, 0, 0}, 1, 1)
	r := mustPoint(t, V3{2, 0, 0}, 1, 1)
	bl := NewBlend(l, r)

	far := NewSegment(V3{100, 100, 100}, V3{101, 101, 101})
	if got := bl.KSegment(far); got != 0 {
		t.Fatalf("expected 0 for a disjoint segment, got %v", got)
	}
}
