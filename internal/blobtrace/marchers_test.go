package blobtrace

import (
	"math"
	"testing"
)

// One Point(center=(0,0,0), r=2, e=1); ray from (0,-10,0) direction
// (0,1,0), marching toward the primitive. The exact
// crossing of tree.Intensity==0 is where g(u)=0.5, i.e. u=1-cbrt(0.5),
// at distance r*sqrt(1-cbrt(0.5)) from the center, not the primitive's
// outer radius; every marcher must agree on that point within 2*Epsilon.
func TestMarchersAgreeOnSinglePrimitiveHit(t *testing.T) {
	p := mustPoint(t, V3{0, 0, 0}, 2, 1)
	tree := NewTreeFromRoot(p)
	ray := NewRay(V3{0, -10, 0}, V3{0, 1, 0})
	k := tree.K()

	isoDist := 2 * math.Sqrt(1-math.Cbrt(0.5))
	want := Real(10) - Real(isoDist)
	for _, m := range Methods() {
		hit := March(tree, ray, m, k)
		if !hit.Hit {
			t.Fatalf("%s: expected a hit", m)
		}
		if !almostEqual(hit.T, want, 2*Epsilon) {
			t.Errorf("%s: expected t≈%v, got %v", m, want, hit.T)
		}
	}
}

// A ray that passes outside the primitive's support entirely must
// miss for every marcher.
func TestMarchersAgreeOnSinglePrimitiveMiss(t *testing.T) {
	p := mustPoint(t, V3{0, 0, 0}, 2, 1)
	tree := NewTreeFromRoot(p)
	ray := NewRay(V3{0, -10, 10}, V3{0, 1, 0})
	k := tree.K()

	for _, m := range Methods() {
		hit := March(tree, ray, m, k)
		if hit.Hit {
			t.Errorf("%s: expected a miss, got hit at t=%v", m, hit.T)
		}
	}
}

// Two overlapping primitives whose summed field crosses the
// iso-surface between them, even though a ray through the midpoint
// at a weak-enough single radius would not.
func TestMarchersHitOverlappingBlend(t *testing.T) {
	l := mustPoint(t, V3{-0.6, 0, 0}, 1.2, 1)
	r := mustPoint(t, V3{0.6, 0, 0}, 1.2, 1)
	tree := NewTreeFromRoot(NewBlend(l, r))
	ray := NewRay(V3{0, -10, 0}, V3{0, 1, 0})
	k := tree.K()

	for _, m := range Methods() {
		hit := March(tree, ray, m, k)
		if !hit.Hit {
			t.Errorf("%s: expected a hit on the overlapping blend", m)
		}
	}
}

// A segment whose local Lipschitz bound is strictly tighter than the
// tree's global bound, for a segment that stays entirely clear of a
// primitive's support.
func TestSegmentLocalKTighterThanGlobalK(t *testing.T) {
	p := mustPoint(t, V3{0, 0, 0}, 1, 1)
	tree := NewTreeFromRoot(p)

	seg := NewSegment(V3{10, 10, 10}, V3{11, 11, 11})
	ksLocal := tree.KSegment(seg)
	if ksLocal >= tree.K() {
		t.Fatalf("expected K(segment)=%v to be strictly tighter than global K=%v", ksLocal, tree.K())
	}
}

// All three marchers agree on hit/miss and, when both hit, on t
// within 2*Epsilon, across a spread of rays.
func TestMarcherAgreementAcrossRays(t *testing.T) {
	centers := []V3{{0, 0, 0}, {1.5, 0, 0}, {-1.2, 0.5, 0}, {0, 1.5, 1}}
	tree, err := NewTreeFromPoints(centers, 1.3, 1)
	if err != nil {
		t.Fatal(err)
	}
	k := tree.K()

	origins := []V3{
		{-0.3, -10, 0},
		{0, -10, 0.5},
		{1.0, -10, 0},
		{5, -10, 5}, // should miss for every marcher
	}
	for _, o := range origins {
		ray := NewRay(o, V3{0, 1, 0})
		hits := make([]Hit, 0, 3)
		for _, m := range Methods() {
			hits = append(hits, March(tree, ray, m, k))
		}
		for i := 1; i < len(hits); i++ {
			if hits[i].Hit != hits[0].Hit {
				t.Errorf("ray %+v: marcher %s disagrees on hit/miss with %s", o, Methods()[i], Methods()[0])
				continue
			}
			if hits[0].Hit && !almostEqual(hits[i].T, hits[0].T, 2*Epsilon) {
				t.Errorf("ray %+v: marcher %s t=%v disagrees with %s t=%v", o, Methods()[i], hits[i].T, Methods()[0], hits[0].T)
			}
		}
	}
}

func TestMarchMissesWhenRayMissesBoundingBox(t *testing.T) {
	p := mustPoint(t, V3{0, 0, 0}, 1, 1)
	tree := NewTreeFromRoot(p)
	ray := NewRay(V3{100, 100, 100}, V3{0, 1, 0})
	k := tree.K()

	for _, m := range Methods() {
		if hit := March(tree, ray, m, k); hit.Hit || hit.Steps != 0 {
			t.Errorf("%s: expected an immediate miss with 0 steps for a ray missing the box, got %+v", m, hit)
		}
	}
}
