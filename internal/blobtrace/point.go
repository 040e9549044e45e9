package blobtrace

import "math"

// cubicFalloffGlobalKConst is the analytic max of |g'(u)|*2*|e|/r^2 times the
// distance factor, precomputed once at construction: 6*sqrt(1/5)*(4/5)^2
// rounded up to 1.72, the constant from the reference implementation.
const cubicFalloffGlobalKConst = 1.72

// Point is a radially symmetric, compactly supported field primitive
// with cubic falloff:
//
//	f(p) = e * g(|p-c|^2 / r^2), g(u) = (1-u)^3 for u<1, else 0
type Point struct {
	Center V3
	Radius Real
	Energy Real

	box Box
	k   Real
}

var _ FieldNode = (*Point)(nil)

// NewPoint builds a point primitive, rejecting degenerate geometry: a
// non-positive radius or a non-finite center/energy.
func NewPoint(center V3, radius, energy Real) (*Point, error) {
	if !(radius > 0) {
		return nil, &DegenerateGeometryError{Reason: "point radius must be > 0"}
	}
	if !center.IsFinite() || !isFiniteReal(energy) {
		return nil, &DegenerateGeometryError{Reason: "point center/energy must be finite"}
	}
	r := V3{radius, radius, radius}
	return &Point{
		Center: center,
		Radius: radius,
		Energy: energy,
		box:    NewBox(center.Sub(r), center.Add(r)),
		k:      cubicFalloffGlobalKConst * math.Abs(energy) / radius,
	}, nil
}

// Box returns the point's bounding box, [c-r, c+r].
func (p *Point) Box() Box { return p.box }

// K returns the global Lipschitz constant 1.72*|e|/r.
func (p *Point) K() Real { return p.k }

// Intensity returns e*g(|p-c|^2/r^2), or 0 outside the bounding box.
// The AABB test is a correctness-preserving fast path, since
// |delta| > r implies f == 0.
func (p *Point) Intensity(x V3) Real {
	if !p.box.Inside(x) {
		return 0
	}
	delta := x.Sub(p.Center)
	return cubicFalloff(delta.SquaredNorm(), p.Radius*p.Radius) * p.Energy
}

// Gradient uses the shared centered finite-difference default.
func (p *Point) Gradient(x V3) V3 { return centeredGradient(p, x) }

func cubicFalloff(distSq, rSq Real) Real {
	u := distSq / rSq
	if u >= 1 {
		return 0
	}
	t := 1 - u
	return t * t * t
}

// cubicFalloffK is the two-distance analytic Lipschitz bound used by
// KSegment: a is the squared distance nearer to the primitive's center,
// b the squared distance farther from it, R the radius, s the energy.
//
// The off-segment branches of this function (a > R^2/5, and the b <
// R^2/5 fallthrough) intentionally evaluate the piecewise bound using a
// single one of {a, b} rather than both. This mirrors
// BlobTreeNode::CubicFalloffK(double a, double b, double R, double s)
// in the reference implementation bit-for-bit.
func cubicFalloffK(a, b, r, s Real) Real {
	rSq := r * r
	if a > rSq {
		return 0
	}
	if b < rSq/5.0 {
		t := 1 - b/rSq
		return math.Abs(s) * 6.0 * (math.Sqrt(b) / rSq) * (t * t)
	}
	if a > rSq/5.0 {
		t := 1 - a/rSq
		return math.Abs(s) * 6.0 * (math.Sqrt(a) / rSq) * (t * t)
	}
	return cubicFalloffGlobalK(s, r)
}

func cubicFalloffGlobalK(e, r Real) Real {
	return cubicFalloffGlobalKConst * math.Abs(e) / r
}

// KSegment computes the segment-local Lipschitz bound over s. It
// returns 0 when s does not overlap the primitive's AABB.
func (p *Point) KSegment(s Segment) Real {
	a, b := s.A, s.B
	if !s.Overlaps(p.box) {
		return 0
	}

	axis := b.Sub(a).Normalized()
	l := p.Center.Sub(a).Dot(axis)

	var kk Real
	switch {
	case l < 0:
		kk = cubicFalloffK(p.Center.Sub(a).SquaredNorm(), p.Center.Sub(b).SquaredNorm(), p.Radius, p.Energy)
	case b.Sub(a).Norm() < l:
		kk = cubicFalloffK(p.Center.Sub(b).SquaredNorm(), p.Center.Sub(a).SquaredNorm(), p.Radius, p.Energy)
	default:
		dd := p.Center.Sub(a).SquaredNorm() - l*l
		maxAB := math.Max(p.Center.Sub(b).SquaredNorm(), p.Center.Sub(a).SquaredNorm())
		kk = cubicFalloffK(dd, maxAB, p.Radius, p.Energy)
	}

	grad := math.Max(
		math.Abs(axis.Dot(p.Center.Sub(a).Normalized())),
		math.Abs(axis.Dot(p.Center.Sub(b).Normalized())),
	)
	return kk * grad
}
