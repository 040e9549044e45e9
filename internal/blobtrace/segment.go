package blobtrace

import "math"

// Segment is a bounded line between two endpoints, used by segment
// tracing to probe a local Lipschitz bound ahead of the current march
// position.
type Segment struct {
	A, B V3
}

// NewSegment builds a segment from its two endpoints.
func NewSegment(a, b V3) Segment { return Segment{A: a, B: b} }

// Box returns the tight AABB enclosing the segment.
func (s Segment) Box() Box { return BoxFromPoints(s.A, s.B) }

// Overlaps tests the segment against a box using the separating-axis
// theorem over three axis-aligned and three cross-product axes. This
// is ported bit-for-bit from Segment::Intersect(const Box&) in the
// reference implementation, including its use of the box's *full*
// diagonal (rather than a half-extent) as the box's projected radius
// term.
func (s Segment) Overlaps(box Box) bool {
	ba := box.Diagonal()

	d := s.B.Sub(s.A).Mul(0.5)
	c := s.A.Add(s.B).Mul(0.5)
	cc := c.Sub(box.Center())

	fdx, fdy, fdz := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)

	if math.Abs(cc.X) > ba.X+fdx {
		return false
	}
	if math.Abs(cc.Y) > ba.Y+fdy {
		return false
	}
	if math.Abs(cc.Z) > ba.Z+fdz {
		return false
	}
	if math.Abs(d.Y*cc.Z-d.Z*cc.Y) > ba.Y*fdz+ba.Z*fdy {
		return false
	}
	if math.Abs(d.Z*cc.X-d.X*cc.Z) > ba.X*fdz+ba.Z*fdx {
		return false
	}
	if math.Abs(d.X*cc.Y-d.Y*cc.X) > ba.X*fdy+ba.Y*fdx {
		return false
	}
	return true
}
