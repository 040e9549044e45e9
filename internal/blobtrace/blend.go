package blobtrace

// Blend is a binary sum combinator. Since sum is linear, its Lipschitz
// bound is additive; AABB pruning on either child is correctness
// preserving because every node has compact support.
type Blend struct {
	Left, Right FieldNode

	box Box
	k   Real
}

var _ FieldNode = (*Blend)(nil)

// NewBlend builds the sum of l and r. Its box is the union of the
// children's boxes and its global K the sum of their global K's.
func NewBlend(l, r FieldNode) *Blend {
	return &Blend{
		Left:  l,
		Right: r,
		box:   Union(l.Box(), r.Box()),
		k:     l.K() + r.K(),
	}
}

// Box returns the union of the children's boxes.
func (b *Blend) Box() Box { return b.box }

// K returns the sum of the children's global Lipschitz constants.
func (b *Blend) K() Real { return b.k }

// Intensity returns 0 outside the blend's box, otherwise the sum of the
// children's intensities.
func (b *Blend) Intensity(p V3) Real {
	if !b.box.Inside(p) {
		return 0
	}
	return b.Left.Intensity(p) + b.Right.Intensity(p)
}

// Gradient returns 0 outside the blend's box, otherwise the sum of the
// children's gradients. This overrides the default centered finite
// difference: it is both cheaper and AABB-prunable.
func (b *Blend) Gradient(p V3) V3 {
	if !b.box.Inside(p) {
		return V3{}
	}
	return b.Left.Gradient(p).Add(b.Right.Gradient(p))
}

// KSegment returns 0 when the blend's box does not overlap the
// segment's box; otherwise the sum of the children's segment-local
// bounds, each independently pruned on its own AABB overlap.
func (b *Blend) KSegment(s Segment) Real {
	if !b.box.Overlaps(s.Box()) {
		return 0
	}
	return b.Left.KSegment(s) + b.Right.KSegment(s)
}
