package blobtrace

// FieldNode is the interface shared by every node of the blob tree: a
// bounded scalar field exposing its intensity, gradient, and both a
// global and a segment-local Lipschitz bound.
//
// The node set is closed (Point and Blend today), but every query,
// including the hot path, dispatches through this interface: Tree holds
// its root and Blend its children as FieldNode. It gives the tree
// facade, the BVH builder and the marchers a single abstraction to hold
// and recurse over, and leaves room for a third primitive without
// reshaping those callers.
type FieldNode interface {
	// Intensity returns the field's scalar value at p, 0 outside the
	// node's bounding box (compact support invariant).
	Intensity(p V3) Real

	// Gradient returns the spatial gradient of the field at p.
	Gradient(p V3) V3

	// K returns the node's global Lipschitz constant.
	K() Real

	// KSegment returns a Lipschitz bound valid only for points lying on
	// s; KSegment(s) <= K() always.
	KSegment(s Segment) Real

	// Box returns the node's bounding box; intensity is exactly 0
	// outside it.
	Box() Box
}

// centeredGradient is the shared default gradient: a centered finite
// difference with step Epsilon, used by Point. Blend overrides this
// with the (cheaper, AABB-prunable) sum of its children's gradients.
func centeredGradient(f FieldNode, p V3) V3 {
	const eps = Epsilon
	dx := f.Intensity(V3{p.X + eps, p.Y, p.Z}) - f.Intensity(V3{p.X - eps, p.Y, p.Z})
	dy := f.Intensity(V3{p.X, p.Y + eps, p.Z}) - f.Intensity(V3{p.X, p.Y - eps, p.Z})
	dz := f.Intensity(V3{p.X, p.Y, p.Z + eps}) - f.Intensity(V3{p.X, p.Y, p.Z - eps})
	return V3{dx, dy, dz}.Div(2.0 * eps)
}
