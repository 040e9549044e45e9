package blobtrace

// BuildBVH reorganizes a flat slice of point primitives into a balanced
// blend tree using spatial median splits along the longest diagonal
// axis, the same recursive-partition structure as
// BlobTreePoint::BVHRecursive in the reference implementation. Panics
// if leaves is empty; callers are expected to have already validated a
// non-empty primitive list (see NewTreeFromPoints).
func BuildBVH(leaves []FieldNode) FieldNode {
	return buildBVH(leaves, 0, len(leaves))
}

func buildBVH(leaves []FieldNode, begin, end int) FieldNode {
	if end-begin <= 1 {
		return leaves[begin]
	}

	box := leaves[begin].Box()
	for i := begin + 1; i < end; i++ {
		box = Union(box, leaves[i].Box())
	}

	axis := box.Diagonal().MaxIndex()
	cut := (box.Min.At(axis) + box.Max.At(axis)) / 2.0

	mid := partition(leaves, begin, end, axis, cut)
	if mid == begin || mid == end {
		mid = (begin + end) / 2
	}

	left := buildBVH(leaves, begin, mid)
	right := buildBVH(leaves, mid, end)
	return NewBlend(left, right)
}

// partition reorders leaves[begin:end] in place so that every node
// whose box center's axis coordinate is < cut comes first, and returns
// the split index. Mirrors std::partition's two-pointer scheme used by
// BVHRecursive.
func partition(leaves []FieldNode, begin, end, axis int, cut Real) int {
	i := begin
	for j := begin; j < end; j++ {
		if leaves[j].Box().Center().At(axis) < cut {
			leaves[i], leaves[j] = leaves[j], leaves[i]
			i++
		}
	}
	return i
}
