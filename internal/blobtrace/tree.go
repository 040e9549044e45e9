package blobtrace

import "fmt"

// Tree owns the root of a built blob tree. It is immutable once built;
// every query method is a pure, allocation-free, thread-safe function
// of its argument.
type Tree struct {
	root FieldNode
}

// NewTreeFromPoints builds a tree from a flat list of primitive centers,
// all sharing a uniform radius and energy, via BuildBVH. This is the
// Go analog of BlobTreePoint::OptimizeHierarchy(const std::vector<Vector>&, double)
// plus BlobTree's file constructor, generalized to a caller-supplied
// energy instead of the reference's hardcoded 1.0.
func NewTreeFromPoints(centers []V3, radius, energy Real) (*Tree, error) {
	if len(centers) == 0 {
		return nil, ErrEmptyParticleList
	}
	leaves := make([]FieldNode, len(centers))
	for i, c := range centers {
		p, err := NewPoint(c, radius, energy)
		if err != nil {
			return nil, fmt.Errorf("building primitive %d: %w", i, err)
		}
		leaves[i] = p
	}
	return &Tree{root: BuildBVH(leaves)}, nil
}

// NewTreeFromRoot wraps an already-built root node (e.g. a hand-built
// tree used in tests) without running the BVH builder.
func NewTreeFromRoot(root FieldNode) *Tree { return &Tree{root: root} }

// Intensity returns root.Intensity(p) - 0.5: the tree's public field is
// the root's raw sum shifted so the iso-surface lies at 0.
func (t *Tree) Intensity(p V3) Real { return t.root.Intensity(p) - 0.5 }

// Gradient returns the root's gradient at p.
func (t *Tree) Gradient(p V3) V3 { return t.root.Gradient(p) }

// K returns the tree's global Lipschitz constant.
func (t *Tree) K() Real { return t.root.K() }

// KSegment returns the tree's segment-local Lipschitz bound over s.
func (t *Tree) KSegment(s Segment) Real { return t.root.KSegment(s) }

// Box returns the tree's bounding box.
func (t *Tree) Box() Box { return t.root.Box() }
