package blobtrace

import "math"

// Hit is the result of marching a ray against a tree.
type Hit struct {
	T     Real // parametric hit distance along the ray, valid only if Hit
	Steps int  // number of field evaluations performed
	Hit   bool
}

// Method identifies one of the three marchers.
type Method int

const (
	MethodSphereTrace Method = iota
	MethodEnhancedSphereTrace
	MethodSegmentTrace
	methodCount
)

// String names a Method the way the reference program's log lines do.
func (m Method) String() string {
	switch m {
	case MethodSphereTrace:
		return "SphereTracing"
	case MethodEnhancedSphereTrace:
		return "Enhanced Sphere Tracing"
	case MethodSegmentTrace:
		return "Segment Tracing"
	default:
		return "Unknown"
	}
}

// Methods returns all three marchers in their canonical order, matching
// the RayTraceMethod enum in the reference main.cpp.
func Methods() []Method {
	return []Method{MethodSphereTrace, MethodEnhancedSphereTrace, MethodSegmentTrace}
}

// March dispatches to the requested marcher. k is the tree's global
// Lipschitz constant, precomputed once per render pass and reused by
// the two sphere tracers.
func March(tree *Tree, ray Ray, method Method, k Real) Hit {
	switch method {
	case MethodSphereTrace:
		return SphereTrace(tree, ray, k)
	case MethodEnhancedSphereTrace:
		return EnhancedSphereTrace(tree, ray, k)
	case MethodSegmentTrace:
		return SegmentTrace(tree, ray)
	default:
		return Hit{}
	}
}

// boxEntry intersects ray with tree's root box, returning the march
// bounds [a,b] and whether the ray hits the box at all. All three
// marchers share this first step.
func boxEntry(tree *Tree, ray Ray) (a, b Real, ok bool) {
	return tree.Box().IntersectRay(ray)
}

func maxReal(a, b Real) Real {
	return math.Max(a, b)
}

func minReal(a, b Real) Real {
	return math.Min(a, b)
}
