package blobtrace

import "math"

const (
	// segmentOverstepFactor is e_over = 1.0: the degenerate case where
	// the backtrack branch below never triggers. Kept as a named
	// constant (rather than inlining 1.0) for generality, matching the
	// reference implementation's comment that e is "in [1.0, 2.0]".
	segmentOverstepFactor Real = 1.0
	// segmentAccelFactor is c_acc: the factor by which the tentative
	// probe segment length grows each iteration once a step is accepted.
	segmentAccelFactor Real = 1.5
)

// SegmentTrace derives its step-size Lipschitz bound from the *segment*
// about to be stepped (the candidate [t, t+ts]) rather than a single
// global bound, which is what yields segment tracing's larger safe
// steps relative to the two sphere tracers. A marcher may still miss a
// thin feature if it steps clean through it using a stale bound;
// bounding the probe by ts and deriving k over the entire probed
// segment mitigates, but does not eliminate, that failure mode.
func SegmentTrace(tree *Tree, ray Ray) Hit {
	a, b, ok := boxEntry(tree, ray)
	if !ok {
		return Hit{}
	}

	const e = segmentOverstepFactor
	const accel = segmentAccelFactor
	ce := e - 1.0

	t := a
	steps := 0
	ts := b - a
	te := Real(0)

	for t < b {
		steps++
		i := tree.Intensity(ray.At(t))
		if i > 0 {
			return Hit{T: t, Steps: steps, Hit: true}
		}

		seg := NewSegment(ray.At(t), ray.At(t+ts))
		kLocal := tree.KSegment(seg)

		tk := math.Abs(i) / kLocal
		tk = minReal(tk, ts)

		if tk < ce*te {
			t -= ce * te
			te = 0
		} else {
			te = maxReal(tk*e, Epsilon)
			t += te
		}
		ts = tk * accel
		DebugLog("segment trace: step=%d t=%v i=%v kLocal=%v ts=%v", steps, t, i, kLocal, ts)
	}
	return Hit{Steps: steps}
}
