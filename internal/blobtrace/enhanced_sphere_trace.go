package blobtrace

import "math"

// enhancedOverstepFactor is the enhanced tracer's overstep factor in
// [1,2], matching the reference's hardcoded 1.25.
const enhancedOverstepFactor Real = 1.25

// EnhancedSphereTrace overshoots the safe sphere-tracing step by a
// fixed factor and backtracks when that overstep later proves unsafe.
// It does not re-evaluate the field after backtracking in the same
// iteration, matching the reference implementation.
func EnhancedSphereTrace(tree *Tree, ray Ray, k Real) Hit {
	a, b, ok := boxEntry(tree, ray)
	if !ok {
		return Hit{}
	}

	const e = enhancedOverstepFactor
	t := a
	steps := 0
	te := Real(0)

	for t < b {
		steps++
		i := tree.Intensity(ray.At(t))
		if i > 0 {
			return Hit{T: t, Steps: steps, Hit: true}
		}

		tk := math.Abs(i) / k

		if tk < (e-1.0)*te {
			DebugLog("enhanced sphere trace: step=%d t=%v backtrack=%v", steps, t, (e-1.0)*te)
			t -= (e - 1.0) * te
			te = 0
		} else {
			te = tk
			step := maxReal(tk*e, Epsilon)
			DebugLog("enhanced sphere trace: step=%d t=%v i=%v dt=%v", steps, t, i, step)
			t += step
		}
	}
	return Hit{Steps: steps}
}
