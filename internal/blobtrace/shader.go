package blobtrace

import "math"

// RGB is an 8-bit-destined color, kept as floating point until the PPM
// writer truncates and wraps each channel mod 256.
type RGB struct {
	R, G, B Real
}

// minDiffuse is the ambient floor applied to the Lambert term so
// surfaces facing away from the sun are still dimly visible, matching
// the reference's Math::Max(NDotL, 0.1).
const minDiffuse Real = 0.1

// Shade computes the Lambert-shaded color at a hit point: a pure red
// diffuse material lit by a single directional light.
func Shade(tree *Tree, ray Ray, t Real, sunDir V3) RGB {
	hitPosition := ray.At(t)
	normal := tree.Gradient(hitPosition).Normalized().Neg()
	nDotL := math.Max(normal.Dot(sunDir), minDiffuse)
	return RGB{R: 255 * nDotL, G: 0, B: 0}
}

// CostColor maps a marcher's step count to a green cost-visualization
// color, saturating at 512 steps.
func CostColor(steps int) RGB {
	c := math.Min(Real(steps)/512.0, 1.0)
	return RGB{R: 0, G: c * 255.0, B: 0}
}
