// Package blobtrace implements the segment-traced implicit blob tree
// renderer: a hierarchy of scalar field primitives combined by sum-blending,
// ray-marched with classic sphere tracing, enhanced sphere tracing and
// segment tracing.
package blobtrace

// Real is the scalar type used throughout the field, geometry and
// marching code. Kept as a distinct alias (rather than bare float64) so
// the numeric precision can be revisited in one place.
type Real = float64

// Epsilon is the minimum marching step and the finite-difference gradient
// step. Box.IntersectRay and V3.Orthonormal use their own local
// tolerances.
const Epsilon Real = 1e-3
