package blobtrace

import "math"

// V3 is an affine 3D vector/point (used for both, per the teacher's
// convention of not distinguishing points from directions at the type
// level).
type V3 struct {
	X Real `json:"x" toml:"x"`
	Y Real `json:"y" toml:"y"`
	Z Real `json:"z" toml:"z"`
}

// Add returns a+b.
func (a V3) Add(b V3) V3 { return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a V3) Sub(b V3) V3 { return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Neg returns -a.
func (a V3) Neg() V3 { return V3{-a.X, -a.Y, -a.Z} }

// Mul returns a scaled by s.
func (a V3) Mul(s Real) V3 { return V3{a.X * s, a.Y * s, a.Z * s} }

// Div returns a scaled by 1/s.
func (a V3) Div(s Real) V3 { return V3{a.X / s, a.Y / s, a.Z / s} }

// MulV returns the componentwise product a*b.
func (a V3) MulV(b V3) V3 { return V3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// DivV returns the componentwise quotient a/b.
func (a V3) DivV(b V3) V3 { return V3{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

// Dot returns the scalar product a.b.
func (a V3) Dot(b V3) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a x b.
func (a V3) Cross(b V3) V3 {
	return V3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// SquaredNorm returns |a|^2, avoiding the square root.
func (a V3) SquaredNorm() Real { return a.Dot(a) }

// Norm returns the Euclidean length of a.
func (a V3) Norm() Real { return math.Sqrt(a.Dot(a)) }

// Normalized returns a unit vector in the direction of a. Does not guard
// against a zero vector, matching the reference implementation.
func (a V3) Normalized() V3 { return a.Mul(1.0 / a.Norm()) }

// Abs returns the componentwise absolute value of a.
func (a V3) Abs() V3 {
	return V3{math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z)}
}

// MinV3 returns the componentwise minimum of a and b.
func MinV3(a, b V3) V3 {
	return V3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// MaxV3 returns the componentwise maximum of a and b.
func MaxV3(a, b V3) V3 {
	return V3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// Clamp returns x clamped componentwise between lo and hi.
func Clamp(x, lo, hi V3) V3 {
	clamp1 := func(v, a, b Real) Real {
		if v < a {
			return a
		}
		if v > b {
			return b
		}
		return v
	}
	return V3{clamp1(x.X, lo.X, hi.X), clamp1(x.Y, lo.Y, hi.Y), clamp1(x.Z, lo.Z, hi.Z)}
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b V3, t Real) V3 {
	return a.Add(b.Sub(a).Mul(t))
}

// At returns the i-th component (0=X, 1=Y, 2=Z); any index other than 0
// or 1 returns Z.
func (a V3) At(i int) Real {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// MaxIndex returns the index of the largest component, ties broken
// toward the smaller index (0 beats 1 beats 2).
func (a V3) MaxIndex() int {
	if a.X >= a.Y {
		if a.X >= a.Z {
			return 0
		}
		return 2
	}
	if a.Y >= a.Z {
		return 1
	}
	return 2
}

// Orthonormal derives two unit vectors (u, v) such that (u, a, v) forms
// a right-handed orthonormal basis (v = u x a), given a is already unit
// length.
// Used by the pinhole camera to build screen axes from the view
// direction.
func (a V3) Orthonormal() (u, v V3) {
	ref := V3{0, 0, 1}
	if math.Abs(a.Z) > 1-1e-6 {
		ref = V3{1, 0, 0}
	}
	u = a.Cross(ref).Normalized()
	v = u.Cross(a).Normalized()
	return u, v
}

// IsFinite reports whether every component of a is finite.
func (a V3) IsFinite() bool {
	return isFiniteReal(a.X) && isFiniteReal(a.Y) && isFiniteReal(a.Z)
}

func isFiniteReal(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
