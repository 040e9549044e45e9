package blobtrace

// Ray is an origin and a direction. Callers are expected to pass a
// normalized direction; the core never renormalizes it.
type Ray struct {
	Origin V3
	Dir    V3
}

// NewRay builds a ray from an origin and direction.
func NewRay(origin, dir V3) Ray { return Ray{Origin: origin, Dir: dir} }

// At returns the point at parameter t along the ray.
func (r Ray) At(t Real) V3 { return r.Origin.Add(r.Dir.Mul(t)) }
