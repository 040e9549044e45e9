package blobtrace

// Box is an axis-aligned bounding box defined by two corners, Min <= Max
// componentwise.
type Box struct {
	Min, Max V3
}

// NewBox builds a box from its two corners, which must already satisfy
// Min <= Max componentwise; callers that don't know the ordering should
// use BoxFromPoints instead.
func NewBox(min, max V3) Box { return Box{Min: min, Max: max} }

// BoxFromPoints returns the tight box enclosing a and b, in either order.
func BoxFromPoints(a, b V3) Box {
	return Box{Min: MinV3(a, b), Max: MaxV3(a, b)}
}

// Inside reports whether p lies strictly inside the box (open interior);
// points exactly on a face report false, matching Box::Inside's strict
// elementwise operator< and operator> in evector.h.
func (b Box) Inside(p V3) bool {
	return p.X > b.Min.X && p.Y > b.Min.Y && p.Z > b.Min.Z &&
		p.X < b.Max.X && p.Y < b.Max.Y && p.Z < b.Max.Z
}

// Union returns the smallest box enclosing both a and b.
func Union(a, b Box) Box {
	return Box{Min: MinV3(a.Min, b.Min), Max: MaxV3(a.Max, b.Max)}
}

// Overlaps reports whether b and other share any interior volume.
func (b Box) Overlaps(other Box) bool {
	if b.Min.X >= other.Max.X || b.Min.Y >= other.Max.Y || b.Min.Z >= other.Max.Z {
		return false
	}
	if b.Max.X <= other.Min.X || b.Max.Y <= other.Min.Y || b.Max.Z <= other.Min.Z {
		return false
	}
	return true
}

// Diagonal returns Max-Min.
func (b Box) Diagonal() V3 { return b.Max.Sub(b.Min) }

// Center returns the box's midpoint.
func (b Box) Center() V3 { return b.Min.Add(b.Max).Mul(0.5) }

// Corner returns Min for i==0 and Max otherwise, mirroring the
// reference's Box::operator[].
func (b Box) Corner(i int) V3 {
	if i == 0 {
		return b.Min
	}
	return b.Max
}

// IntersectRay computes the [tmin, tmax] parametric overlap of ray with
// the box using the slab method, with an epsilon guard for axes the ray
// direction is (near-)parallel to. Returns ok=false when the ray misses.
func (b Box) IntersectRay(ray Ray) (tmin, tmax Real, ok bool) {
	const eps = 1e-3
	tmin, tmax = -1e16, 1e16

	axis := func(o, d, lo, hi Real) bool {
		if d < -eps {
			t := (lo - o) / d
			if t < tmin {
				return false
			}
			if t <= tmax {
				tmax = t
			}
			t = (hi - o) / d
			if t >= tmin {
				if t > tmax {
					return false
				}
				tmin = t
			}
		} else if d > eps {
			t := (hi - o) / d
			if t < tmin {
				return false
			}
			if t <= tmax {
				tmax = t
			}
			t = (lo - o) / d
			if t >= tmin {
				if t > tmax {
					return false
				}
				tmin = t
			}
		} else if o < lo || o > hi {
			return false
		}
		return true
	}

	if !axis(ray.Origin.X, ray.Dir.X, b.Min.X, b.Max.X) {
		return 0, 0, false
	}
	if !axis(ray.Origin.Y, ray.Dir.Y, b.Min.Y, b.Max.Y) {
		return 0, 0, false
	}
	if !axis(ray.Origin.Z, ray.Dir.Z, b.Min.Z, b.Max.Z) {
		return 0, 0, false
	}
	return tmin, tmax, true
}
