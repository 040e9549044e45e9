package blobtrace

import "math"

// Camera film parameters. cameraApertureHeight is declared but unused:
// the field of view is driven entirely by aperture width and focal
// length, matching the reference camera model.
const (
	cameraApertureWidth  Real = 1.995
	cameraApertureHeight Real = 1.5 //lint:ignore U1000 unused, matches the reference camera model
	cameraFocalLengthMM  Real = 35.0
)

// Camera is a pinhole camera looking at the world origin from Origin.
type Camera struct {
	Origin        V3
	Width, Height int

	view       V3 // normalized direction from Origin to the world origin
	horizontal V3 // screen-space horizontal basis vector, scaled by the half-width fov
	vertical   V3 // screen-space vertical basis vector, scaled by the half-height fov
}

// NewPinholeCamera builds a camera at origin, looking at the world
// origin, for an image of the given dimensions.
func NewPinholeCamera(origin V3, width, height int) Camera {
	view := origin.Neg().Normalized()
	h, u := view.Orthonormal()

	avh := 2.0 * math.Atan(cameraApertureWidth*25.4*0.5/cameraFocalLengthMM)
	avv := 2.0 * math.Atan(math.Tan(avh/2.0) * Real(height) / Real(width))

	const length = 1.0
	vLength := math.Tan(avv/2.0) * length
	hLength := vLength * (Real(width) / Real(height))

	return Camera{
		Origin:     origin,
		Width:      width,
		Height:     height,
		view:       view,
		horizontal: h.Mul(hLength),
		vertical:   u.Mul(vLength),
	}
}

// RayForPixel returns the camera ray through pixel (i,j), i in
// [0,Width), j in [0,Height); j increases downward in image space and
// is inverted to screen-space y.
func (c Camera) RayForPixel(i, j int) Ray {
	x := (Real(i) - Real(c.Width)/2.0) / (Real(c.Width) / 2.0)
	y := (Real(c.Height)/2.0 - Real(j)) / (Real(c.Height) / 2.0)

	dir := c.view.Add(c.horizontal.Mul(x)).Add(c.vertical.Mul(y)).Normalized()
	return NewRay(c.Origin, dir)
}
