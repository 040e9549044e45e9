package blobtrace

import "errors"

// ErrEmptyParticleList is returned when a tree is built from zero
// primitives; the tree cannot be built and any render call on it must
// fail fast.
var ErrEmptyParticleList = errors.New("blobtrace: empty particle list")

// ErrUnbuiltTree names the error for a Tree whose build failed or was
// never attempted. Tree's query methods return plain values and do not
// check for a missing root; no function in this package returns
// ErrUnbuiltTree.
var ErrUnbuiltTree = errors.New("blobtrace: tree is unbuilt")

// DegenerateGeometryError reports a primitive rejected at construction
// time: zero/negative radius or non-finite coordinates.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "blobtrace: degenerate geometry: " + e.Reason
}
