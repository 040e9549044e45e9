package blobtrace

import (
	"bufio"
	"fmt"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// meshExportCells controls the marching-cubes tessellation resolution
// used by ExportMeshOBJ, mirroring chazu-lignin's defaultMeshCells.
const meshExportCells = 200

// treeSDF3 adapts a *Tree to sdf.SDF3 (Evaluate + BoundingBox), the
// same adaptation chazu-lignin/pkg/kernel/sdfx/sdfx.go performs to
// drive its CAD kernel off this library. It is only ever touched by
// ExportMeshOBJ; the ray-marching path never depends on this type.
type treeSDF3 struct {
	tree *Tree
}

var _ sdf.SDF3 = treeSDF3{}

// Evaluate returns the tree's shifted intensity at p, negated to match
// sdfx's outside-positive / inside-negative signed-distance convention
// (the blob tree's own convention is outside-negative-ish,
// inside-positive: Tree.Intensity(p) > 0 means inside the surface).
func (t treeSDF3) Evaluate(p v3.Vec) Real {
	return -t.tree.Intensity(V3{p.X, p.Y, p.Z})
}

// BoundingBox returns the tree's bounding box as an sdf.Box3.
func (t treeSDF3) BoundingBox() sdf.Box3 {
	b := t.tree.Box()
	return sdf.Box3{
		Min: v3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		Max: v3.Vec{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// ExportMeshOBJ tessellates the tree's iso-surface (intensity(p) == 0)
// into a triangle mesh via sdfx's uniform marching cubes and writes it
// as a plain-text Wavefront OBJ. This is a debug/inspection path only:
// it is independent of the marchers and shading code and is never
// invoked on any hot loop.
func ExportMeshOBJ(tree *Tree, path string) error {
	renderer := render.NewMarchingCubesUniform(meshExportCells)
	triangles := render.ToTriangles(treeSDF3{tree: tree}, renderer)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh file %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			if _, err := fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z); err != nil {
				return fmt.Errorf("writing mesh file %q: %w", path, err)
			}
		}
	}
	for i := range triangles {
		base := i*3 + 1 // OBJ vertex indices are 1-based
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", base, base+1, base+2); err != nil {
			return fmt.Errorf("writing mesh file %q: %w", path, err)
		}
	}
	return w.Flush()
}
