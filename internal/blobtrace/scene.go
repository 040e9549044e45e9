package blobtrace

// Scene bundles everything a render pass needs, passed by reference to
// the marchers and the shader instead of process-wide global state
// (Design Notes §9: "Re-architect as an explicit Scene{tree, camera,
// sun} passed by reference").
type Scene struct {
	Tree   *Tree
	Camera Camera
	SunDir V3
}

// NewScene builds a Scene from its three components.
func NewScene(tree *Tree, camera Camera, sunDir V3) *Scene {
	return &Scene{Tree: tree, Camera: camera, SunDir: sunDir}
}
