package polydraw

// Artifact is a renderable primitive owned by a polygon: a preview
// segment, a filled shape or a closed outline.
//
// Implementations are bound to a scene when they are built, so Register
// and Unregister take no arguments. Geometry is fixed at construction;
// SetPosition only changes the translation applied when drawing.
type Artifact interface {
	// Register makes the artifact visible in its scene.
	Register()

	// Unregister removes the artifact from its scene.
	Unregister()

	// SetPosition moves the artifact to (x, y) in world coordinates.
	SetPosition(x, y float64)

	// Position returns the current translation.
	Position() Vertex

	// Clone returns an unregistered copy with the same geometry,
	// style and position.
	Clone() Artifact
}

// Factory builds artifacts for polygons. Returned artifacts are not
// registered; the polygon registers them.
type Factory interface {
	// Segment builds a preview edge between two consecutive vertices.
	Segment(from, to Vertex) Artifact

	// Fill builds the filled shape for a closed vertex ring.
	Fill(vertices []Vertex) Artifact

	// Outline builds the closed boundary. The points already include
	// the closing point equal to the first vertex.
	Outline(points []Vertex) Artifact
}
