package polydraw

import "github.com/google/uuid"

// MinVertices is the number of vertices required to close a polygon.
const MinVertices = 3

// Polygon is an ordered ring of vertices and the artifacts derived from it.
//
// A polygon is either open (accepting vertices, showing preview segments)
// or closed (showing a fill and an outline). Complete is the only
// transition and it cannot be undone.
type Polygon struct {
	id       uuid.UUID
	factory  Factory
	vertices []Vertex

	// Open state
	segments []Artifact

	// Closed state
	fill    Artifact
	outline Artifact
}

// NewPolygon creates an empty open polygon that builds its artifacts with f.
func NewPolygon(f Factory) *Polygon {
	return &Polygon{
		id:      uuid.New(),
		factory: f,
	}
}

// newPlacedPolygon wraps already registered clone artifacts into a
// closed polygon.
func newPlacedPolygon(f Factory, vertices []Vertex, fill, outline Artifact) *Polygon {
	return &Polygon{
		id:       uuid.New(),
		factory:  f,
		vertices: vertices,
		fill:     fill,
		outline:  outline,
	}
}

// ID returns the polygon's identifier.
func (p *Polygon) ID() uuid.UUID {
	return p.id
}

// AddVertex appends a vertex and, from the second vertex on, registers a
// preview segment joining it to the previous one.
// Calls on a closed polygon are ignored.
func (p *Polygon) AddVertex(x, y float64) {
	if p.Closed() {
		Logger().Debug("polydraw: vertex ignored on closed polygon", "polygon", p.id)
		return
	}

	v := V(x, y)
	p.vertices = append(p.vertices, v)
	if n := len(p.vertices); n > 1 {
		seg := p.factory.Segment(p.vertices[n-2], v)
		seg.Register()
		p.segments = append(p.segments, seg)
	}
}

// Complete closes the polygon. With fewer than MinVertices vertices, or
// on an already closed polygon, it does nothing.
//
// The vertex ring is not checked for self-intersection; the fill is
// whatever the renderer's non-zero rule produces.
func (p *Polygon) Complete() {
	if p.Closed() {
		return
	}
	if len(p.vertices) < MinVertices {
		Logger().Debug("polydraw: complete ignored",
			"polygon", p.id, "vertices", len(p.vertices), "need", MinVertices)
		return
	}

	p.fill = p.factory.Fill(p.Vertices())
	p.fill.Register()

	for _, seg := range p.segments {
		seg.Unregister()
	}
	p.segments = nil

	ring := make([]Vertex, 0, len(p.vertices)+1)
	ring = append(ring, p.vertices...)
	ring = append(ring, p.vertices[0])
	p.outline = p.factory.Outline(ring)
	p.outline.Register()
}

// Closed reports whether Complete has succeeded.
func (p *Polygon) Closed() bool {
	return p.fill != nil && p.outline != nil
}

// Vertices returns a copy of the vertices in boundary order.
func (p *Polygon) Vertices() []Vertex {
	out := make([]Vertex, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// VertexCount returns the number of vertices.
func (p *Polygon) VertexCount() int {
	return len(p.vertices)
}

// SegmentCount returns the number of live preview segments.
func (p *Polygon) SegmentCount() int {
	return len(p.segments)
}

// Fill returns the filled artifact, or nil while open.
func (p *Polygon) Fill() Artifact {
	return p.fill
}

// Outline returns the outline artifact, or nil while open.
func (p *Polygon) Outline() Artifact {
	return p.outline
}

// discard unregisters every artifact the polygon has on screen.
func (p *Polygon) discard() {
	for _, seg := range p.segments {
		seg.Unregister()
	}
	p.segments = nil
	if p.fill != nil {
		p.fill.Unregister()
	}
	if p.outline != nil {
		p.outline.Unregister()
	}
}
