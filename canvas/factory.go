package canvas

import "github.com/gogpu/polydraw"

// Factory builds themed artifacts bound to one registry.
// It implements polydraw.Factory.
type Factory struct {
	reg   *Registry
	theme Theme
}

var _ polydraw.Factory = (*Factory)(nil)

// NewFactory creates a factory whose artifacts register with reg.
func NewFactory(reg *Registry, theme Theme) *Factory {
	return &Factory{reg: reg, theme: theme}
}

// Segment builds a preview edge.
func (f *Factory) Segment(from, to polydraw.Vertex) polydraw.Artifact {
	return newArtifact(f.reg, KindSegment, []polydraw.Vertex{from, to}, f.theme.Segment)
}

// Fill builds a filled shape over the vertex ring.
func (f *Factory) Fill(vertices []polydraw.Vertex) polydraw.Artifact {
	return newArtifact(f.reg, KindFill, vertices, f.theme.Fill)
}

// Outline builds a stroked boundary through points.
func (f *Factory) Outline(points []polydraw.Vertex) polydraw.Artifact {
	return newArtifact(f.reg, KindOutline, points, f.theme.Outline)
}
