package canvas

import (
	"fmt"

	"github.com/gogpu/polydraw"
)

// Kind identifies what an artifact draws.
type Kind uint8

const (
	// KindSegment is an open preview edge between two vertices.
	KindSegment Kind = iota
	// KindFill is a filled closed shape.
	KindFill
	// KindOutline is a stroked closed boundary.
	KindOutline
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindFill:
		return "fill"
	case KindOutline:
		return "outline"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Artifact is a renderable primitive bound to a Registry.
// It implements polydraw.Artifact.
type Artifact struct {
	reg    *Registry
	id     uint64
	kind   Kind
	points []polydraw.Vertex
	style  Style
	pos    polydraw.Vertex

	registrations   int
	unregistrations int
}

var _ polydraw.Artifact = (*Artifact)(nil)

func newArtifact(reg *Registry, kind Kind, pts []polydraw.Vertex, style Style) *Artifact {
	return &Artifact{
		reg:    reg,
		id:     reg.newID(),
		kind:   kind,
		points: append([]polydraw.Vertex(nil), pts...),
		style:  style,
	}
}

// Register adds the artifact to its registry. Registering twice is a
// logged no-op.
func (a *Artifact) Register() {
	if a.reg.add(a) {
		a.registrations++
	}
}

// Unregister removes the artifact from its registry. Removing an
// artifact that is not registered is a logged no-op.
func (a *Artifact) Unregister() {
	if a.reg.remove(a) {
		a.unregistrations++
	}
}

// SetPosition sets the translation applied to the geometry.
func (a *Artifact) SetPosition(x, y float64) {
	a.pos = polydraw.V(x, y)
}

// Position returns the current translation.
func (a *Artifact) Position() polydraw.Vertex {
	return a.pos
}

// Clone returns an unregistered copy in the same registry.
func (a *Artifact) Clone() polydraw.Artifact {
	c := newArtifact(a.reg, a.kind, a.points, a.style)
	c.pos = a.pos
	return c
}

// ID returns the artifact's registry-local identifier.
func (a *Artifact) ID() uint64 { return a.id }

// Kind returns what the artifact draws.
func (a *Artifact) Kind() Kind { return a.kind }

// Style returns the artifact's paint.
func (a *Artifact) Style() Style { return a.style }

// Points returns a copy of the untranslated geometry.
func (a *Artifact) Points() []polydraw.Vertex {
	return append([]polydraw.Vertex(nil), a.points...)
}

// WorldPoints returns the geometry translated by Position.
func (a *Artifact) WorldPoints() []polydraw.Vertex {
	out := make([]polydraw.Vertex, len(a.points))
	for i, p := range a.points {
		out[i] = p.Add(a.pos)
	}
	return out
}

// Registered reports whether the artifact is currently in its registry.
func (a *Artifact) Registered() bool {
	return a.reg.Contains(a)
}

// Registrations returns how many times the artifact was successfully
// registered and unregistered.
func (a *Artifact) Registrations() (registered, unregistered int) {
	return a.registrations, a.unregistrations
}
