package canvas

import (
	"iter"
	"slices"

	"github.com/gogpu/polydraw"
)

// Registry is the set of artifacts currently visible in the scene, kept
// in registration order (painter's order: later artifacts draw on top).
//
// Registry is not safe for concurrent use.
type Registry struct {
	items  []*Artifact
	nextID uint64
	stats  Stats
}

// Stats counts registry traffic since creation.
type Stats struct {
	Live         int // artifacts currently registered
	Registered   int // successful Register calls
	Unregistered int // successful Unregister calls
	Rejected     int // double registers and stray unregisters
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make([]*Artifact, 0, 64),
	}
}

// Len returns the number of registered artifacts.
func (r *Registry) Len() int {
	return len(r.items)
}

// All iterates over the registered artifacts in painter's order.
func (r *Registry) All() iter.Seq[*Artifact] {
	return func(yield func(*Artifact) bool) {
		for _, a := range r.items {
			if !yield(a) {
				return
			}
		}
	}
}

// Contains reports whether a is registered here.
func (r *Registry) Contains(a *Artifact) bool {
	return slices.Contains(r.items, a)
}

// Stats returns the traffic counters.
func (r *Registry) Stats() Stats {
	s := r.stats
	s.Live = len(r.items)
	return s
}

// newID hands out artifact identifiers for logs.
func (r *Registry) newID() uint64 {
	r.nextID++
	return r.nextID
}

func (r *Registry) add(a *Artifact) bool {
	if r.Contains(a) {
		r.stats.Rejected++
		polydraw.Logger().Warn("canvas: artifact registered twice", "artifact", a.id, "kind", a.kind)
		return false
	}
	r.items = append(r.items, a)
	r.stats.Registered++
	return true
}

func (r *Registry) remove(a *Artifact) bool {
	i := slices.Index(r.items, a)
	if i < 0 {
		r.stats.Rejected++
		polydraw.Logger().Warn("canvas: unregister of artifact not in scene", "artifact", a.id, "kind", a.kind)
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	r.stats.Unregistered++
	return true
}
