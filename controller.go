package polydraw

// Controller owns the polygon being drawn and the list of finished
// polygons. It is the single entry point for input handlers and the only
// component that mutates the polygon list.
//
// Controller is not safe for concurrent use. All calls are expected to
// come from one event loop.
type Controller struct {
	factory Factory
	opts    options

	current   *Polygon
	polygons  []*Polygon
	placement *Placement
}

// NewController creates a controller with an empty scene.
func NewController(f Factory, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		factory: f,
		opts:    o,
		current: NewPolygon(f),
	}
}

// AddVertex appends a vertex to the current polygon.
// While a clone placement is in progress the call is dropped.
func (c *Controller) AddVertex(x, y float64) {
	if c.IsCopying() {
		Logger().Debug("polydraw: vertex dropped during placement", "x", x, "y", y)
		return
	}
	c.current.AddVertex(x, y)
}

// CompletePolygon closes the current polygon, files it and starts a new
// one.
//
// By default the current polygon is filed even when it had too few
// vertices to close; such an entry stays open and cannot be copied. With
// WithStrictCompletion the call is a no-op in that case.
func (c *Controller) CompletePolygon() {
	p := c.current
	p.Complete()
	if !p.Closed() && c.opts.strict {
		return
	}

	c.polygons = append(c.polygons, p)
	c.current = NewPolygon(c.factory)

	if p.Closed() {
		Logger().Info("polydraw: polygon completed",
			"polygon", p.ID(), "vertices", p.VertexCount(), "total", len(c.polygons))
	}
}

// CopyPolygon starts a clone placement of the last filed polygon.
//
// It is a no-op when no polygon has been filed, when the last one is not
// closed, or when a placement is already active.
func (c *Controller) CopyPolygon() {
	if c.placement != nil {
		Logger().Debug("polydraw: copy rejected, placement already active")
		return
	}
	if len(c.polygons) == 0 {
		Logger().Debug("polydraw: copy ignored, no polygons")
		return
	}
	src := c.polygons[len(c.polygons)-1]
	if !src.Closed() {
		Logger().Debug("polydraw: copy ignored, last polygon is open", "polygon", src.ID())
		return
	}

	c.placement = &Placement{ctrl: c, source: src}
	c.placement.begin()
}

// Placement returns the active clone placement, or nil.
func (c *Controller) Placement() *Placement {
	return c.placement
}

// IsCopying reports whether a clone placement is active.
func (c *Controller) IsCopying() bool {
	return c.placement != nil
}

// Reset clears the scene: any active placement is canceled, every
// artifact of the current and filed polygons is unregistered, and a fresh
// polygon becomes current.
func (c *Controller) Reset() {
	if c.placement != nil {
		c.placement.Cancel()
	}

	c.current.discard()
	for _, p := range c.polygons {
		p.discard()
	}

	n := len(c.polygons)
	c.polygons = nil
	c.current = NewPolygon(c.factory)

	Logger().Info("polydraw: scene reset", "removed", n)
}

// Current returns the open polygon receiving vertices.
func (c *Controller) Current() *Polygon {
	return c.current
}

// Polygons returns the filed polygons in completion order.
func (c *Controller) Polygons() []*Polygon {
	out := make([]*Polygon, len(c.polygons))
	copy(out, c.polygons)
	return out
}

// file appends a placed polygon. Called by Placement.Commit.
func (c *Controller) file(p *Polygon) {
	c.polygons = append(c.polygons, p)
}

// endPlacement clears the active session if it is pl.
func (c *Controller) endPlacement(pl *Placement) {
	if c.placement == pl {
		c.placement = nil
	}
}
