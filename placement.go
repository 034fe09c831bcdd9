package polydraw

// placementState tracks a Placement through its single use.
type placementState uint8

const (
	placementIdle placementState = iota
	placementActive
	placementCommitted
	placementCanceled
)

// Placement is one clone-and-drop interaction. It is created by
// Controller.CopyPolygon, follows the pointer through OnPointerMove and
// ends with Commit or Cancel. The input layer forwards events into it;
// the session itself never subscribes to anything.
type Placement struct {
	ctrl   *Controller
	source *Polygon
	state  placementState

	fill    Artifact
	outline Artifact
	pos     Vertex
}

// begin clones the source artifacts and puts them on screen.
func (pl *Placement) begin() {
	if pl.state != placementIdle {
		return
	}
	pl.fill = pl.source.Fill().Clone()
	pl.outline = pl.source.Outline().Clone()
	pl.pos = pl.fill.Position()
	pl.fill.Register()
	pl.outline.Register()
	pl.state = placementActive

	Logger().Debug("polydraw: placement started", "source", pl.source.ID())
}

// Active reports whether the session still follows the pointer.
func (pl *Placement) Active() bool {
	return pl.state == placementActive
}

// Position returns the clone's current translation.
func (pl *Placement) Position() Vertex {
	return pl.pos
}

// OnPointerMove moves the clone to (x, y) in world coordinates.
func (pl *Placement) OnPointerMove(x, y float64) {
	if !pl.Active() {
		return
	}
	pl.pos = V(x, y)
	pl.fill.SetPosition(x, y)
	pl.outline.SetPosition(x, y)
}

// Commit drops the clone where it is and files it as a closed polygon.
// It returns the new polygon, or nil if the session had already ended.
func (pl *Placement) Commit() *Polygon {
	if !pl.Active() {
		return nil
	}
	pl.state = placementCommitted
	pl.ctrl.endPlacement(pl)

	// Clone geometry keeps the source coordinates; the translation
	// carries the move.
	offset := pl.pos.Sub(pl.source.Fill().Position())
	p := newPlacedPolygon(pl.ctrl.factory, translate(pl.source.Vertices(), offset), pl.fill, pl.outline)
	pl.ctrl.file(p)

	Logger().Info("polydraw: clone placed",
		"polygon", p.ID(), "source", pl.source.ID(), "x", pl.pos.X, "y", pl.pos.Y)
	return p
}

// Cancel ends the session and removes the clone from the scene.
func (pl *Placement) Cancel() {
	if !pl.Active() {
		return
	}
	pl.state = placementCanceled
	pl.ctrl.endPlacement(pl)
	pl.fill.Unregister()
	pl.outline.Unregister()

	Logger().Debug("polydraw: placement canceled", "source", pl.source.ID())
}
