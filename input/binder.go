package input

import "github.com/gogpu/polydraw"

// Editor is the part of polydraw.Controller the binding layer drives.
type Editor interface {
	AddVertex(x, y float64)
	CompletePolygon()
	CopyPolygon()
	Reset()
	Placement() *polydraw.Placement
}

// Viewport maps screen coordinates into the drawing plane.
// canvas.Viewport implements it.
type Viewport interface {
	ScreenToWorld(sx, sy float64) polydraw.Vertex
	Contains(sx, sy float64) bool
	Resize(width, height int)
}

var _ Editor = (*polydraw.Controller)(nil)

// Binder routes bus events and UI buttons into an Editor.
//
// Clicks inside the viewport add vertices. While a placement is active,
// the binder also follows pointer motion and the next click commits the
// placement instead of adding a vertex.
type Binder struct {
	bus *Bus
	ed  Editor
	vp  Viewport

	click  Subscription
	resize Subscription
	move   Subscription
}

// Bind subscribes a new Binder to bus.
func Bind(bus *Bus, ed Editor, vp Viewport) *Binder {
	b := &Binder{bus: bus, ed: ed, vp: vp}
	b.click = bus.Subscribe(Click, b.onClick)
	b.resize = bus.Subscribe(Resize, b.onResize)
	return b
}

// Complete is the "complete" button.
func (b *Binder) Complete() {
	b.ed.CompletePolygon()
}

// Copy is the "copy" button. When it starts a placement the binder begins
// forwarding pointer motion to it.
func (b *Binder) Copy() {
	b.ed.CopyPolygon()
	if b.ed.Placement() != nil && b.move == 0 {
		b.move = b.bus.Subscribe(PointerMove, b.onMove)
		polydraw.Logger().Debug("input: tracking pointer for placement")
	}
}

// Reset is the "reset" button. Any placement is canceled by the editor
// and pointer tracking stops.
func (b *Binder) Reset() {
	b.ed.Reset()
	b.stopTracking()
}

// Tracking reports whether pointer motion is being forwarded.
func (b *Binder) Tracking() bool {
	return b.move != 0
}

// Close drops every subscription the binder holds.
func (b *Binder) Close() {
	b.stopTracking()
	b.bus.Unsubscribe(b.click)
	b.bus.Unsubscribe(b.resize)
	b.click, b.resize = 0, 0
}

func (b *Binder) onClick(ev Event) {
	if p := b.ed.Placement(); p != nil {
		p.Commit()
		b.stopTracking()
		return
	}
	if !b.vp.Contains(ev.X, ev.Y) {
		return
	}
	w := b.vp.ScreenToWorld(ev.X, ev.Y)
	b.ed.AddVertex(w.X, w.Y)
}

func (b *Binder) onMove(ev Event) {
	p := b.ed.Placement()
	if p == nil {
		// Session ended elsewhere.
		b.stopTracking()
		return
	}
	w := b.vp.ScreenToWorld(ev.X, ev.Y)
	p.OnPointerMove(w.X, w.Y)
}

func (b *Binder) onResize(ev Event) {
	b.vp.Resize(int(ev.X), int(ev.Y))
}

func (b *Binder) stopTracking() {
	if b.move == 0 {
		return
	}
	b.bus.Unsubscribe(b.move)
	b.move = 0
}
