package canvas

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/polydraw"
)

// hudHeight is the height of the status strip in pixels.
const hudHeight = 28

// Renderer draws the registry into a gg context, one frame at a time.
type Renderer struct {
	reg   *Registry
	vp    *Viewport
	theme Theme
	face  text.Face
	dc    *gg.Context
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*Renderer)

// WithTheme sets the background and grid paint. Artifact paint comes from
// the Factory that built each artifact.
func WithTheme(t Theme) RendererOption {
	return func(r *Renderer) {
		r.theme = t
	}
}

// WithFace enables the HUD status line using the given font face.
// Without a face the status passed to RenderFrame is ignored.
func WithFace(face text.Face) RendererOption {
	return func(r *Renderer) {
		r.face = face
	}
}

// NewRenderer creates a renderer for reg sized by vp. The drawing
// context is allocated on the first frame and follows vp on resize.
func NewRenderer(reg *Registry, vp *Viewport, opts ...RendererOption) *Renderer {
	r := &Renderer{
		reg:   reg,
		vp:    vp,
		theme: DefaultTheme(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderFrame draws the background plane, every registered artifact in
// painter's order and, when a face is set and status is not empty, the
// HUD status line.
func (r *Renderer) RenderFrame(status string) error {
	if err := r.ensureContext(); err != nil {
		return err
	}
	dc := r.dc

	dc.ClearWithColor(r.theme.Background)
	if err := r.drawPlane(); err != nil {
		return err
	}

	for a := range r.reg.All() {
		if err := r.drawArtifact(a); err != nil {
			return fmt.Errorf("canvas: draw %s %d: %w", a.kind, a.id, err)
		}
	}

	if r.face != nil && status != "" {
		if err := r.drawHUD(status); err != nil {
			return err
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("canvas: flush: %w", err)
	}
	return nil
}

// Image returns a copy of the last frame, or nil before the first frame.
// Shapes still queued on a GPU accelerator are flushed first.
func (r *Renderer) Image() image.Image {
	if r.dc == nil {
		return nil
	}
	if err := r.dc.FlushGPU(); err != nil {
		polydraw.Logger().Warn("canvas: flush before read-back failed", "err", err)
	}
	return r.dc.Image()
}

// SavePNG writes the last frame to path.
func (r *Renderer) SavePNG(path string) error {
	if r.dc == nil {
		return fmt.Errorf("canvas: save %s: no frame rendered", path)
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}

func (r *Renderer) ensureContext() error {
	w, h := r.vp.Width, r.vp.Height
	if r.dc == nil {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("canvas: invalid viewport %dx%d", w, h)
		}
		r.dc = gg.NewContext(w, h)
		polydraw.Logger().Debug("canvas: context created", "width", w, "height", h)
		return nil
	}
	if err := r.dc.Resize(w, h); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

// drawPlane draws the white drawing plane and its grid.
func (r *Renderer) drawPlane() error {
	dc, t := r.dc, r.theme
	e := t.PlaneExtent

	x0, y0 := r.vp.surfacePoint(polydraw.V(-e, e))
	x1, y1 := r.vp.surfacePoint(polydraw.V(e, -e))

	dc.SetRGBA(t.Plane.R, t.Plane.G, t.Plane.B, t.Plane.A)
	dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas: plane: %w", err)
	}

	if t.GridDivisions <= 0 {
		return nil
	}
	c := t.Grid.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(t.Grid.Width)
	for i := 0; i <= t.GridDivisions; i++ {
		f := float64(i) / float64(t.GridDivisions)
		x := x0 + (x1-x0)*f
		y := y0 + (y1-y0)*f
		dc.MoveTo(x, y0)
		dc.LineTo(x, y1)
		dc.MoveTo(x0, y)
		dc.LineTo(x1, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("canvas: grid: %w", err)
	}
	return nil
}

func (r *Renderer) drawArtifact(a *Artifact) error {
	pts := a.WorldPoints()
	if len(pts) == 0 {
		return nil
	}
	dc := r.dc
	c := a.style.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)

	for i, p := range pts {
		x, y := r.vp.surfacePoint(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}

	if a.kind == KindFill {
		dc.ClosePath()
		return dc.Fill()
	}
	dc.SetLineWidth(a.style.Width)
	return dc.Stroke()
}

func (r *Renderer) drawHUD(status string) error {
	dc, t := r.dc, r.theme

	bg := t.HUDBackground
	dc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	dc.DrawRectangle(0, 0, float64(dc.Width()), hudHeight)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("canvas: hud: %w", err)
	}

	fg := t.HUDText
	dc.SetRGBA(fg.R, fg.G, fg.B, fg.A)
	dc.SetFont(r.face)
	dc.DrawStringAnchored(status, 8, hudHeight/2, 0, 0.5)
	return nil
}
