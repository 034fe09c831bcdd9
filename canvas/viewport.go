package canvas

import "github.com/gogpu/polydraw"

// DefaultExtent is the world distance from the viewport center to each
// edge.
const DefaultExtent = 10.0

// Viewport maps between screen pixels and world coordinates.
//
// The visible world spans [-Extent, Extent] on both axes regardless of
// aspect ratio, so a unit may be wider than it is tall. Screen Y grows
// down, world Y grows up.
type Viewport struct {
	Left, Top     float64 // screen position of the drawing surface
	Width, Height int     // surface size in pixels
	Extent        float64
}

// NewViewport creates a viewport of the given size at the screen origin.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		Width:  width,
		Height: height,
		Extent: DefaultExtent,
	}
}

// Resize updates the surface size. Non-positive sizes are ignored.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width, v.Height = width, height
}

// Contains reports whether the screen point lies on the surface,
// edges included.
func (v *Viewport) Contains(sx, sy float64) bool {
	return sx >= v.Left && sx <= v.Left+float64(v.Width) &&
		sy >= v.Top && sy <= v.Top+float64(v.Height)
}

// ScreenToWorld maps a screen point to world coordinates. Points outside
// the surface map outside [-Extent, Extent].
func (v *Viewport) ScreenToWorld(sx, sy float64) polydraw.Vertex {
	nx := (sx-v.Left)/float64(v.Width)*2 - 1
	ny := -((sy-v.Top)/float64(v.Height)*2 - 1)
	return polydraw.V(nx*v.Extent, ny*v.Extent)
}

// WorldToScreen maps a world point to screen coordinates.
func (v *Viewport) WorldToScreen(p polydraw.Vertex) (sx, sy float64) {
	nx := p.X / v.Extent
	ny := p.Y / v.Extent
	sx = v.Left + (nx+1)/2*float64(v.Width)
	sy = v.Top + (1-ny)/2*float64(v.Height)
	return sx, sy
}

// surfacePoint maps a world point into surface-local pixels.
func (v *Viewport) surfacePoint(p polydraw.Vertex) (x, y float64) {
	sx, sy := v.WorldToScreen(p)
	return sx - v.Left, sy - v.Top
}
