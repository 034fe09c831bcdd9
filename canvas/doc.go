// Package canvas provides the rendering collaborator for polydraw: a
// registry of visible artifacts, gg-backed artifact kinds, the viewport
// that maps screen pixels to world coordinates, and a frame renderer.
//
// The renderer is a pure projection of the registry. It never registers
// or unregisters anything; only polydraw's Polygon, Controller and
// Placement do.
//
// Example:
//
//	reg := canvas.NewRegistry()
//	vp := canvas.NewViewport(800, 600)
//	ctrl := polydraw.NewController(canvas.NewFactory(reg, canvas.DefaultTheme()))
//	r := canvas.NewRenderer(reg, vp)
//	defer r.Close()
//
//	v := vp.ScreenToWorld(400, 300)
//	ctrl.AddVertex(v.X, v.Y)
//	if err := r.RenderFrame(""); err != nil {
//	    log.Fatal(err)
//	}
//	_ = r.SavePNG("frame.png")
package canvas
