// Package polydraw implements the polygon authoring core: placing
// vertices, closing shapes into filled polygons, cloning the most recent
// polygon and dragging the clone into place, and resetting the scene.
//
// # Overview
//
// The package owns state only. Everything visual goes through the
// [Artifact] capability interface and the [Factory] that builds artifacts,
// so the core never touches a rendering engine directly. The canvas
// sub-package provides gg-backed implementations.
//
// # Quick Start
//
//	reg := canvas.NewRegistry()
//	ctrl := polydraw.NewController(canvas.NewFactory(reg, canvas.DefaultTheme()))
//
//	ctrl.AddVertex(0, 0)
//	ctrl.AddVertex(4, 0)
//	ctrl.AddVertex(4, 4)
//	ctrl.CompletePolygon()
//
//	ctrl.CopyPolygon()
//	ctrl.Placement().OnPointerMove(10, 10)
//	ctrl.Placement().Commit()
//
// # Lifecycle
//
// A [Polygon] is open until [Polygon.Complete] succeeds, then closed for
// good. The [Controller] keeps exactly one open polygon as the drawing
// target and an ordered list of finished ones. While a [Placement] is
// active, vertex input is dropped.
//
// # Error Model
//
// None of the core operations return errors. Unmet preconditions
// (completing with fewer than three vertices, copying with nothing to
// copy, copying while already copying) are silent no-ops, reported only
// at debug level through [Logger].
//
// # Coordinate System
//
// All coordinates handled by this package are world coordinates:
//   - Origin (0,0) at the center of the drawing plane
//   - X increases right
//   - Y increases up
//
// Mapping from screen pixels is the viewport's job (see canvas.Viewport).
package polydraw
