// Package app assembles one editing session: controller, canvas, input
// bus and binder. Both the window host and the script replayer drive a
// Session; neither touches the controller directly.
package app

import (
	"fmt"
	"image"
	"os"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/canvas"
	"github.com/gogpu/polydraw/input"
	"github.com/gogpu/polydraw/internal/config"
	"github.com/gogpu/polydraw/script"
)

var _ script.Host = (*Session)(nil)

// Session owns every component of a running editor.
type Session struct {
	Controller *polydraw.Controller
	Registry   *canvas.Registry
	Viewport   *canvas.Viewport
	Renderer   *canvas.Renderer
	Bus        *input.Bus

	binder *input.Binder
	thumb  int
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	face  text.Face
	thumb int
}

// WithFace enables the HUD status line.
func WithFace(face text.Face) Option {
	return func(o *sessionOptions) { o.face = face }
}

// WithThumbnail makes Snapshot downscale frames so the longer side is at
// most maxDim pixels.
func WithThumbnail(maxDim int) Option {
	return func(o *sessionOptions) { o.thumb = maxDim }
}

// New builds a session from cfg.
func New(cfg *config.Config, opts ...Option) *Session {
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}

	theme := canvas.DefaultTheme()
	reg := canvas.NewRegistry()
	vp := canvas.NewViewport(cfg.Width, cfg.Height)
	vp.Extent = cfg.Extent

	var copts []polydraw.Option
	if cfg.Strict {
		copts = append(copts, polydraw.WithStrictCompletion())
	}
	ctrl := polydraw.NewController(canvas.NewFactory(reg, theme), copts...)

	ropts := []canvas.RendererOption{canvas.WithTheme(theme)}
	if o.face != nil {
		ropts = append(ropts, canvas.WithFace(o.face))
	}

	bus := input.NewBus()
	return &Session{
		Controller: ctrl,
		Registry:   reg,
		Viewport:   vp,
		Renderer:   canvas.NewRenderer(reg, vp, ropts...),
		Bus:        bus,
		binder:     input.Bind(bus, ctrl, vp),
		thumb:      o.thumb,
	}
}

// Dispatch publishes a host event.
func (s *Session) Dispatch(ev input.Event) { s.Bus.Dispatch(ev) }

// Complete presses the complete button.
func (s *Session) Complete() { s.binder.Complete() }

// Copy presses the copy button.
func (s *Session) Copy() { s.binder.Copy() }

// Reset presses the reset button.
func (s *Session) Reset() { s.binder.Reset() }

// Status returns the HUD line for the current state.
func (s *Session) Status() string {
	c := s.Controller
	if pl := c.Placement(); pl != nil {
		p := pl.Position()
		return fmt.Sprintf("placing clone at (%.1f, %.1f) - click to drop", p.X, p.Y)
	}
	return fmt.Sprintf("polygons: %d  vertices: %d", len(c.Polygons()), c.Current().VertexCount())
}

// Frame renders the current state.
func (s *Session) Frame() error {
	return s.Renderer.RenderFrame(s.Status())
}

// Image renders a frame and returns it, downscaled if a thumbnail size
// was configured.
func (s *Session) Image() (image.Image, error) {
	if err := s.Frame(); err != nil {
		return nil, err
	}
	img := s.Renderer.Image()
	if s.thumb > 0 {
		return canvas.Thumbnail(img, s.thumb), nil
	}
	return img, nil
}

// Snapshot renders a frame and writes it to path as PNG.
func (s *Session) Snapshot(path string) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: snapshot: %w", err)
	}
	if err := canvas.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close releases the renderer and drops the input subscriptions.
func (s *Session) Close() error {
	s.binder.Close()
	return s.Renderer.Close()
}
