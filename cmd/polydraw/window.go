//go:build !nowindow

package main

import (
	"errors"
	"image"
	"image/draw"

	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/internal/app"
	"github.com/gogpu/polydraw/internal/config"
	"github.com/gogpu/polydraw/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// window hosts a session in an ebiten window. Every host event goes
// through the session's bus or buttons.
type window struct {
	sess   *app.Session
	output string

	w, h   int
	cx, cy int
	frame  *image.RGBA
	err    error
}

func runWindow(cfg *config.Config, output string, opts ...app.Option) error {
	sess := app.New(cfg, opts...)
	defer sess.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("polydraw")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	win := &window{sess: sess, output: output, w: cfg.Width, h: cfg.Height}
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return win.err
}

func (g *window) Update() error {
	if g.err != nil {
		return g.err
	}

	if x, y := ebiten.CursorPosition(); x != g.cx || y != g.cy {
		g.cx, g.cy = x, y
		g.sess.Dispatch(input.Event{Kind: input.PointerMove, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sess.Dispatch(input.Event{Kind: input.Click, X: float64(g.cx), Y: float64(g.cy)})
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.sess.Complete()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sess.Copy()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sess.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := g.sess.Snapshot(g.output); err != nil {
			polydraw.Logger().Error("polydraw: save failed", "path", g.output, "err", err)
		} else {
			polydraw.Logger().Info("polydraw: frame saved", "path", g.output)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (g *window) Draw(screen *ebiten.Image) {
	if err := g.sess.Frame(); err != nil {
		g.err = err
		return
	}
	img := g.sess.Renderer.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	if g.frame == nil || g.frame.Bounds() != b {
		g.frame = image.NewRGBA(b)
	}
	draw.Draw(g.frame, b, img, b.Min, draw.Src)
	if b.Dx() == screen.Bounds().Dx() && b.Dy() == screen.Bounds().Dy() {
		screen.WritePixels(g.frame.Pix)
	}
}

func (g *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.sess.Dispatch(input.Event{Kind: input.Resize, X: float64(g.w), Y: float64(g.h)})
	}
	return g.w, g.h
}
