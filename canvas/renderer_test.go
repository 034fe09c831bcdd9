package canvas

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/polydraw"
)

// isRed reports whether the pixel is dominated by the default fill color.
func isRed(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xe000 && g < 0x2000 && b < 0x2000
}

func isWhite(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xe000 && g > 0xe000 && b > 0xe000
}

func newTestScene(t *testing.T, w, h int) (*Registry, *Viewport, *polydraw.Controller, *Renderer) {
	t.Helper()
	reg := NewRegistry()
	vp := NewViewport(w, h)
	ctrl := polydraw.NewController(NewFactory(reg, DefaultTheme()))
	r := NewRenderer(reg, vp)
	t.Cleanup(func() { _ = r.Close() })
	return reg, vp, ctrl, r
}

func TestRenderer_EmptyScene(t *testing.T) {
	_, _, _, r := newTestScene(t, 200, 200)

	if r.Image() != nil {
		t.Error("Image() before first frame should be nil")
	}
	if err := r.RenderFrame(""); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}

	img := r.Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 200, 200) {
		t.Fatalf("Bounds() = %v, want 200x200", got)
	}
	// Between grid lines (every 20px) the plane is white.
	if !isWhite(img, 50, 150) {
		t.Errorf("pixel (50,150) = %v, want plane white", img.At(50, 150))
	}
}

func TestRenderer_CompletedAndPlacedPolygon(t *testing.T) {
	reg, _, ctrl, r := newTestScene(t, 200, 200)

	for _, v := range []polydraw.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}} {
		ctrl.AddVertex(v.X, v.Y)
	}
	ctrl.CompletePolygon()
	ctrl.CopyPolygon()
	ctrl.Placement().OnPointerMove(-8, -8)
	ctrl.Placement().Commit()

	before := reg.Stats()
	if err := r.RenderFrame("status"); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	if after := reg.Stats(); after != before {
		t.Errorf("RenderFrame changed registry stats: %+v -> %+v", before, after)
	}

	img := r.Image()
	// 10px per world unit: world (1.5,1.5) -> surface (115,85).
	if !isRed(img, 115, 85) {
		t.Errorf("source interior (115,85) = %v, want fill red", img.At(115, 85))
	}
	// Clone moved by (-8,-8): world (-6.5,-6.5) -> surface (35,165).
	if !isRed(img, 35, 165) {
		t.Errorf("clone interior (35,165) = %v, want fill red", img.At(35, 165))
	}
	if isRed(img, 150, 150) {
		t.Error("pixel (150,150) outside both polygons is red")
	}
}

func TestRenderer_FollowsViewportResize(t *testing.T) {
	_, vp, _, r := newTestScene(t, 120, 80)

	if err := r.RenderFrame(""); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	vp.Resize(300, 100)
	if err := r.RenderFrame(""); err != nil {
		t.Fatalf("RenderFrame() after resize = %v", err)
	}
	if got := r.Image().Bounds(); got != image.Rect(0, 0, 300, 100) {
		t.Errorf("Bounds() = %v, want 300x100", got)
	}
}

func TestRenderer_InvalidViewport(t *testing.T) {
	r := NewRenderer(NewRegistry(), &Viewport{Extent: DefaultExtent})
	if err := r.RenderFrame(""); err == nil {
		t.Error("RenderFrame() on 0x0 viewport succeeded")
	}
}

func TestRenderer_SavePNG(t *testing.T) {
	_, _, _, r := newTestScene(t, 64, 48)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := r.SavePNG(path); err == nil {
		t.Error("SavePNG before first frame succeeded")
	}
	if err := r.RenderFrame(""); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() = %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("saved size = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))

	tests := []struct {
		name   string
		maxDim int
		want   image.Rectangle
	}{
		{"landscape", 50, image.Rect(0, 0, 50, 25)},
		{"no-op", 400, image.Rect(0, 0, 200, 100)},
		{"disabled", 0, image.Rect(0, 0, 200, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Thumbnail(src, tt.maxDim).Bounds(); got != tt.want {
				t.Errorf("Thumbnail(%d) bounds = %v, want %v", tt.maxDim, got, tt.want)
			}
		})
	}

	tall := image.NewRGBA(image.Rect(0, 0, 30, 90))
	if got := Thumbnail(tall, 45).Bounds(); got != image.Rect(0, 0, 15, 45) {
		t.Errorf("portrait thumbnail bounds = %v, want 15x45", got)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, image.NewRGBA(image.Rect(0, 0, 7, 3))); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 7, 3) {
		t.Errorf("decoded bounds = %v, want 7x3", got)
	}
}

func TestLoadFace_MissingFile(t *testing.T) {
	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 12); err == nil {
		t.Error("LoadFace on missing file succeeded")
	}
}
