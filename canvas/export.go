package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
)

// LoadFace loads a TrueType font from path and returns a face of the
// given size in points for the HUD.
func LoadFace(path string, size float64) (text.Face, error) {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: load font %s: %w", path, err)
	}
	return source.Face(size), nil
}

// Thumbnail scales img down so that its longer side is maxDim pixels,
// keeping the aspect ratio. Images already small enough are copied
// unscaled.
func Thumbnail(img image.Image, maxDim int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = max(1, h*maxDim/w)
			w = maxDim
		} else {
			w = max(1, w*maxDim/h)
			h = maxDim
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}
