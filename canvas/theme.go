package canvas

import "github.com/gogpu/gg"

// Style is the paint used for one artifact.
type Style struct {
	Color gg.RGBA
	Width float64 // stroke width in pixels; ignored for fills
}

// Theme holds the paint for every artifact kind and the background.
type Theme struct {
	Segment Style
	Fill    Style
	Outline Style

	Background gg.RGBA // outside the drawing plane
	Plane      gg.RGBA
	Grid       Style

	// PlaneExtent is the half size of the square drawing plane in world
	// units. GridDivisions lines split it along each axis.
	PlaneExtent   float64
	GridDivisions int

	HUDText       gg.RGBA
	HUDBackground gg.RGBA
}

// DefaultTheme returns the stock palette: blue preview edges, red fills,
// green outlines on a white 20x20 plane with a black 10x10 grid.
func DefaultTheme() Theme {
	return Theme{
		Segment: Style{Color: gg.Hex("#0000ff"), Width: 2},
		Fill:    Style{Color: gg.Hex("#ff0000")},
		Outline: Style{Color: gg.Hex("#00ff00"), Width: 2},

		Background: gg.Black,
		Plane:      gg.White,
		Grid:       Style{Color: gg.Black, Width: 1},

		PlaneExtent:   10,
		GridDivisions: 10,

		HUDText:       gg.White,
		HUDBackground: gg.RGBA2(0, 0, 0, 0.6),
	}
}
