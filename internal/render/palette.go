package render

import "image/color"

// Virtual screen dimensions (Game Boy resolution). Everything is drawn in
// this space; Ebitengine scales it to the window.
const (
	VirtualWidth  = 160
	VirtualHeight = 144
)

// Game Boy inspired four-green palette, plus accents for highlights.
var (
	ColorBG     = color.RGBA{205, 222, 135, 255} // lightest green, background
	ColorBranch = color.RGBA{139, 172, 15, 255}  // medium green, branches and markers
	ColorDark   = color.RGBA{48, 98, 48, 255}    // dark green, nodes and panels
	ColorInk    = color.RGBA{15, 56, 15, 255}    // darkest green, player and text
	ColorDone   = color.RGBA{100, 200, 100, 255} // completed location tint

	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorSelect = color.RGBA{255, 255, 0, 255} // tool selection ring
)
