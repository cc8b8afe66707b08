package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphWidth  = 7
	glyphHeight = 13
	atlasCols   = 16

	asciiFirst = 32
	asciiLast  = 126
)

// FontAtlas renders the printable ASCII range with basicfont.Face7x13 into a
// single texture at startup and caches a sub-image per glyph.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [asciiLast - asciiFirst + 1]*ebiten.Image
}

// NewFontAtlas generates the glyph atlas.
func NewFontAtlas() *FontAtlas {
	rows := (asciiLast - asciiFirst) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*glyphWidth, (rows+1)*glyphHeight))
	face := basicfont.Face7x13

	for code := asciiFirst; code <= asciiLast; code++ {
		idx := code - asciiFirst
		cx := (idx % atlasCols) * glyphWidth
		cy := (idx / atlasCols) * glyphHeight
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(cx, cy+11), // baseline at the face's ascent
		}
		d.DrawString(string(rune(code)))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := asciiFirst; code <= asciiLast; code++ {
		idx := code - asciiFirst
		x := (idx % atlasCols) * glyphWidth
		y := (idx / atlasCols) * glyphHeight
		rect := image.Rect(x, y, x+glyphWidth, y+glyphHeight)
		a.glyphs[idx] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for an ASCII code. Anything outside the
// printable range renders as '?'.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if code < asciiFirst || code > asciiLast {
		code = '?'
	}
	return a.glyphs[code-asciiFirst]
}

// TextWidth returns the pixel width of s in this atlas.
func (a *FontAtlas) TextWidth(s string) int {
	return glyphWidth * len(s)
}
