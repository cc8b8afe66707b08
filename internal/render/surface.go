package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Align positions text relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing abstraction the scenes render onto. The sim never
// sees it; scenes translate game state into these primitive calls, so tests
// can substitute a recording surface and the game core stays display-free.
type Surface interface {
	Fill(clr color.Color)
	Line(x0, y0, x1, y1, width float32, clr color.Color)
	Circle(cx, cy, r float32, clr color.Color)
	CircleOutline(cx, cy, r, width float32, clr color.Color)
	Rect(x, y, w, h float32, clr color.Color)
	RectOutline(x, y, w, h, width float32, clr color.Color)
	Blit(img image.Image, x, y int)
	Text(s string, x, y int, align Align, clr color.Color)
}

// EbitenSurface draws onto an Ebitengine image using the vector package for
// primitives and the font atlas for text.
type EbitenSurface struct {
	dst   *ebiten.Image
	atlas *FontAtlas
	blits map[image.Image]*ebiten.Image
}

// NewEbitenSurface wraps a destination image.
func NewEbitenSurface(atlas *FontAtlas) *EbitenSurface {
	return &EbitenSurface{
		atlas: atlas,
		blits: make(map[image.Image]*ebiten.Image),
	}
}

// Begin points the surface at this frame's destination image.
func (s *EbitenSurface) Begin(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) Fill(clr color.Color) {
	s.dst.Fill(clr)
}

func (s *EbitenSurface) Line(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(s.dst, x0, y0, x1, y1, width, clr, false)
}

func (s *EbitenSurface) Circle(cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(s.dst, cx, cy, r, clr, false)
}

func (s *EbitenSurface) CircleOutline(cx, cy, r, width float32, clr color.Color) {
	vector.StrokeCircle(s.dst, cx, cy, r, width, clr, false)
}

func (s *EbitenSurface) Rect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(s.dst, x, y, w, h, clr, false)
}

func (s *EbitenSurface) RectOutline(x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(s.dst, x, y, w, h, width, clr, false)
}

// Blit draws a prepared sprite. Source images are converted to textures once
// and cached by identity; sprites are built at startup and never mutate.
func (s *EbitenSurface) Blit(img image.Image, x, y int) {
	tex, ok := s.blits[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		s.blits[img] = tex
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(tex, &op)
}

func (s *EbitenSurface) Text(str string, x, y int, align Align, clr color.Color) {
	switch align {
	case AlignCenter:
		x -= s.atlas.TextWidth(str) / 2
	case AlignRight:
		x -= s.atlas.TextWidth(str)
	}
	for i := 0; i < len(str); i++ {
		ch := str[i]
		if ch == ' ' {
			continue
		}
		glyph := s.atlas.Glyph(ch)
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(x+i*glyphWidth), float64(y))
		op.ColorScale.ScaleWithColor(clr)
		s.dst.DrawImage(glyph, &op)
	}
}
