package render

import (
	"image"
	"image/color"
)

// Character sprites are generated at startup instead of shipping PNGs: a
// blocky figure in the darkest palette green, 16px for the overworld and a
// 2x scale-up for the combat screen.
var (
	PlayerSprite       = buildPlayerSprite(1)
	PlayerCombatSprite = buildPlayerSprite(2)
)

func buildPlayerSprite(scale int) image.Image {
	size := 16 * scale
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	ink := color.NRGBA{15, 56, 15, 255}
	light := color.NRGBA{139, 172, 15, 255}

	set := func(x, y int, c color.NRGBA) {
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetNRGBA(x*scale+dx, y*scale+dy, c)
			}
		}
	}

	// Head
	for y := 2; y <= 6; y++ {
		for x := 5; x <= 10; x++ {
			set(x, y, ink)
		}
	}
	// Eyes
	set(6, 4, light)
	set(9, 4, light)
	// Body
	for y := 7; y <= 12; y++ {
		for x := 4; x <= 11; x++ {
			set(x, y, ink)
		}
	}
	// Legs
	for y := 13; y <= 15; y++ {
		set(5, y, ink)
		set(6, y, ink)
		set(9, y, ink)
		set(10, y, ink)
	}
	return img
}
