package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/bugbout-game/bugbout/internal/game"
	"github.com/bugbout-game/bugbout/internal/world"
)

// Scene composition: each Draw function translates sim state into Surface
// primitives. Nothing here mutates the sim.

// DrawOverworld renders the branch map, the player, and the HUD.
func DrawOverworld(s Surface, sim *game.Sim) {
	s.Fill(ColorBG)

	sel := sim.SelectedLocation()
	sim.Root.Walk(func(b *world.Branch) {
		drawBranch(s, b, sel)
	})

	px, py := sim.PlayerPos()
	if sim.PlayerFlashing() {
		s.Rect(float32(px-8), float32(py-8), 16, 16, ColorWhite)
	} else {
		s.Blit(PlayerSprite, px-8, py-8)
	}

	// Exclamation mark over a location that still needs clearing.
	if sel != nil && !sel.Completed {
		s.Rect(float32(px-1), float32(py-14), 2, 4, ColorWhite)
		s.Rect(float32(px-1), float32(py-9), 2, 2, ColorWhite)
	}

	s.Text("BugBout", 5, 5, AlignLeft, ColorInk)
	s.Text(fmt.Sprintf("Total Bugs: %d", sim.TotalCaught), VirtualWidth-5, 5, AlignRight, ColorInk)
	s.Text("Arrows: Move  X: Enter  Z: Back", 5, VirtualHeight-30, AlignLeft, ColorInk)

	if sel != nil {
		s.Text("Location: "+sel.Name, 5, VirtualHeight-20, AlignLeft, ColorInk)
		s.Text("Press X to enter", 5, VirtualHeight-10, AlignLeft, ColorInk)
	} else if msg := latest(sim); msg != nil {
		s.Text(msg.Text, 5, VirtualHeight-20, AlignLeft, msgColor(msg.Priority))
	}

	if sim.Debug() {
		s.Text(fmt.Sprintf("Pos: (%d, %d)", px, py), VirtualWidth-5, 20, AlignRight, ColorInk)
		s.Text(fmt.Sprintf("Node: %d/1", sim.Nav.Node), VirtualWidth-5, 33, AlignRight, ColorInk)
	}
}

func drawBranch(s Surface, b *world.Branch, sel *world.Location) {
	x0, y0 := float32(b.Start.X), float32(b.Start.Y)
	x1, y1 := float32(b.End.X), float32(b.End.Y)

	s.Line(x0, y0, x1, y1, 2, ColorBranch)
	s.Circle(x0, y0, 4, ColorDark)
	s.Circle(x1, y1, 4, ColorDark)
	s.CircleOutline(x0, y0, 4, 1, ColorWhite)
	s.CircleOutline(x1, y1, 4, 1, ColorWhite)

	if b.Loc != nil {
		drawLocation(s, b.Loc, b.Loc == sel)
	}
}

func drawLocation(s Surface, loc *world.Location, selected bool) {
	clr := color.Color(ColorBranch)
	if selected {
		clr = ColorDark
	}
	if loc.Completed {
		clr = ColorDone
	}
	x, y := float32(loc.Pos.X), float32(loc.Pos.Y)
	s.Rect(x-4, y-4, 8, 8, clr)
	if selected {
		s.RectOutline(x-4, y-4, 8, 8, 1, ColorWhite)
	}
	s.Rect(x-2, y-2, 4, 4, ColorBlack)
}

// DrawCombat renders the four-quadrant combat screen: tool diagram, current
// bug, player, and message area.
func DrawCombat(s Surface, sim *game.Sim) {
	s.Fill(ColorBG)

	s.Line(VirtualWidth/2, 0, VirtualWidth/2, VirtualHeight, 1, ColorWhite)
	s.Line(0, VirtualHeight/2, VirtualWidth, VirtualHeight/2, 1, ColorWhite)

	drawToolDiagram(s, sim.Session.Selected)

	if bug, visible := sim.Session.CurrentBug(); !sim.Session.Done() {
		bugX, bugY := float32(VirtualWidth*3/4), float32(VirtualHeight/4)
		if visible {
			drawBug(s, bugX, bugY)
		}
		s.Text("Bug: "+bug.Species.String(), int(bugX), 10, AlignCenter, ColorInk)
	}

	s.Blit(PlayerCombatSprite, sim.Session.SlideX-16, VirtualHeight*3/4-16)

	s.Text(sim.Session.Message, VirtualWidth*3/4, VirtualHeight*3/4, AlignCenter, ColorInk)

	s.Text(fmt.Sprintf("Bug %d/%d", sim.Session.Current+1, game.BugsPerSession),
		VirtualWidth-5, 5, AlignRight, ColorInk)
	s.Text(fmt.Sprintf("Caught: %d", sim.Session.Caught), VirtualWidth-5, 18, AlignRight, ColorInk)
}

// drawToolDiagram lays the three tools out in a triangle in the upper left
// quadrant, with the selected one ringed.
func drawToolDiagram(s Surface, selected game.Tool) {
	cx, cy := float32(VirtualWidth/4), float32(VirtualHeight/4)
	const radius = 20

	netX, netY := cx, cy-radius
	jarX, jarY := cx+radius*0.866, cy+radius*0.5
	magX, magY := cx-radius*0.866, cy+radius*0.5

	s.Line(netX, netY, jarX, jarY, 1, ColorWhite)
	s.Line(jarX, jarY, magX, magY, 1, ColorWhite)
	s.Line(magX, magY, netX, netY, 1, ColorWhite)

	// Arrowheads at edge midpoints, hinting the cycle order.
	s.Circle((netX+jarX)/2, (netY+jarY)/2, 2, ColorWhite)
	s.Circle((jarX+magX)/2, (jarY+magY)/2, 2, ColorWhite)
	s.Circle((magX+netX)/2, (magY+netY)/2, 2, ColorWhite)

	drawTool(s, game.ToolNet, netX, netY, selected == game.ToolNet)
	drawTool(s, game.ToolJar, jarX, jarY, selected == game.ToolJar)
	drawTool(s, game.ToolMagnifier, magX, magY, selected == game.ToolMagnifier)

	s.Text("Net", int(netX), int(netY)-18, AlignCenter, ColorInk)
	s.Text("Jar", int(jarX), int(jarY)+10, AlignCenter, ColorInk)
	s.Text("Magnifier", int(magX), int(magY)+10, AlignCenter, ColorInk)
}

func drawTool(s Surface, tool game.Tool, x, y float32, selected bool) {
	switch tool {
	case game.ToolNet:
		s.CircleOutline(x, y, 6, 1, ColorWhite)
		s.Line(x, y, x, y+8, 1, ColorWhite)
	case game.ToolJar:
		s.RectOutline(x-3, y-4, 6, 8, 1, ColorWhite)
		s.Line(x-3, y-4, x+3, y-4, 1, ColorWhite)
	case game.ToolMagnifier:
		s.CircleOutline(x, y, 4, 1, ColorWhite)
		s.Line(x+3, y+3, x+6, y+6, 1, ColorWhite)
	}
	if selected {
		s.CircleOutline(x, y, 8, 1, ColorSelect)
	}
}

// drawBug draws the current bug: round body, eight legs, two eyes.
func drawBug(s Surface, x, y float32) {
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		legX := x + float32(math.Cos(angle))*10
		legY := y + float32(math.Sin(angle))*10
		s.Line(x, y, legX, legY, 2, ColorInk)
	}
	s.Circle(x, y, 8, ColorInk)
	s.Circle(x-3, y-3, 2, ColorWhite)
	s.Circle(x+3, y-3, 2, ColorWhite)
}

// DrawResult renders the post-combat tally screen.
func DrawResult(s Surface, sim *game.Sim) {
	s.Fill(ColorDark)
	s.RectOutline(10, 10, VirtualWidth-20, VirtualHeight-20, 2, ColorWhite)

	s.Text("Combat Complete!", VirtualWidth/2, 40, AlignCenter, ColorBG)
	s.Text(fmt.Sprintf("You caught %d bugs!", sim.Session.Caught),
		VirtualWidth/2, VirtualHeight/2, AlignCenter, ColorBG)
	s.Text("Press X to return", VirtualWidth/2, VirtualHeight-30, AlignCenter, ColorBG)
}

func latest(sim *game.Sim) *game.Message {
	msgs := sim.Log.Recent(1)
	if len(msgs) == 0 {
		return nil
	}
	return &msgs[0]
}

func msgColor(p game.MsgPriority) color.Color {
	switch p {
	case game.MsgWarning:
		return ColorWhite
	case game.MsgSuccess:
		return ColorDone
	default:
		return ColorInk
	}
}
