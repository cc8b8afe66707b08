package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"

	"github.com/bugbout-game/bugbout/assets"
	"github.com/bugbout-game/bugbout/internal/game"
	"github.com/bugbout-game/bugbout/internal/render"
	"github.com/bugbout-game/bugbout/internal/telemetry"
	"github.com/bugbout-game/bugbout/internal/world"
)

const (
	scale        = 4
	screenWidth  = render.VirtualWidth * scale
	screenHeight = render.VirtualHeight * scale
	title        = "BugBout"
)

// Game is the Ebitengine game struct. It owns input mapping and rendering.
// All gameplay state lives in sim.
type Game struct {
	sim     *game.Sim
	surface *render.EbitenSurface
	ctx     context.Context
}

func NewGame(ctx context.Context, sim *game.Sim) *Game {
	atlas := render.NewFontAtlas()
	return &Game{
		sim:     sim,
		surface: render.NewEbitenSurface(atlas),
		ctx:     ctx,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.sim.ToggleDebug()
	}

	if a := pressedAction(); a != game.ActionNone {
		g.sim.HandleAction(g.ctx, a)
	}

	g.sim.Tick()
	return nil
}

// pressedAction maps this frame's key presses to one abstract action.
func pressedAction() game.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		return game.ActionUp
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return game.ActionRight
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		return game.ActionDown
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return game.ActionLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		return game.ActionConfirm
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		return game.ActionCancel
	default:
		return game.ActionNone
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	switch g.sim.State {
	case game.StateOverworld:
		render.DrawOverworld(g.surface, g.sim)
	case game.StateCombat:
		render.DrawCombat(g.surface, g.sim)
	case game.StateCombatResult:
		render.DrawResult(g.surface, g.sim)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.VirtualWidth, render.VirtualHeight
}

// configFromEnv reads run options after godotenv has populated the env.
func configFromEnv() game.Config {
	var cfg game.Config
	if v := os.Getenv("BUGBOUT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("invalid BUGBOUT_SEED %q: %v", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("BUGBOUT_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid BUGBOUT_DEBUG %q: %v", v, err)
		}
		cfg.Debug = debug
	}
	return cfg
}

func main() {
	// .env is optional; env vars may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("note: .env not loaded: %v", err)
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("telemetry setup failed, running untraced: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	data, err := assets.Worlds.ReadFile("worlds/grove.json")
	if err != nil {
		log.Fatalf("load world: %v", err)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	root, err := world.BuildWorld(data)
	span.End()
	if err != nil {
		log.Fatalf("build world: %v", err)
	}

	sim := game.NewSim(root, configFromEnv())

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(NewGame(ctx, sim)); err != nil {
		log.Fatal(err)
	}
}
