package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bugbout-game/bugbout/internal/telemetry"
	"github.com/bugbout-game/bugbout/internal/world"
)

// Position is the ECS component for an entity's screen position in virtual
// pixels.
type Position struct {
	X int
	Y int
}

// PlayerControlled tags the player entity.
type PlayerControlled struct{}

// Sim is the game simulation. It owns all gameplay state; the entry point
// only maps input onto actions and renders what the sim exposes.
type Sim struct {
	ECS     *ecs.World
	Root    *world.Branch
	Nav     *Navigator
	Session *CombatSession
	State   State
	Log     *MessageLog

	// TotalCaught accumulates bugs caught across completed locations.
	TotalCaught int
	Ticks       uint64

	cfg     Config
	rng     *rand.Rand
	entered *world.Location // location whose combat is active or pending result

	player ecs.Entity
	posMap *ecs.Map[Position]
}

// NewSim creates a simulation on the given world tree. The player starts at
// the root's start node.
func NewSim(root *world.Branch, cfg Config) *Sim {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := ecs.NewWorld(256)
	posMap := ecs.NewMap[Position](w)

	nav := NewNavigator(root)
	start := nav.Pos()
	player := ecs.NewMap2[Position, PlayerControlled](w).NewEntity(
		&Position{X: start.X, Y: start.Y},
		&PlayerControlled{},
	)

	// Bug entities are created once and rerolled per session.
	bugMap := ecs.NewMap2[Bug, BugFlash](w)
	var bugs [BugsPerSession]ecs.Entity
	for i := range bugs {
		bugs[i] = bugMap.NewEntity(&Bug{}, &BugFlash{})
	}

	log := NewMessageLog(20)
	log.Add("Arrow keys to move, X to enter a location.", MsgInfo)

	return &Sim{
		ECS:     w,
		Root:    root,
		Nav:     nav,
		Session: NewCombatSession(bugMap, bugs),
		State:   StateOverworld,
		Log:     log,
		cfg:     cfg,
		rng:     rng,
		player:  player,
		posMap:  posMap,
	}
}

// PlayerPos returns the player's overworld position in virtual pixels.
func (s *Sim) PlayerPos() (int, int) {
	pos := s.posMap.Get(s.player)
	return pos.X, pos.Y
}

// PlayerFlashing reports whether the movement feedback flash is active.
func (s *Sim) PlayerFlashing() bool {
	return s.Nav.Flash > 0
}

// SelectedLocation returns the location the player stands on, or nil.
func (s *Sim) SelectedLocation() *world.Location {
	return s.Nav.SelectedLocation()
}

// EnteredLocation returns the location whose combat is active or awaiting
// confirmation, or nil on the overworld.
func (s *Sim) EnteredLocation() *world.Location {
	return s.entered
}

// Debug reports whether the debug overlay is enabled.
func (s *Sim) Debug() bool {
	return s.cfg.Debug
}

// ToggleDebug flips the debug overlay.
func (s *Sim) ToggleDebug() {
	s.cfg.Debug = !s.cfg.Debug
}

// HandleAction feeds one input action into the state machine. Actions that
// are not valid for the current state are ignored.
func (s *Sim) HandleAction(ctx context.Context, a Action) {
	switch s.State {
	case StateOverworld:
		s.handleOverworld(ctx, a)
	case StateCombat:
		s.handleCombat(ctx, a)
	case StateCombatResult:
		s.handleResult(ctx, a)
	}
}

func (s *Sim) handleOverworld(ctx context.Context, a Action) {
	if dir := direction(a); dir != DirNone {
		if s.Nav.Move(dir) || s.Nav.Cooldown > 0 {
			return
		}
		if loc := s.gateAt(dir); loc != nil {
			s.Log.Add(fmt.Sprintf("Complete %s before continuing!", loc.Name), MsgWarning)
		} else {
			s.Log.Add(fmt.Sprintf("Can't go %s from here.", dir), MsgInfo)
		}
		return
	}

	if a == ActionConfirm {
		loc := s.Nav.SelectedLocation()
		if loc == nil {
			return
		}
		s.enterCombat(ctx, loc)
	}
}

// gateAt returns the unvisited location blocking a horizontal continuation in
// the given direction, or nil if the failure had another cause.
func (s *Sim) gateAt(dir Direction) *world.Location {
	if dir != DirRight || s.Nav.Node != 1 {
		return nil
	}
	if loc := s.Nav.Branch.Loc; loc != nil && !loc.Visited {
		return loc
	}
	return nil
}

func (s *Sim) enterCombat(ctx context.Context, loc *world.Location) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("location", loc.Name),
		attribute.Bool("revisit", loc.Visited),
	)
	span.End()

	loc.Visited = true
	s.entered = loc
	s.Session.Start(s.rng)
	s.State = StateCombat
}

func (s *Sim) handleCombat(ctx context.Context, a Action) {
	if s.Session.InputLocked() {
		return
	}

	switch a {
	case ActionLeft:
		s.Session.CycleTool(-1)
	case ActionRight:
		s.Session.CycleTool(+1)
	case ActionConfirm:
		s.attack(ctx)
	}
}

func (s *Sim) attack(ctx context.Context) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	span.SetAttributes(
		attribute.String("tool", s.Session.Selected.String()),
		attribute.Int("bug_index", s.Session.Current),
	)

	outcome := s.Session.Attack()
	span.SetAttributes(attribute.Bool("caught", outcome == AttackCaught))
	span.End()

	if s.Session.Done() {
		s.State = StateCombatResult
	}
}

func (s *Sim) handleResult(ctx context.Context, a Action) {
	if a != ActionConfirm {
		return
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.Int("bugs_caught", s.Session.Caught),
		attribute.Int("total_caught", s.TotalCaught+s.Session.Caught),
	)
	if s.entered != nil {
		span.SetAttributes(attribute.String("location", s.entered.Name))
	}
	span.End()

	if s.entered != nil {
		s.entered.Completed = true
		s.entered.BugsCaught = s.Session.Caught
		s.Log.Add(fmt.Sprintf("%s complete: %d bugs caught.", s.entered.Name, s.Session.Caught), MsgSuccess)
		s.entered = nil
	}
	s.TotalCaught += s.Session.Caught
	s.State = StateOverworld
}

// Tick advances the simulation by one frame: timers only, no input.
func (s *Sim) Tick() {
	s.Ticks++

	switch s.State {
	case StateOverworld:
		s.Nav.Tick()
		pos := s.posMap.Get(s.player)
		p := s.Nav.Pos()
		pos.X = p.X
		pos.Y = p.Y
	case StateCombat:
		s.Session.Tick()
	}
}
