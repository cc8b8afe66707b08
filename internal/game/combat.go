package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
)

// Tool is one of the three catching tools.
type Tool int

const (
	ToolNet Tool = iota
	ToolJar
	ToolMagnifier

	ToolCount = 3
)

// String returns the tool's display name.
func (t Tool) String() string {
	switch t {
	case ToolNet:
		return "Net"
	case ToolJar:
		return "Jar"
	case ToolMagnifier:
		return "Magnifier"
	default:
		return "?"
	}
}

// Species is a bug species. Purely cosmetic: a bug's behavior comes from its
// hidden vulnerability, not its species.
type Species int

const (
	SpeciesSpider Species = iota
	SpeciesBeetle
	SpeciesButterfly
	SpeciesAnt
	SpeciesLadybug
	SpeciesGrasshopper

	SpeciesCount = 6
)

// String returns the species display name.
func (s Species) String() string {
	switch s {
	case SpeciesSpider:
		return "Spider"
	case SpeciesBeetle:
		return "Beetle"
	case SpeciesButterfly:
		return "Butterfly"
	case SpeciesAnt:
		return "Ant"
	case SpeciesLadybug:
		return "Ladybug"
	case SpeciesGrasshopper:
		return "Grasshopper"
	default:
		return "?"
	}
}

// Bug is the ECS component describing one combat bug.
type Bug struct {
	Species    Species
	Vulnerable Tool // hidden from the player, rolled at generation
}

// BugFlash is the ECS component holding a bug's attention-flash timer.
type BugFlash struct {
	Ticks int
}

// AttackOutcome classifies one Attack call.
type AttackOutcome int

const (
	// AttackCaught means the selected tool matched and the bug was caught.
	AttackCaught AttackOutcome = iota
	// AttackMissed means a mismatch with attempts remaining on this bug.
	AttackMissed
	// AttackEscaped means the final mismatch; the bug advances uncaught.
	AttackEscaped
)

// CombatSession is one bounded tool-matching encounter: a fixed queue of
// bugs, an index that only moves forward, and the player's tool selection.
// The bug entities live in the sim's ECS world and are reused across
// sessions; Start rerolls their components.
type CombatSession struct {
	bugs   [BugsPerSession]ecs.Entity
	bugMap *ecs.Map2[Bug, BugFlash]

	Current  int
	Selected Tool
	Attempts int
	Caught   int
	Message  string

	IntroTicks int
	SlideX     int // player sprite x during the slide-in
}

// NewCombatSession wraps the given bug entities. Call Start before use.
func NewCombatSession(bugMap *ecs.Map2[Bug, BugFlash], bugs [BugsPerSession]ecs.Entity) *CombatSession {
	return &CombatSession{bugs: bugs, bugMap: bugMap}
}

// Start resets all counters and rolls a fresh queue of bugs: species and
// vulnerability uniformly random and independent per bug. The first bug's
// flash is armed so the player knows which one is up.
func (s *CombatSession) Start(rng *rand.Rand) {
	s.Current = 0
	s.Selected = ToolNet
	s.Attempts = 0
	s.Caught = 0
	s.Message = "Select a tool and press X to attack"
	s.IntroTicks = CombatIntroTicks
	s.SlideX = CombatSlideStartX

	for _, e := range s.bugs {
		bug, flash := s.bugMap.Get(e)
		bug.Species = Species(rng.Intn(SpeciesCount))
		bug.Vulnerable = Tool(rng.Intn(ToolCount))
		flash.Ticks = 0
	}
	s.armCurrent()
}

// Done reports whether every bug has been resolved.
func (s *CombatSession) Done() bool {
	return s.Current >= BugsPerSession
}

// CurrentBug returns the active bug and whether its flash leaves it visible
// this frame. The flash blinks on a 10-tick duty cycle.
func (s *CombatSession) CurrentBug() (Bug, bool) {
	if s.Done() {
		return Bug{}, false
	}
	bug, flash := s.bugMap.Get(s.bugs[s.Current])
	return *bug, flash.Ticks%10 < 5
}

// CycleTool moves the tool selection by delta (+1 right, -1 left), wrapping
// circularly with no gap.
func (s *CombatSession) CycleTool(delta int) {
	s.Selected = Tool(((int(s.Selected)+delta)%ToolCount + ToolCount) % ToolCount)
}

// Attack resolves the selected tool against the current bug. A match catches
// it and advances; a second consecutive mismatch lets it escape and advances.
// The caller checks Done afterwards to end the session.
func (s *CombatSession) Attack() AttackOutcome {
	if s.Done() {
		return AttackEscaped
	}
	bug, _ := s.bugMap.Get(s.bugs[s.Current])

	if s.Selected == bug.Vulnerable {
		s.Message = "Success!"
		s.Caught++
		s.Attempts = 0
		s.advance()
		return AttackCaught
	}

	s.Message = "Failure! Try again."
	s.Attempts++
	if s.Attempts >= MaxAttemptsPerBug {
		s.Attempts = 0
		s.advance()
		return AttackEscaped
	}
	return AttackMissed
}

// Tick advances the intro animation and the current bug's flash timer.
func (s *CombatSession) Tick() {
	if s.IntroTicks > 0 {
		s.IntroTicks--
		if s.SlideX < CombatSlideTargetX {
			s.SlideX += CombatSlidePerTick
		}
	}
	if !s.Done() {
		_, flash := s.bugMap.Get(s.bugs[s.Current])
		if flash.Ticks > 0 {
			flash.Ticks--
		}
	}
}

// InputLocked reports whether combat input is still ignored (intro running).
func (s *CombatSession) InputLocked() bool {
	return s.IntroTicks > 0
}

func (s *CombatSession) advance() {
	s.Current++
	s.armCurrent()
}

func (s *CombatSession) armCurrent() {
	if s.Done() {
		return
	}
	_, flash := s.bugMap.Get(s.bugs[s.Current])
	flash.Ticks = BugFlashArmTicks
}
