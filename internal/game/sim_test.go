package game

import (
	"context"
	"testing"

	"github.com/bugbout-game/bugbout/internal/world"
)

// simFixture is a two-branch world with one location on each branch.
func simFixture() (sim *Sim, first, second *world.Location) {
	root := world.NewBranch(world.Point{X: 20, Y: 72}, world.Point{X: 60, Y: 72})
	next := root.AddChild(world.Point{X: 100, Y: 72})
	first = root.AttachLocation("Tutorial")
	second = next.AttachLocation("Forest")

	sim = NewSim(root, Config{Seed: 99})
	return
}

// skipIntro runs the combat intro down so input is accepted.
func skipIntro(t *testing.T, sim *Sim) {
	t.Helper()
	for i := 0; i < CombatIntroTicks; i++ {
		sim.Tick()
	}
	if sim.Session.InputLocked() {
		t.Fatal("intro should be over")
	}
}

// clearSession resolves every remaining bug with its matching tool via the
// sim's input path.
func clearSession(t *testing.T, ctx context.Context, sim *Sim) {
	t.Helper()
	for !sim.Session.Done() {
		bug, _ := sim.Session.CurrentBug()
		sim.Session.Selected = bug.Vulnerable
		sim.HandleAction(ctx, ActionConfirm)
	}
}

func TestFullLocationLoop(t *testing.T) {
	ctx := context.Background()
	sim, first, _ := simFixture()

	if sim.State != StateOverworld {
		t.Fatalf("initial state = %v", sim.State)
	}
	if x, y := sim.PlayerPos(); x != 20 || y != 72 {
		t.Fatalf("start pos = (%d,%d), want (20,72)", x, y)
	}

	// Step onto the root's end node where the Tutorial sits.
	sim.HandleAction(ctx, ActionRight)
	sim.Tick()
	if x, y := sim.PlayerPos(); x != 60 || y != 72 {
		t.Fatalf("pos after move = (%d,%d), want (60,72)", x, y)
	}
	if sim.SelectedLocation() != first {
		t.Fatal("Tutorial should be selected")
	}

	sim.HandleAction(ctx, ActionConfirm)
	if sim.State != StateCombat {
		t.Fatalf("state = %v, want combat", sim.State)
	}
	if !first.Visited {
		t.Error("entering should mark the location visited")
	}
	if sim.EnteredLocation() != first {
		t.Error("entered location should be tracked")
	}

	skipIntro(t, sim)
	clearSession(t, ctx, sim)

	if sim.State != StateCombatResult {
		t.Fatalf("state = %v, want combat result", sim.State)
	}

	sim.HandleAction(ctx, ActionConfirm)
	if sim.State != StateOverworld {
		t.Fatalf("state = %v, want overworld", sim.State)
	}
	if !first.Completed {
		t.Error("confirming the result should complete the location")
	}
	if first.BugsCaught != BugsPerSession {
		t.Errorf("location bugs caught = %d, want %d", first.BugsCaught, BugsPerSession)
	}
	if sim.TotalCaught != BugsPerSession {
		t.Errorf("running total = %d, want %d", sim.TotalCaught, BugsPerSession)
	}
	if sim.EnteredLocation() != nil {
		t.Error("entered location should clear after the result")
	}
	if msg, ok := sim.Log.Latest(); !ok || msg.Priority != MsgSuccess {
		t.Error("completion should log a success message")
	}
}

func TestGateWarningMessage(t *testing.T) {
	ctx := context.Background()
	sim, first, _ := simFixture()

	sim.HandleAction(ctx, ActionRight)
	for i := 0; i < MoveCooldownTicks; i++ {
		sim.Tick()
	}

	// Advancing past the unvisited Tutorial is blocked and explained.
	sim.HandleAction(ctx, ActionRight)
	if sim.Nav.Branch != sim.Root || sim.Nav.Node != 1 {
		t.Fatal("gated move must not change position")
	}
	msg, ok := sim.Log.Latest()
	if !ok || msg.Priority != MsgWarning {
		t.Fatalf("gate should log a warning, got %+v", msg)
	}
	if want := "Complete Tutorial before continuing!"; msg.Text != want {
		t.Errorf("warning = %q, want %q", msg.Text, want)
	}
	_ = first
}

func TestDeadEndMessage(t *testing.T) {
	ctx := context.Background()
	sim, _, _ := simFixture()

	sim.HandleAction(ctx, ActionLeft)
	msg, ok := sim.Log.Latest()
	if !ok || msg.Priority != MsgInfo {
		t.Fatal("dead end should log an info message")
	}
	if want := "Can't go left from here."; msg.Text != want {
		t.Errorf("message = %q, want %q", msg.Text, want)
	}
}

func TestCooldownRejectionIsSilent(t *testing.T) {
	ctx := context.Background()
	sim, _, _ := simFixture()

	sim.HandleAction(ctx, ActionRight)
	before, _ := sim.Log.Latest()

	// Still cooling down: the move is dropped without a complaint.
	sim.HandleAction(ctx, ActionLeft)
	after, _ := sim.Log.Latest()
	if before != after {
		t.Error("cooldown rejection must not log")
	}
}

func TestConfirmOffLocationIgnored(t *testing.T) {
	ctx := context.Background()
	sim, first, _ := simFixture()

	first.Visited = true // detach the gate; player still at node 0

	sim.HandleAction(ctx, ActionConfirm)
	if sim.State != StateOverworld {
		t.Error("confirm with no selected location must do nothing")
	}
}

func TestCombatInputs(t *testing.T) {
	ctx := context.Background()
	sim, _, _ := simFixture()

	sim.HandleAction(ctx, ActionRight)
	sim.HandleAction(ctx, ActionConfirm)

	// Input is dropped during the intro.
	sim.HandleAction(ctx, ActionRight)
	if sim.Session.Selected != ToolNet {
		t.Fatal("intro must swallow tool cycling")
	}

	skipIntro(t, sim)

	sim.HandleAction(ctx, ActionRight)
	if sim.Session.Selected != ToolJar {
		t.Errorf("selected = %v, want Jar", sim.Session.Selected)
	}
	sim.HandleAction(ctx, ActionLeft)
	if sim.Session.Selected != ToolNet {
		t.Errorf("selected = %v, want Net", sim.Session.Selected)
	}

	// Up, down, and cancel have no combat binding.
	sim.HandleAction(ctx, ActionUp)
	sim.HandleAction(ctx, ActionDown)
	sim.HandleAction(ctx, ActionCancel)
	if sim.State != StateCombat || sim.Session.Current != 0 {
		t.Error("unbound actions must not touch the session")
	}
}

func TestResultIgnoresNonConfirm(t *testing.T) {
	ctx := context.Background()
	sim, _, _ := simFixture()

	sim.HandleAction(ctx, ActionRight)
	sim.HandleAction(ctx, ActionConfirm)
	skipIntro(t, sim)
	clearSession(t, ctx, sim)

	for _, a := range []Action{ActionUp, ActionRight, ActionDown, ActionLeft, ActionCancel} {
		sim.HandleAction(ctx, a)
		if sim.State != StateCombatResult {
			t.Fatalf("%v must not leave the result screen", a)
		}
	}
}

func TestRevisitReplaysCombat(t *testing.T) {
	ctx := context.Background()
	sim, first, _ := simFixture()

	sim.HandleAction(ctx, ActionRight)
	sim.HandleAction(ctx, ActionConfirm)
	skipIntro(t, sim)
	clearSession(t, ctx, sim)
	sim.HandleAction(ctx, ActionConfirm)

	// Entering again replays combat and, on completion, overwrites the
	// location's count while the running total keeps accumulating.
	sim.HandleAction(ctx, ActionConfirm)
	if sim.State != StateCombat {
		t.Fatal("completed locations should still be enterable")
	}
	skipIntro(t, sim)

	// Let every bug escape this time.
	for !sim.Session.Done() {
		bug, _ := sim.Session.CurrentBug()
		sim.Session.Selected = Tool((int(bug.Vulnerable) + 1) % ToolCount)
		sim.HandleAction(ctx, ActionConfirm)
		sim.HandleAction(ctx, ActionConfirm)
	}
	sim.HandleAction(ctx, ActionConfirm)

	if first.BugsCaught != 0 {
		t.Errorf("location count = %d, want 0 after the failed revisit", first.BugsCaught)
	}
	if sim.TotalCaught != BugsPerSession {
		t.Errorf("running total = %d, want %d", sim.TotalCaught, BugsPerSession)
	}
}

func TestSeedReproducibility(t *testing.T) {
	ctx := context.Background()

	roll := func() [BugsPerSession]Bug {
		root := world.NewBranch(world.Point{X: 20, Y: 72}, world.Point{X: 60, Y: 72})
		root.AttachLocation("Tutorial")
		sim := NewSim(root, Config{Seed: 1234})

		sim.HandleAction(ctx, ActionRight)
		sim.HandleAction(ctx, ActionConfirm)

		var bugs [BugsPerSession]Bug
		skipIntro(t, sim)
		for i := 0; !sim.Session.Done(); i++ {
			bug, _ := sim.Session.CurrentBug()
			bugs[i] = bug
			sim.Session.Selected = bug.Vulnerable
			sim.HandleAction(ctx, ActionConfirm)
		}
		return bugs
	}

	if roll() != roll() {
		t.Error("equal seeds must roll equal sessions")
	}
}
