package game

// Timing constants, in ticks at 60 TPS.
const (
	TicksPerSecond = 60

	MoveCooldownTicks = 15 // lockout after a successful move
	MoveFlashTicks    = 5  // player flash after a successful move

	CombatIntroTicks = 60 // input ignored while the combat screen slides in
	BugFlashArmTicks = 30 // flash applied to a bug when it becomes current
)

// Movement tuning.
const (
	// HorizontalSlack is the max vertical offset (virtual px) between two
	// branch endpoints for the child to count as a horizontal continuation.
	HorizontalSlack = 5
)

// Combat tuning.
const (
	BugsPerSession    = 6 // bugs generated per combat session
	MaxAttemptsPerBug = 2 // misses before a bug escapes

	CombatSlideStartX  = -20 // player sprite starts off-screen
	CombatSlideTargetX = 40  // resting position in the lower-left quadrant
	CombatSlidePerTick = 2
)
