package game

// State identifies which of the three screens is active. Exactly one is.
type State int

const (
	// StateOverworld is branch-to-branch navigation on the map.
	StateOverworld State = iota
	// StateCombat is the tool-matching mini-game at a location.
	StateCombat
	// StateCombatResult shows the session tally before returning.
	StateCombatResult
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateOverworld:
		return "overworld"
	case StateCombat:
		return "combat"
	case StateCombatResult:
		return "combat_result"
	default:
		return "unknown"
	}
}
