package game

import "github.com/bugbout-game/bugbout/internal/world"

// Navigator tracks the player's discrete position on the branch tree: a
// current branch plus a node index (0 = start, 1 = end). Screen position is
// always derived from that pair, never stored.
type Navigator struct {
	Branch   *world.Branch
	Node     int
	Cooldown int // ticks until the next move is accepted
	Flash    int // ticks of movement feedback remaining
}

// NewNavigator places the player at the start node of root.
func NewNavigator(root *world.Branch) *Navigator {
	return &Navigator{Branch: root}
}

// Pos returns the player's position in virtual pixels.
func (n *Navigator) Pos() world.Point {
	return n.Branch.Node(n.Node)
}

// SelectedLocation returns the location the player is standing on, or nil.
// Derived each call: the player selects a location iff they are at the end
// node of a branch that owns one.
func (n *Navigator) SelectedLocation() *world.Location {
	if n.Node == 1 && n.Branch.Loc != nil {
		return n.Branch.Loc
	}
	return nil
}

// Tick advances the cooldown and feedback timers.
func (n *Navigator) Tick() {
	if n.Cooldown > 0 {
		n.Cooldown--
	}
	if n.Flash > 0 {
		n.Flash--
	}
}

// Move attempts a move in the given direction and reports whether the
// position changed. A rejected move leaves all state untouched.
//
// The rules are checked in a fixed precedence order:
//  1. right at node 0: advance to node 1 of the same branch
//  2. left at node 1: retreat to node 0 of the same branch
//  3. at node 1, up/down: first child climbing/descending, in declared order
//  4. right at node 1: horizontal continuation, gated on the branch's
//     location having been visited
//  5. left at node 0: back to the parent branch's end node
func (n *Navigator) Move(dir Direction) bool {
	if n.Cooldown > 0 || n.Branch == nil {
		return false
	}

	if dir == DirRight && n.Node == 0 {
		n.Node = 1
		n.moved()
		return true
	}

	if dir == DirLeft && n.Node == 1 {
		n.Node = 0
		n.moved()
		return true
	}

	if n.Node == 1 {
		for _, child := range n.Branch.Children {
			if dir == DirUp && child.VerticalDelta() < 0 {
				n.enter(child)
				return true
			}
			if dir == DirDown && child.VerticalDelta() > 0 {
				n.enter(child)
				return true
			}
		}

		if dir == DirRight {
			if loc := n.Branch.Loc; loc != nil && !loc.Visited {
				// Progression gate: the location must be completed first.
				return false
			}
			for _, child := range n.Branch.Children {
				if abs(child.End.Y-n.Branch.End.Y) < HorizontalSlack {
					n.enter(child)
					return true
				}
			}
		}
	}

	if dir == DirLeft && n.Node == 0 && n.Branch.Parent != nil {
		n.Branch = n.Branch.Parent
		n.Node = 1
		n.moved()
		return true
	}

	return false
}

// enter steps onto the start node of a child branch.
func (n *Navigator) enter(b *world.Branch) {
	n.Branch = b
	n.Node = 0
	n.moved()
}

func (n *Navigator) moved() {
	n.Cooldown = MoveCooldownTicks
	n.Flash = MoveFlashTicks
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
