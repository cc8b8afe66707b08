package world

import (
	"encoding/json"
	"fmt"
)

// Layout is the JSON-serializable definition of an overworld tree.
// Branch 0 is the root; BranchDef i defines branch i+1 and must reference an
// already-declared branch as its parent, so the tree is acyclic by
// construction. Locations reference branches by the same indices.
type Layout struct {
	Name      string        `json:"name"`
	Root      [2][2]int     `json:"root"`
	Branches  []BranchDef   `json:"branches"`
	Locations []LocationDef `json:"locations"`
}

// BranchDef defines one non-root branch by parent index and terminal point.
type BranchDef struct {
	Parent int    `json:"parent"`
	End    [2]int `json:"end"`
}

// LocationDef places a named location at a branch's terminal node.
type LocationDef struct {
	Branch int    `json:"branch"`
	Name   string `json:"name"`
}

// ParseLayout parses a Layout from JSON bytes.
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse world layout: %w", err)
	}
	return &layout, nil
}

// Build constructs the branch tree. Construction is the only place the tree
// shape can go wrong, so every index is validated here and play never sees a
// malformed world.
func (l *Layout) Build() (*Branch, error) {
	root := NewBranch(
		Point{X: l.Root[0][0], Y: l.Root[0][1]},
		Point{X: l.Root[1][0], Y: l.Root[1][1]},
	)

	branches := []*Branch{root}
	for i, def := range l.Branches {
		if def.Parent < 0 || def.Parent >= len(branches) {
			return nil, fmt.Errorf("branch %d: parent index %d out of range (have %d branches)",
				i+1, def.Parent, len(branches))
		}
		parent := branches[def.Parent]
		branches = append(branches, parent.AddChild(Point{X: def.End[0], Y: def.End[1]}))
	}

	for _, def := range l.Locations {
		if def.Branch < 0 || def.Branch >= len(branches) {
			return nil, fmt.Errorf("location %q: branch index %d out of range (have %d branches)",
				def.Name, def.Branch, len(branches))
		}
		b := branches[def.Branch]
		if b.Loc != nil {
			return nil, fmt.Errorf("location %q: branch %d already holds %q",
				def.Name, def.Branch, b.Loc.Name)
		}
		b.AttachLocation(def.Name)
	}
	return root, nil
}

// BuildWorld parses and builds a world tree from embedded layout JSON.
func BuildWorld(data []byte) (*Branch, error) {
	layout, err := ParseLayout(data)
	if err != nil {
		return nil, err
	}
	return layout.Build()
}
