package world

// Point is a position in virtual pixels (160x144 screen space).
type Point struct {
	X int
	Y int
}

// Location is a point of interest at the terminal node of a branch.
// It gates progression past that branch until its combat is completed.
type Location struct {
	Pos        Point
	Name       string
	Visited    bool
	Completed  bool
	BugsCaught int
}

// Branch is a directed line segment in the overworld tree. Children start
// where their parent ends. The parent pointer is for traversal only; the
// child slice owns the subtree.
type Branch struct {
	Start    Point
	End      Point
	Parent   *Branch
	Children []*Branch
	Loc      *Location
}

// NewBranch creates a root branch spanning start to end.
func NewBranch(start, end Point) *Branch {
	return &Branch{Start: start, End: end}
}

// AddChild appends a child branch running from this branch's end point to
// end. Child order is append order and determines movement tie-breaks.
func (b *Branch) AddChild(end Point) *Branch {
	child := &Branch{Start: b.End, End: end, Parent: b}
	b.Children = append(b.Children, child)
	return child
}

// AttachLocation places a named location at this branch's terminal point.
func (b *Branch) AttachLocation(name string) *Location {
	b.Loc = &Location{Pos: b.End, Name: name}
	return b.Loc
}

// Node returns the point for a node index: 0 = start, 1 = end.
func (b *Branch) Node(i int) Point {
	if i == 0 {
		return b.Start
	}
	return b.End
}

// VerticalDelta returns End.Y - Start.Y. Negative means the branch climbs.
func (b *Branch) VerticalDelta() int {
	return b.End.Y - b.Start.Y
}

// Walk visits this branch and its subtree pre-order, children in declared
// order.
func (b *Branch) Walk(fn func(*Branch)) {
	fn(b)
	for _, c := range b.Children {
		c.Walk(fn)
	}
}

// CountLocations returns the number of locations in the subtree.
func (b *Branch) CountLocations() int {
	n := 0
	b.Walk(func(br *Branch) {
		if br.Loc != nil {
			n++
		}
	})
	return n
}
