package world

import (
	"strings"
	"testing"
)

const groveJSON = `{
  "name": "The Grove",
  "root": [[20, 72], [60, 72]],
  "branches": [
    {"parent": 0, "end": [80, 72]},
    {"parent": 1, "end": [100, 47]},
    {"parent": 1, "end": [100, 97]},
    {"parent": 1, "end": [120, 72]},
    {"parent": 4, "end": [140, 47]},
    {"parent": 4, "end": [140, 97]}
  ],
  "locations": [
    {"branch": 0, "name": "Tutorial"},
    {"branch": 2, "name": "Forest"},
    {"branch": 3, "name": "Pond"},
    {"branch": 5, "name": "Mountain"},
    {"branch": 6, "name": "Cave"}
  ]
}`

func TestBuildWorldGrove(t *testing.T) {
	root, err := BuildWorld([]byte(groveJSON))
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}

	if root.Start != (Point{20, 72}) || root.End != (Point{60, 72}) {
		t.Errorf("root span = %v-%v", root.Start, root.End)
	}
	if root.Loc == nil || root.Loc.Name != "Tutorial" {
		t.Fatal("root should hold the Tutorial location")
	}
	if n := root.CountLocations(); n != 5 {
		t.Errorf("locations = %d, want 5", n)
	}

	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	fork := root.Children[0]
	if len(fork.Children) != 3 {
		t.Fatalf("fork children = %d, want 3", len(fork.Children))
	}

	// Declared order: up (Forest), down (Pond), continuation.
	if d := fork.Children[0].VerticalDelta(); d >= 0 {
		t.Errorf("first fork child should climb, delta = %d", d)
	}
	if d := fork.Children[1].VerticalDelta(); d <= 0 {
		t.Errorf("second fork child should descend, delta = %d", d)
	}
	if d := fork.Children[2].VerticalDelta(); d != 0 {
		t.Errorf("third fork child should continue flat, delta = %d", d)
	}
	if fork.Children[0].Loc.Name != "Forest" || fork.Children[1].Loc.Name != "Pond" {
		t.Error("fork locations out of order")
	}
}

func TestBuildWorldDeterministic(t *testing.T) {
	shape := func() []string {
		root, err := BuildWorld([]byte(groveJSON))
		if err != nil {
			t.Fatalf("BuildWorld: %v", err)
		}
		var names []string
		root.Walk(func(b *Branch) {
			if b.Loc != nil {
				names = append(names, b.Loc.Name)
			}
		})
		return names
	}

	first := shape()
	for i := 0; i < 3; i++ {
		again := shape()
		if strings.Join(again, ",") != strings.Join(first, ",") {
			t.Fatalf("rebuild changed traversal order: %v vs %v", again, first)
		}
	}
}

func TestBuildWorldErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "malformed json",
			json: `{"root": [[0,0],`,
			want: "parse world layout",
		},
		{
			name: "parent out of range",
			json: `{"root": [[0,0],[10,0]], "branches": [{"parent": 5, "end": [20,0]}]}`,
			want: "parent index 5 out of range",
		},
		{
			name: "forward parent reference",
			json: `{"root": [[0,0],[10,0]], "branches": [{"parent": 2, "end": [20,0]}, {"parent": 0, "end": [20,10]}]}`,
			want: "parent index 2 out of range",
		},
		{
			name: "negative parent",
			json: `{"root": [[0,0],[10,0]], "branches": [{"parent": -1, "end": [20,0]}]}`,
			want: "out of range",
		},
		{
			name: "location branch out of range",
			json: `{"root": [[0,0],[10,0]], "locations": [{"branch": 3, "name": "Lost"}]}`,
			want: `location "Lost": branch index 3 out of range`,
		},
		{
			name: "duplicate location",
			json: `{"root": [[0,0],[10,0]], "locations": [{"branch": 0, "name": "A"}, {"branch": 0, "name": "B"}]}`,
			want: "already holds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildWorld([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}
