package graph

import (
	"math"
	"testing"

	"github.com/quartercastle/vector"
)

// hitModel builds a small model with hand-placed positions so hit
// tests are deterministic.
func hitModel() *Model {
	g := &Graph{
		Nodes: []RawNode{
			{ID: "A", Size: 20},
			{ID: "B", Size: 10},
		},
		Links: []RawLink{{Source: "A", Target: "B"}},
	}
	m := Build(g, 800, 600)
	m.Nodes[0].Pos = vector.Vector{100, 100}
	m.Nodes[1].Pos = vector.Vector{300, 100}
	return m
}

func TestNodeAt(t *testing.T) {
	m := hitModel()

	// A has size 20: hit radius 10+4 = 14.
	if got := m.NodeAt(Point{X: 100, Y: 100}); got != 0 {
		t.Errorf("Center of A: expected 0, got %d", got)
	}
	if got := m.NodeAt(Point{X: 113, Y: 100}); got != 0 {
		t.Errorf("Inside A's padded radius: expected 0, got %d", got)
	}
	if got := m.NodeAt(Point{X: 115, Y: 100}); got == 0 {
		t.Errorf("Outside A's radius still hit A")
	}
	if got := m.NodeAt(Point{X: 300, Y: 100}); got != 1 {
		t.Errorf("Center of B: expected 1, got %d", got)
	}
	if got := m.NodeAt(Point{X: 500, Y: 500}); got != -1 {
		t.Errorf("Empty space: expected -1, got %d", got)
	}
}

func TestNodeAtFirstMatchWins(t *testing.T) {
	m := hitModel()
	// Stack B directly on A; a point inside both must report A.
	m.Nodes[1].Pos = vector.Vector{100, 100}
	if got := m.NodeAt(Point{X: 102, Y: 100}); got != 0 {
		t.Errorf("Overlapping nodes: expected first declared (0), got %d", got)
	}
}

func TestLinkAt(t *testing.T) {
	m := hitModel()

	// Midpoint of the A-B segment, slightly off axis.
	if got := m.LinkAt(Point{X: 200, Y: 105}, 1.0); got != 0 {
		t.Errorf("Point near segment: expected 0, got %d", got)
	}
	if got := m.LinkAt(Point{X: 200, Y: 120}, 1.0); got != -1 {
		t.Errorf("Point outside corridor: expected -1, got %d", got)
	}
	// Beyond the segment end the corridor does not extend.
	if got := m.LinkAt(Point{X: 350, Y: 100}, 1.0); got != -1 {
		t.Errorf("Point past endpoint: expected -1, got %d", got)
	}
}

func TestLinkAtCorridorScalesWithZoom(t *testing.T) {
	m := hitModel()
	p := Point{X: 200, Y: 106}

	// 6 world units off axis: inside the 8-unit corridor at scale 1,
	// outside the 4-unit corridor at scale 2.
	if got := m.LinkAt(p, 1.0); got != 0 {
		t.Errorf("Scale 1: expected hit, got %d", got)
	}
	if got := m.LinkAt(p, 2.0); got != -1 {
		t.Errorf("Scale 2: corridor should shrink, got %d", got)
	}
	// Zoomed out the corridor widens in world units.
	if got := m.LinkAt(Point{X: 200, Y: 115}, 0.5); got != 0 {
		t.Errorf("Scale 0.5: corridor should widen, got %d", got)
	}
}

func TestPointSegmentDistance(t *testing.T) {
	tests := []struct {
		name     string
		p, a, b  Point
		expected float64
	}{
		{"Perpendicular to midpoint", Point{5, 3}, Point{0, 0}, Point{10, 0}, 3},
		{"On the segment", Point{5, 0}, Point{0, 0}, Point{10, 0}, 0},
		{"Past the near end", Point{-3, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"Past the far end", Point{13, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"Degenerate segment", Point{3, 4}, Point{0, 0}, Point{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointSegmentDistance(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %.4f, got %.4f", tt.expected, got)
			}
		})
	}
}

func TestHitRadius(t *testing.T) {
	n := &Node{Size: 30}
	if got := n.HitRadius(); got != 19 {
		t.Errorf("HitRadius for size 30: expected 19, got %v", got)
	}
}
