package graph

import (
	"math"
	"testing"

	"github.com/quartercastle/vector"
)

func TestBuildResolvesLinks(t *testing.T) {
	g := &Graph{
		Nodes: []RawNode{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Links: []RawLink{
			{Source: "A", Target: "B", Value: 5, Type: "Friend"},
			{Source: "B", Target: "C"},
		},
	}

	m := Build(g, 800, 600)
	if len(m.Nodes) != 3 {
		t.Fatalf("Expected 3 nodes, got %d", len(m.Nodes))
	}
	if len(m.Links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(m.Links))
	}
	if m.Links[0].Source != 0 || m.Links[0].Target != 1 {
		t.Errorf("Link 0 resolved to %d->%d, want 0->1", m.Links[0].Source, m.Links[0].Target)
	}
	if m.Links[1].Source != 1 || m.Links[1].Target != 2 {
		t.Errorf("Link 1 resolved to %d->%d, want 1->2", m.Links[1].Source, m.Links[1].Target)
	}
}

func TestBuildDropsUnresolvedLinks(t *testing.T) {
	g := &Graph{
		Nodes: []RawNode{{ID: "A"}, {ID: "B"}},
		Links: []RawLink{
			{Source: "A", Target: "Z"},
			{Source: "A", Target: "B"},
			{Source: "Q", Target: "R"},
		},
	}

	m := Build(g, 800, 600)
	if len(m.Links) != 1 {
		t.Fatalf("Expected 1 surviving link, got %d", len(m.Links))
	}
	if len(m.Dropped) != 2 {
		t.Fatalf("Expected 2 dropped links, got %d", len(m.Dropped))
	}
	if m.Dropped[0].Target != "Z" {
		t.Errorf("First dropped link should target Z, got %q", m.Dropped[0].Target)
	}
}

func TestBuildDefaults(t *testing.T) {
	g := &Graph{
		Nodes: []RawNode{{ID: "A"}, {ID: "B"}},
		Links: []RawLink{{Source: "A", Target: "B"}},
	}

	m := Build(g, 800, 600)
	n := m.Nodes[0]
	if n.Size != DefaultNodeSize {
		t.Errorf("Default size: expected %v, got %v", float64(DefaultNodeSize), n.Size)
	}
	if n.Role != DefaultRole {
		t.Errorf("Default role: expected %q, got %q", DefaultRole, n.Role)
	}
	l := m.Links[0]
	if l.Value != DefaultValue {
		t.Errorf("Default value: expected %v, got %v", float64(DefaultValue), l.Value)
	}
	if l.Type != DefaultType {
		t.Errorf("Default type: expected %q, got %q", DefaultType, l.Type)
	}
}

func TestBuildSkipsDuplicateIDs(t *testing.T) {
	g := &Graph{
		Nodes: []RawNode{
			{ID: "A", Role: "main"},
			{ID: "A", Role: "minor"},
			{ID: "B"},
		},
	}

	m := Build(g, 800, 600)
	if len(m.Nodes) != 2 {
		t.Fatalf("Expected 2 nodes after dedup, got %d", len(m.Nodes))
	}
	// First occurrence wins.
	if m.Nodes[0].Role != "main" {
		t.Errorf("Expected first occurrence kept, got role %q", m.Nodes[0].Role)
	}
	if m.IndexOf("A") != 0 || m.IndexOf("B") != 1 {
		t.Errorf("Index wrong: A=%d B=%d", m.IndexOf("A"), m.IndexOf("B"))
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	ids := []string{"E", "A", "C", "B", "D"}
	g := &Graph{}
	for _, id := range ids {
		g.Nodes = append(g.Nodes, RawNode{ID: id})
	}

	m := Build(g, 800, 600)
	for i, id := range ids {
		if m.Nodes[i].ID != id {
			t.Errorf("Node %d: expected %q, got %q", i, id, m.Nodes[i].ID)
		}
	}
}

func TestBuildInitialPositions(t *testing.T) {
	g := &Graph{Nodes: []RawNode{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}}
	m := Build(g, 800, 600)

	cx, cy := 400.0, 300.0
	for _, n := range m.Nodes {
		if math.Abs(n.Pos[0]-cx) > initialJitter || math.Abs(n.Pos[1]-cy) > initialJitter {
			t.Errorf("Node %s starts at (%.1f, %.1f), outside jitter range of center",
				n.ID, n.Pos[0], n.Pos[1])
		}
		if n.Vel[0] != 0 || n.Vel[1] != 0 {
			t.Errorf("Node %s has nonzero initial velocity", n.ID)
		}
	}
}

func TestResizeKeepsPositions(t *testing.T) {
	g := &Graph{Nodes: []RawNode{{ID: "A"}}}
	m := Build(g, 800, 600)
	m.Nodes[0].Pos = vector.Vector{123, 456}

	m.Resize(1024, 768)
	if m.Width != 1024 || m.Height != 768 {
		t.Errorf("Viewport not updated: %vx%v", m.Width, m.Height)
	}
	if m.Nodes[0].Pos[0] != 123 || m.Nodes[0].Pos[1] != 456 {
		t.Errorf("Resize moved node to (%.1f, %.1f)", m.Nodes[0].Pos[0], m.Nodes[0].Pos[1])
	}
}

func TestIndexOfUnknown(t *testing.T) {
	m := Build(&Graph{Nodes: []RawNode{{ID: "A"}}}, 800, 600)
	if got := m.IndexOf("nope"); got != -1 {
		t.Errorf("IndexOf unknown id: expected -1, got %d", got)
	}
}
