package graph

import (
	"math/rand"

	"github.com/quartercastle/vector"
)

// Node is a simulation-ready character node. Pos and Vel are world
// coordinates, mutated on every simulation tick and under drag.
type Node struct {
	ID          string
	Size        float64
	Role        string
	Description string
	Pos         vector.Vector
	Vel         vector.Vector
	Pinned      bool
}

// Link is a resolved relationship. Source and Target index into
// Model.Nodes; unresolved links never survive Build.
type Link struct {
	Source int
	Target int
	Value  float64
	Type   string
}

// Model holds the built node/link records plus the viewport the
// simulation is framed against.
type Model struct {
	Nodes  []*Node
	Links  []Link
	Width  float64
	Height float64

	// Dropped lists the raw links skipped during Build because an
	// endpoint id did not resolve. Diagnostic only.
	Dropped []RawLink

	index map[string]int
}

// initialJitter bounds the random offset from viewport center given
// to each node, so coincident starting positions cannot occur for
// typical graphs and the pairwise forces have a direction to act on.
const initialJitter = 50

// Build validates and indexes a raw graph into a Model. Node order is
// preserved. Each node starts near the viewport center with bounded
// random jitter and zero velocity. Links whose source or target id is
// unknown are dropped independently; all other links are unaffected.
func Build(g *Graph, width, height float64) *Model {
	m := &Model{
		Width:  width,
		Height: height,
		index:  make(map[string]int, len(g.Nodes)),
	}
	cx, cy := width/2, height/2

	for _, rn := range g.Nodes {
		n := &Node{
			ID:          rn.ID,
			Size:        rn.Size,
			Role:        rn.Role,
			Description: rn.Description,
			Pos: vector.Vector{
				cx + (rand.Float64()*2-1)*initialJitter,
				cy + (rand.Float64()*2-1)*initialJitter,
			},
			Vel: vector.Vector{0, 0},
		}
		if n.Size <= 0 {
			n.Size = DefaultNodeSize
		}
		if n.Role == "" {
			n.Role = DefaultRole
		}
		if _, dup := m.index[n.ID]; dup {
			continue
		}
		m.index[n.ID] = len(m.Nodes)
		m.Nodes = append(m.Nodes, n)
	}

	for _, rl := range g.Links {
		src, okSrc := m.index[rl.Source]
		dst, okDst := m.index[rl.Target]
		if !okSrc || !okDst {
			m.Dropped = append(m.Dropped, rl)
			continue
		}
		l := Link{Source: src, Target: dst, Value: rl.Value, Type: rl.Type}
		if l.Value <= 0 {
			l.Value = DefaultValue
		}
		if l.Type == "" {
			l.Type = DefaultType
		}
		m.Links = append(m.Links, l)
	}

	return m
}

// Resize updates the viewport dimensions. Existing node positions are
// left alone so a window resize never visually resets an in-progress
// layout; the boundary clamp pulls outliers back over later ticks.
func (m *Model) Resize(width, height float64) {
	m.Width = width
	m.Height = height
}

// IndexOf returns the node index for an id, or -1.
func (m *Model) IndexOf(id string) int {
	if i, ok := m.index[id]; ok {
		return i
	}
	return -1
}
