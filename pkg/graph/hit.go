// Hit-testing for nodes and links. Linear scans in declaration order:
// adequate for the modest graphs this engine targets, and first-match
// semantics give deterministic results on ties. A spatial index could
// replace the scans behind the same contract if graphs grow.

package graph

import "math"

// nodeHitPadding widens each node's hit circle beyond its drawn
// radius, in world units.
const nodeHitPadding = 4.0

// linkHitRadius is the link detection corridor in screen pixels; it
// is divided by the camera scale so the corridor stays visually
// constant under zoom.
const linkHitRadius = 8.0

// HitRadius returns the node's world-space hit radius.
func (n *Node) HitRadius() float64 {
	return n.Size/2 + nodeHitPadding
}

// NodeAt returns the index of the first node containing the world
// point, or -1. Ties are broken by declaration order.
func (m *Model) NodeAt(world Point) int {
	for i, n := range m.Nodes {
		dx := world.X - n.Pos[0]
		dy := world.Y - n.Pos[1]
		r := n.HitRadius()
		if dx*dx+dy*dy <= r*r {
			return i
		}
	}
	return -1
}

// LinkAt returns the index of the first link whose segment passes
// within the detection corridor of the world point, or -1. The scale
// is the current camera scale.
func (m *Model) LinkAt(world Point, scale float64) int {
	if scale <= 0 {
		return -1
	}
	radius := linkHitRadius / scale
	for i, l := range m.Links {
		a := Point{m.Nodes[l.Source].Pos[0], m.Nodes[l.Source].Pos[1]}
		b := Point{m.Nodes[l.Target].Pos[0], m.Nodes[l.Target].Pos[1]}
		if pointSegmentDistance(world, a, b) <= radius {
			return i
		}
	}
	return -1
}

// pointSegmentDistance returns the distance from p to the closest
// point on segment ab.
func pointSegmentDistance(p, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}
