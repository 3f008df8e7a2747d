package graph

import (
	"math"

	"github.com/quartercastle/vector"
)

// Simulation constants. The step is a fixed timestep with no
// delta-time scaling; it assumes a steady frame cadence (~60 Hz).
const (
	centeringStrength = 0.005
	repulsionStrength = 1000.0
	restLength        = 100.0
	springStrength    = 0.03
	springWeightCap   = 10.0
	velocityDamping   = 0.9
	boundaryMargin    = 20.0
)

// Step advances every unpinned node by one tick: centering toward the
// viewport center, inverse-square pairwise repulsion, spring
// attraction along links toward a rest length, then damped Euler
// integration and a boundary clamp. A pinned node is excluded
// entirely; its position belongs to the drag interaction.
//
// There is no convergence criterion. The simulation is a live
// relaxation that re-equilibrates after any perturbation, not a
// one-shot layout solver.
func Step(m *Model) {
	if m == nil || len(m.Nodes) == 0 {
		return
	}
	cx, cy := m.Width/2, m.Height/2

	for i, n := range m.Nodes {
		if n.Pinned {
			continue
		}

		n.Vel = n.Vel.Add(vector.Vector{
			(cx - n.Pos[0]) * centeringStrength,
			(cy - n.Pos[1]) * centeringStrength,
		})

		for j, o := range m.Nodes {
			if i == j {
				continue
			}
			dx := n.Pos[0] - o.Pos[0]
			dy := n.Pos[1] - o.Pos[1]
			dist := math.Hypot(dx, dy)
			if dist < 1 {
				// Coincident nodes would divide by zero; the floor
				// keeps every component finite.
				dist = 1
			}
			f := repulsionStrength / (dist * dist)
			n.Vel = n.Vel.Add(vector.Vector{dx / dist * f, dy / dist * f})
		}
	}

	for _, l := range m.Links {
		src := m.Nodes[l.Source]
		dst := m.Nodes[l.Target]

		dx := dst.Pos[0] - src.Pos[0]
		dy := dst.Pos[1] - src.Pos[1]
		dist := math.Hypot(dx, dy)
		if dist < 1 {
			dist = 1
		}
		weight := math.Min(l.Value, springWeightCap)
		f := (dist - restLength) * springStrength * weight

		pull := vector.Vector{dx / dist * f, dy / dist * f}
		if !src.Pinned {
			src.Vel = src.Vel.Add(pull)
		}
		if !dst.Pinned {
			dst.Vel = dst.Vel.Sub(pull)
		}
	}

	for _, n := range m.Nodes {
		if n.Pinned {
			continue
		}
		n.Pos = n.Pos.Add(n.Vel)
		n.Vel = n.Vel.Scale(velocityDamping)

		n.Pos[0] = clamp(n.Pos[0], boundaryMargin, m.Width-boundaryMargin)
		n.Pos[1] = clamp(n.Pos[1], boundaryMargin, m.Height-boundaryMargin)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
