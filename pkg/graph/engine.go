package graph

import "github.com/quartercastle/vector"

// PointerState is the interaction state machine.
type PointerState int

const (
	StateIdle PointerState = iota
	StatePanning
	StateDraggingNode
)

// MouseButton identifies the pressed pointer button.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonMiddle
)

// HoverKind tags a HoverTarget.
type HoverKind int

const (
	HoverNone HoverKind = iota
	HoverNode
	HoverLink
)

// HoverTarget describes what the pointer is over, for an external
// tooltip renderer. Screen is the pointer position in screen space.
type HoverTarget struct {
	Kind   HoverKind
	Node   *Node  // set for HoverNode
	Source string // set for HoverLink
	Target string
	Type   string
	Screen Point
}

// Engine owns one graph instance's whole interactive state: the built
// model, the camera, the pointer state machine, and the current hover
// target. All ambient interaction state lives here rather than in
// package-level variables, so independent engines can coexist.
//
// The engine is single-threaded by contract: pointer, wheel, and
// keyboard events and simulation steps must all arrive from the same
// goroutine (the host's event loop).
type Engine struct {
	Model  *Model
	Camera Transform

	// OnHover, when set, receives hover-target changes. It fires only
	// when the target actually changes, not on every pointer move.
	OnHover func(HoverTarget)

	// Logf, when set, receives build diagnostics. Commands wire this
	// to stderr; the library never prints on its own.
	Logf func(format string, args ...any)

	state     PointerState
	dragIdx   int
	lastPoint Point // last pointer position, screen space

	hoverKind HoverKind
	hoverIdx  int
}

// NewEngine returns an engine with an identity camera and no graph.
func NewEngine() *Engine {
	return &Engine{
		Camera:   NewTransform(),
		dragIdx:  -1,
		hoverIdx: -1,
	}
}

// SetGraph replaces the model wholesale from raw input. The camera
// transform is preserved; any in-progress drag or hover is discarded.
func (e *Engine) SetGraph(g *Graph, width, height float64) {
	e.cancelDrag()
	e.Model = Build(g, width, height)
	e.setHover(HoverNone, -1, Point{})
	if e.Logf != nil {
		for _, d := range e.Model.Dropped {
			e.Logf("dropped link %s -> %s: unknown node id", d.Source, d.Target)
		}
	}
}

// Resize feeds a new viewport size to the model. Positions are kept.
func (e *Engine) Resize(width, height float64) {
	if e.Model != nil {
		e.Model.Resize(width, height)
	}
}

// Step advances the simulation one tick, honoring the pinned node.
func (e *Engine) Step() {
	Step(e.Model)
}

// State exposes the current pointer state, mainly for the host UI's
// status display.
func (e *Engine) State() PointerState {
	return e.state
}

// DraggedNode returns the node currently being dragged, or nil.
func (e *Engine) DraggedNode() *Node {
	if e.state != StateDraggingNode || e.Model == nil {
		return nil
	}
	return e.Model.Nodes[e.dragIdx]
}

// Hover returns the current hover target.
func (e *Engine) Hover() HoverTarget {
	return e.hoverTarget(e.lastPoint)
}

// PointerDown starts a drag or a pan. A primary press landing inside
// a node's hit radius pins and drags that node; a middle press, or a
// primary press with the modifier key held, pans the camera.
func (e *Engine) PointerDown(p Point, button MouseButton, modifier bool) {
	e.lastPoint = p
	if e.state != StateIdle || e.Model == nil {
		return
	}

	if button == ButtonMiddle || (button == ButtonPrimary && modifier) {
		e.state = StatePanning
		return
	}
	if button != ButtonPrimary {
		return
	}

	world := e.Camera.ToWorld(p)
	idx := e.Model.NodeAt(world)
	if idx < 0 {
		return
	}
	e.state = StateDraggingNode
	e.dragIdx = idx
	n := e.Model.Nodes[idx]
	n.Pinned = true
	n.Vel = vector.Vector{0, 0}
	e.setHover(HoverNone, -1, p)
}

// PointerMove routes a pointer motion by state: drag moves the pinned
// node to the cursor's world position, pan shifts the camera by the
// screen delta, and idle motion re-evaluates the hover target.
func (e *Engine) PointerMove(p Point) {
	dx := p.X - e.lastPoint.X
	dy := p.Y - e.lastPoint.Y
	e.lastPoint = p

	switch e.state {
	case StateDraggingNode:
		world := e.Camera.ToWorld(p)
		n := e.Model.Nodes[e.dragIdx]
		n.Pos = vector.Vector{world.X, world.Y}
		n.Vel = vector.Vector{0, 0}

	case StatePanning:
		e.Camera.Pan(dx, dy)

	case StateIdle:
		e.updateHover(p)
	}
}

// PointerUp ends any active drag or pan.
func (e *Engine) PointerUp() {
	e.cancelDrag()
	e.state = StateIdle
	e.updateHover(e.lastPoint)
}

// Wheel zooms by a fixed multiplicative step anchored at the cursor.
const wheelZoomStep = 1.1

// Wheel applies one wheel notch at the given screen point. An attempt
// to leave the scale bounds is a silent no-op.
func (e *Engine) Wheel(p Point, zoomIn bool) {
	delta := wheelZoomStep
	if !zoomIn {
		delta = 1 / wheelZoomStep
	}
	e.Camera.ZoomAt(p, delta)
}

// HoverNext moves the hover target to the next node in declaration
// order, wrapping around. Keyboard counterpart to pointer hover.
func (e *Engine) HoverNext() {
	if e.Model == nil || len(e.Model.Nodes) == 0 {
		return
	}
	idx := 0
	if e.hoverKind == HoverNode {
		idx = (e.hoverIdx + 1) % len(e.Model.Nodes)
	}
	n := e.Model.Nodes[idx]
	p := e.Camera.ToScreen(Point{n.Pos[0], n.Pos[1]})
	e.setHover(HoverNode, idx, p)
}

// ResetView restores the identity camera without touching node
// positions.
func (e *Engine) ResetView() {
	e.Camera.Reset()
}

func (e *Engine) cancelDrag() {
	if e.state == StateDraggingNode && e.Model != nil && e.dragIdx >= 0 {
		e.Model.Nodes[e.dragIdx].Pinned = false
	}
	e.dragIdx = -1
	if e.state != StateIdle {
		e.state = StateIdle
	}
}

// updateHover hit-tests the point and fires OnHover if the target
// changed. Nodes always take precedence over links.
func (e *Engine) updateHover(p Point) {
	if e.Model == nil {
		e.setHover(HoverNone, -1, p)
		return
	}
	world := e.Camera.ToWorld(p)
	if idx := e.Model.NodeAt(world); idx >= 0 {
		e.setHover(HoverNode, idx, p)
		return
	}
	if idx := e.Model.LinkAt(world, e.Camera.Scale); idx >= 0 {
		e.setHover(HoverLink, idx, p)
		return
	}
	e.setHover(HoverNone, -1, p)
}

func (e *Engine) setHover(kind HoverKind, idx int, p Point) {
	if kind == e.hoverKind && idx == e.hoverIdx {
		return
	}
	e.hoverKind = kind
	e.hoverIdx = idx
	if e.OnHover != nil {
		e.OnHover(e.hoverTarget(p))
	}
}

func (e *Engine) hoverTarget(p Point) HoverTarget {
	t := HoverTarget{Kind: e.hoverKind, Screen: p}
	switch e.hoverKind {
	case HoverNode:
		t.Node = e.Model.Nodes[e.hoverIdx]
	case HoverLink:
		l := e.Model.Links[e.hoverIdx]
		t.Source = e.Model.Nodes[l.Source].ID
		t.Target = e.Model.Nodes[l.Target].ID
		t.Type = l.Type
	}
	return t
}
