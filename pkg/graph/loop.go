package graph

import "sync/atomic"

// FrameToken identifies the loop generation a frame was scheduled
// under. A frame whose token is stale runs as a no-op.
type FrameToken uint64

// Loop drives the per-frame simulate-then-render cycle. The host owns
// the actual cadence (a ticker, an animation callback); the loop's
// job is cancellation discipline: Invalidate bumps the generation so
// that frames scheduled before a teardown or a wholesale data
// replacement cannot touch state that has since been replaced.
//
// Token may be called from the scheduling goroutine; Frame must run
// on the host's event-loop goroutine, where all engine state lives.
type Loop struct {
	gen    atomic.Uint64
	step   func()
	render func()
}

// NewLoop builds a loop over a step and a render callback. Either may
// be nil.
func NewLoop(step, render func()) *Loop {
	return &Loop{step: step, render: render}
}

// Token captures the current generation for a frame about to be
// scheduled.
func (l *Loop) Token() FrameToken {
	return FrameToken(l.gen.Load())
}

// Frame runs one simulate+render cycle if the token is still current.
// Returns false for stale frames, which do nothing.
func (l *Loop) Frame(t FrameToken) bool {
	if uint64(t) != l.gen.Load() {
		return false
	}
	if l.step != nil {
		l.step()
	}
	if l.render != nil {
		l.render()
	}
	return true
}

// Invalidate cancels all frames scheduled so far. Call on session
// teardown and whenever the graph data is replaced.
func (l *Loop) Invalidate() {
	l.gen.Add(1)
}
