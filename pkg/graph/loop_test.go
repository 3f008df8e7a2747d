package graph

import "testing"

func TestLoopFrame(t *testing.T) {
	steps, renders := 0, 0
	l := NewLoop(func() { steps++ }, func() { renders++ })

	token := l.Token()
	if !l.Frame(token) {
		t.Fatal("Current-generation frame was rejected")
	}
	if steps != 1 || renders != 1 {
		t.Errorf("Expected one step and one render, got %d/%d", steps, renders)
	}

	// Tokens stay valid across frames until invalidated.
	if !l.Frame(token) {
		t.Error("Token became stale without Invalidate")
	}
}

func TestLoopStaleTokenIsNoOp(t *testing.T) {
	steps := 0
	l := NewLoop(func() { steps++ }, nil)

	token := l.Token()
	l.Invalidate()

	if l.Frame(token) {
		t.Error("Stale frame reported as run")
	}
	if steps != 0 {
		t.Errorf("Stale frame ran the step callback %d times", steps)
	}

	// A token captured after invalidation works.
	if !l.Frame(l.Token()) {
		t.Error("Fresh token rejected after Invalidate")
	}
	if steps != 1 {
		t.Errorf("Expected exactly one step, got %d", steps)
	}
}

func TestLoopNilCallbacks(t *testing.T) {
	l := NewLoop(nil, nil)
	if !l.Frame(l.Token()) {
		t.Error("Frame with nil callbacks should still report success")
	}
}
