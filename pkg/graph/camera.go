package graph

// Point is a 2D coordinate, in either world or screen space depending
// on context.
type Point struct {
	X, Y float64
}

// Scale bounds for the camera. A zoom that would leave this range is
// rejected as a whole, never applied unclamped.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Transform is the camera mapping between world and screen space:
//
//	screen = world*Scale + Translate
//
// It persists across simulation ticks and across graph rebuilds until
// explicitly reset. Rendering, hit-testing, and interaction all share
// one Transform so what is drawn is exactly what is clickable.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: 1}
}

// ToWorld converts a screen point to world coordinates.
func (t Transform) ToWorld(p Point) Point {
	return Point{
		X: (p.X - t.TranslateX) / t.Scale,
		Y: (p.Y - t.TranslateY) / t.Scale,
	}
}

// ToScreen converts a world point to screen coordinates.
func (t Transform) ToScreen(p Point) Point {
	return Point{
		X: p.X*t.Scale + t.TranslateX,
		Y: p.Y*t.Scale + t.TranslateY,
	}
}

// ZoomAt multiplies the scale by delta while keeping the world point
// under the focal screen point stationary. Returns false (leaving the
// transform untouched) when the resulting scale would leave
// [MinScale, MaxScale].
func (t *Transform) ZoomAt(focal Point, delta float64) bool {
	next := t.Scale * delta
	if next < MinScale || next > MaxScale {
		return false
	}
	t.Scale = next
	t.TranslateX += (1 - delta) * (focal.X - t.TranslateX)
	t.TranslateY += (1 - delta) * (focal.Y - t.TranslateY)
	return true
}

// Pan shifts the view by a screen-space delta.
func (t *Transform) Pan(dx, dy float64) {
	t.TranslateX += dx
	t.TranslateY += dy
}

// Reset restores the identity transform. Node positions are not
// touched.
func (t *Transform) Reset() {
	*t = NewTransform()
}
