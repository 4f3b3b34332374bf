package freehand

// Curve primitives for the stroke smoother, in pixel space.

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Vec2
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Vec2 {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Vec2
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Vec2{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// ChordLength returns the distance between the curve's start and end points.
// The smoother derives its per-arc sample count from this, not from the true
// arc length; for the short, shallow arcs produced by pointer sampling the
// chord is a close enough proxy.
func (q QuadBez) ChordLength() float64 {
	return q.P0.Distance(q.P2)
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Vec2 {
	return q.P0
}

// End returns the ending point of the curve.
func (q QuadBez) End() Vec2 {
	return q.P2
}
