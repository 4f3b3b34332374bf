package freehand

// Point is a stroke sample in normalized coordinates: X and Y are fractions
// of the surface width and height. Values are not clamped to [0,1]; a drag
// that leaves the surface produces points outside that range.
//
// Skipped marks a point logically deleted by erasing. It exists only
// transiently: the eraser reifies deletions into separate strokes in the
// same pass, so committed strokes never contain skipped points.
type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Skipped bool    `json:"skipped,omitempty"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// DistanceSquared returns the squared distance between two points.
// The eraser hit test uses this to avoid a square root per sample.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
