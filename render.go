package freehand

// Render redraws a stroke list onto a canvas: background first (when
// non-empty), then every stroke in drawing order. It is a pure presentation
// pass over the data model; callers invoke it after any state-changing
// operation, and running it twice paints the same pixels.
func Render(strokes []Stroke, c Canvas, background string) {
	size := Size{Width: float64(c.Width()), Height: float64(c.Height())}
	c.Clear()
	if background != "" {
		c.SetFillColor(background)
		c.FillRect(0, 0, size.Width, size.Height)
	}
	for _, s := range strokes {
		renderStroke(s, c, size)
	}
}

func renderStroke(s Stroke, c Canvas, size Size) {
	// A stroke without points (possible in hand-written import data) is a
	// no-op, not an error.
	if len(s.Points) == 0 {
		return
	}
	c.SetStrokeColor(s.Style.Color)
	c.SetLineWidth(size.DenormalizeWidth(s.Style.Width))
	c.SetLineCap(s.Style.Cap)
	c.SetLineJoin(s.Style.Join)
	c.SetMiterLimit(s.Style.MiterLimit)

	c.BeginPath()
	if s.Interpolated {
		tracePolyline(s.Points, c, size)
	} else {
		traceLive(s.Points, c, size)
	}
	c.Stroke()
}

// tracePolyline draws a finalized stroke. Its points are already dense, so
// straight segments between them are indistinguishable from the curve.
func tracePolyline(pts []Point, c Canvas, size Size) {
	x, y := size.Denormalize(pts[0])
	c.MoveTo(x, y)
	if len(pts) == 1 {
		// Degenerate segment so round caps still paint a dot.
		c.LineTo(x, y)
		return
	}
	for _, p := range pts[1:] {
		x, y = size.Denormalize(p)
		c.LineTo(x, y)
	}
}

// traceLive draws a raw in-progress stroke as a chain of quadratic curves
// through the consecutive-pair midpoints, with each raw point as control.
// This matches the arcs the smoother will sample at stroke completion, so
// the stroke does not visibly change shape at pointer-up.
func traceLive(pts []Point, c Canvas, size Size) {
	x0, y0 := size.Denormalize(pts[0])
	c.MoveTo(x0, y0)
	if len(pts) == 1 {
		c.LineTo(x0, y0)
		return
	}
	for i := 1; i < len(pts); i++ {
		cx, cy := size.Denormalize(pts[i])
		if i+1 < len(pts) {
			mx, my := size.Denormalize(pts[i].Midpoint(pts[i+1]))
			c.QuadraticTo(cx, cy, mx, my)
		} else {
			c.LineTo(cx, cy)
		}
	}
}
