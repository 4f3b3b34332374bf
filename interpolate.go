package freehand

import "math"

// DefaultSampleInterval is the target pixel spacing between resampled
// points on a smoothed stroke.
const DefaultSampleInterval = 2.0

// Smooth converts the raw, pointer-sampled points of a finished stroke into
// a dense, evenly spaced sequence suitable for rendering as straight
// segments, so redraws never re-evaluate curves.
//
// The raw points become a chain of quadratic arcs: each interior arc runs
// from one consecutive-pair midpoint to the next with the raw point between
// them as control point, which is what makes the curve pass smoothly near
// (not through) each sample. Each arc is evaluated at n = max(1,
// ceil(chord/interval)) parameters t = i/n for i in [0, n). The first raw
// point is emitted verbatim ahead of the first arc, so the output always
// starts exactly where the stroke started.
//
// The computation runs in pixel space for the given surface size and
// converts back at the boundary. Style attributes carry over unchanged and
// the result is marked Interpolated. A single-point stroke smooths to
// itself. interval values <= 0 fall back to DefaultSampleInterval.
func Smooth(s Stroke, size Size, interval float64) Stroke {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	out := Stroke{Style: s.Style, Interpolated: true}
	if len(s.Points) == 0 {
		return out
	}

	px := make([]Vec2, len(s.Points))
	for i, p := range s.Points {
		x, y := size.Denormalize(p)
		px[i] = V2(x, y)
	}

	out.Points = make([]Point, 0, len(s.Points)*2)
	out.Points = append(out.Points, Point{X: s.Points[0].X, Y: s.Points[0].Y})

	for i := 1; i < len(px); i++ {
		arc := QuadBez{
			P0: px[i-1].Midpoint(px[i]),
			P1: px[i],
			P2: px[i],
		}
		if i+1 < len(px) {
			arc.P2 = px[i].Midpoint(px[i+1])
		}
		n := sampleCount(arc.ChordLength(), interval)
		for j := 0; j < n; j++ {
			v := arc.Eval(float64(j) / float64(n))
			out.Points = append(out.Points, size.Normalize(v.X, v.Y))
		}
	}
	return out
}

// sampleCount returns how many samples an arc of the given chord length
// gets: at least one, and enough that consecutive samples are no farther
// apart than interval.
func sampleCount(chord, interval float64) int {
	n := int(math.Ceil(chord / interval))
	if n < 1 {
		return 1
	}
	return n
}
