package freehand

// EraseAt removes every point within radius of center (both normalized,
// radius against surface width) and re-segments each stroke so that the
// contiguous runs of surviving points become independent strokes. Cutting a
// hole in a stroke therefore yields two fragments instead of a broken line
// drawn as if connected.
//
// The returned list replaces the previous stroke list wholesale. Erasure is
// cumulative: each call operates on the current, already-possibly-fragmented
// strokes, and the scan is a single pass over every point, so it is cheap
// enough to run on every pointer-move sample of a drag.
//
// A stroke with every point inside the radius yields zero fragments and
// disappears; an untouched stroke yields one fragment identical to itself.
// Fragments receive value copies of the parent style. A radius of zero (or
// less) never removes anything.
func EraseAt(strokes []Stroke, center Point, radius float64) []Stroke {
	r2 := radius * radius
	out := make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		out = appendFragments(out, s, center, r2, radius > 0)
	}
	return out
}

// appendFragments scans one stroke's points in order, accumulating runs of
// surviving points and sealing each run as a fragment when a hit point (or
// the end of the stroke) terminates it.
func appendFragments(out []Stroke, s Stroke, center Point, r2 float64, active bool) []Stroke {
	var run []Point
	seal := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Stroke{
			Points:       run,
			Style:        s.Style,
			Interpolated: s.Interpolated,
		})
		run = nil
	}
	for _, p := range s.Points {
		// Points already carrying the skipped mark (possible in imported
		// documents) count as deleted regardless of the radius.
		if p.Skipped || (active && center.DistanceSquared(p) <= r2) {
			seal()
			continue
		}
		if run == nil {
			run = make([]Point, 0, len(s.Points))
		}
		run = append(run, p)
	}
	seal()
	return out
}
