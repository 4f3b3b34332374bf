package freehand

// Stroke is one continuous freehand mark: an ordered sequence of normalized
// points plus the style it is painted with.
//
// Interpolated distinguishes a raw in-progress stroke, rendered as a live
// quadratic chain while the pointer is down, from a finalized stroke whose
// points are already densely resampled and render as straight segments.
type Stroke struct {
	Points       []Point
	Style        Style
	Interpolated bool
}

// NewStroke creates a raw single-point stroke, the form every drawn stroke
// starts in at pointer-down.
func NewStroke(style Style, first Point) Stroke {
	return Stroke{
		Points: []Point{first},
		Style:  style,
	}
}

// Clone returns a deep copy of the stroke. The points slice gets its own
// backing array, so mutating the clone never aliases the original.
func (s Stroke) Clone() Stroke {
	out := s
	if s.Points != nil {
		out.Points = make([]Point, len(s.Points))
		copy(out.Points, s.Points)
	}
	return out
}

// cloneStrokes deep-copies a stroke list. Document handout paths use it so
// callers never receive references into live internal data.
func cloneStrokes(strokes []Stroke) []Stroke {
	if strokes == nil {
		return nil
	}
	out := make([]Stroke, len(strokes))
	for i, s := range strokes {
		out[i] = s.Clone()
	}
	return out
}
