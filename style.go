package freehand

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the canvas-style name of the cap ("butt", "round", "square").
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// MarshalText encodes the cap as its canvas-style name.
func (c LineCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a canvas-style cap name. Unknown names decode to
// LineCapButt rather than failing, so documents written by other tools with
// extended cap styles still import.
func (c *LineCap) UnmarshalText(text []byte) error {
	switch string(text) {
	case "round":
		*c = LineCapRound
	case "square":
		*c = LineCapSquare
	default:
		*c = LineCapButt
	}
	return nil
}

// LineJoin specifies the shape of stroke joins.
type LineJoin int

const (
	// LineJoinRound specifies a rounded join.
	LineJoinRound LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter
)

// String returns the canvas-style name of the join ("round", "bevel", "miter").
func (j LineJoin) String() string {
	switch j {
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiter:
		return "miter"
	default:
		return "round"
	}
}

// MarshalText encodes the join as its canvas-style name.
func (j LineJoin) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText decodes a canvas-style join name. Unknown names decode to
// LineJoinRound.
func (j *LineJoin) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bevel":
		*j = LineJoinBevel
	case "miter":
		*j = LineJoinMiter
	default:
		*j = LineJoinRound
	}
	return nil
}

// Style describes how a stroke is painted. It is a plain value: fragments
// produced by erasing each get their own copy, so editing one fragment's
// style can never affect a sibling.
//
// Width is normalized against the surface width, like all stored widths.
type Style struct {
	Width      float64
	Color      string
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns the style used when none is configured: a black
// stroke with round caps and joins, 0.5% of the surface width wide.
func DefaultStyle() Style {
	return Style{
		Width:      0.005,
		Color:      "#000000",
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 10,
	}
}

// WithWidth returns a copy of the Style with the given normalized width.
func (s Style) WithWidth(w float64) Style {
	s.Width = w
	return s
}

// WithColor returns a copy of the Style with the given color string.
func (s Style) WithColor(color string) Style {
	s.Color = color
	return s
}

// WithCap returns a copy of the Style with the given line cap.
func (s Style) WithCap(lineCap LineCap) Style {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Style with the given line join.
func (s Style) WithJoin(join LineJoin) Style {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Style with the given miter limit.
func (s Style) WithMiterLimit(limit float64) Style {
	s.MiterLimit = limit
	return s
}
