package freehand

// Option configures a Board during creation.
//
// Example:
//
//	board, err := freehand.New(canvas,
//	    freehand.WithBackground("#ffffff"),
//	    freehand.WithLineWidth(6),
//	    freehand.WithOnStroke(func(s freehand.Stroke) { save(s) }),
//	)
type Option func(*boardOptions)

// CursorFunc receives eraser cursor updates: whether the eraser is active,
// its radius in pixels, and the pointer position. UI chrome such as a
// visible eraser-radius circle subscribes with WithCursorFunc; the core
// itself draws no cursor.
type CursorFunc func(active bool, radiusPixels, x, y float64)

type boardOptions struct {
	background     string
	lineWidth      float64
	lineColor      string
	lineCap        LineCap
	lineJoin       LineJoin
	miterLimit     float64
	eraserSize     float64
	sampleInterval float64
	readOnly       bool
	onStroke       func(Stroke)
	onCursor       CursorFunc
}

func defaultBoardOptions() boardOptions {
	return boardOptions{
		lineWidth:      5,
		lineColor:      "#000000",
		lineCap:        LineCapRound,
		lineJoin:       LineJoinRound,
		miterLimit:     10,
		eraserSize:     20,
		sampleInterval: DefaultSampleInterval,
	}
}

// WithBackground sets a background color painted under the strokes on every
// redraw and in exported images. The default is no background.
func WithBackground(color string) Option {
	return func(o *boardOptions) { o.background = color }
}

// WithLineWidth sets the default pen width in pixels.
func WithLineWidth(px float64) Option {
	return func(o *boardOptions) { o.lineWidth = px }
}

// WithLineColor sets the default pen color.
func WithLineColor(color string) Option {
	return func(o *boardOptions) { o.lineColor = color }
}

// WithLineCap sets the default line cap for new strokes.
func WithLineCap(c LineCap) Option {
	return func(o *boardOptions) { o.lineCap = c }
}

// WithLineJoin sets the default line join for new strokes.
func WithLineJoin(j LineJoin) Option {
	return func(o *boardOptions) { o.lineJoin = j }
}

// WithMiterLimit sets the default miter limit for new strokes.
func WithMiterLimit(limit float64) Option {
	return func(o *boardOptions) { o.miterLimit = limit }
}

// WithEraserSize sets the eraser diameter in pixels.
func WithEraserSize(px float64) Option {
	return func(o *boardOptions) { o.eraserSize = px }
}

// WithSampleInterval sets the target pixel spacing used when finished
// strokes are resampled. Smaller values give denser points.
func WithSampleInterval(px float64) Option {
	return func(o *boardOptions) { o.sampleInterval = px }
}

// WithReadOnly creates the board with drawing and erasing suppressed.
// Undo, redo, clear and serialization remain available.
func WithReadOnly(readOnly bool) Option {
	return func(o *boardOptions) { o.readOnly = readOnly }
}

// WithOnStroke registers a callback invoked once per completed drawn
// stroke, with the finalized (smoothed) stroke. Erasing does not fire it.
func WithOnStroke(fn func(Stroke)) Option {
	return func(o *boardOptions) { o.onStroke = fn }
}

// WithCursorFunc registers an eraser cursor subscriber.
func WithCursorFunc(fn CursorFunc) Option {
	return func(o *boardOptions) { o.onCursor = fn }
}
