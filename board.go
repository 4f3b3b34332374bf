package freehand

import (
	"errors"
	"fmt"
)

// Common errors returned by Board operations.
var (
	// ErrNilCanvas is returned by New when no canvas is supplied.
	ErrNilCanvas = errors.New("freehand: nil canvas")

	// ErrResizeUnsupported is returned by Resize when the canvas does not
	// implement Resizer.
	ErrResizeUnsupported = errors.New("freehand: canvas does not support resizing")

	// ErrExportUnsupported is returned by ExportImage when the canvas does
	// not implement ImageEncoder.
	ErrExportUnsupported = errors.New("freehand: canvas does not support image export")

	// ErrInvalidWidth is returned by Resize for widths that are not positive.
	ErrInvalidWidth = errors.New("freehand: invalid width")
)

// EventKind identifies a pointer event.
type EventKind int

const (
	// EventStart is a pointer-down (or touch-start).
	EventStart EventKind = iota
	// EventMove is a pointer-move while down.
	EventMove
	// EventEnd is a pointer-up, pointer-leave or touch-end. Position is
	// ignored: touch-end carries none.
	EventEnd
)

// Event is one pointer or touch event in surface pixel coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}

// boardState is the input state machine: idle, accumulating a raw stroke,
// or erasing.
type boardState int

const (
	stateIdle boardState = iota
	stateDrawing
	stateErasing
)

// Board is the drawing surface core. It owns the document, routes pointer
// events through the draw/erase state machine, and redraws the canvas after
// every state-changing operation.
//
// A Board processes events synchronously and is not safe for concurrent use.
type Board struct {
	canvas Canvas
	doc    *Document
	state  boardState

	eraser   bool
	readOnly bool

	background string

	// Pixel-space working values for the UI-facing pen and eraser. These
	// are not stroke data; Resize rescales them by the width ratio.
	lineWidth  float64
	eraserSize float64

	lineColor  string
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64

	sampleInterval float64

	onStroke func(Stroke)
	onCursor CursorFunc
}

// New creates a Board drawing onto canvas. A nil canvas is the one fatal
// construction error; every other input has a usable default.
func New(canvas Canvas, opts ...Option) (*Board, error) {
	if canvas == nil {
		return nil, ErrNilCanvas
	}
	o := defaultBoardOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := &Board{
		canvas:         canvas,
		doc:            NewDocument(),
		background:     o.background,
		lineWidth:      o.lineWidth,
		eraserSize:     o.eraserSize,
		lineColor:      o.lineColor,
		lineCap:        o.lineCap,
		lineJoin:       o.lineJoin,
		miterLimit:     o.miterLimit,
		sampleInterval: o.sampleInterval,
		readOnly:       o.readOnly,
		onStroke:       o.onStroke,
		onCursor:       o.onCursor,
	}
	b.redraw()
	return b, nil
}

// size returns the current canvas dimensions.
func (b *Board) size() Size {
	return Size{Width: float64(b.canvas.Width()), Height: float64(b.canvas.Height())}
}

// Size returns the current surface dimensions in pixels.
func (b *Board) Size() Size {
	return b.size()
}

// Document returns a deep snapshot of the current strokes.
func (b *Board) Document() []Stroke {
	return b.doc.Strokes()
}

// Pointer feeds one pointer event through the state machine. Every event is
// handled fully, including the redraw, before Pointer returns.
func (b *Board) Pointer(ev Event) {
	switch ev.Kind {
	case EventStart:
		b.pointerDown(ev.X, ev.Y)
	case EventMove:
		b.pointerMove(ev.X, ev.Y)
	case EventEnd:
		b.pointerUp()
	}
}

func (b *Board) pointerDown(x, y float64) {
	if b.readOnly {
		return
	}
	if b.eraser {
		b.state = stateErasing
		b.eraseAt(x, y)
		return
	}
	b.state = stateDrawing
	b.doc.Push(NewStroke(b.currentStyle(), b.size().Normalize(x, y)))
	Logger().Debug("freehand: stroke started", "x", x, "y", y)
	b.redraw()
}

func (b *Board) pointerMove(x, y float64) {
	switch b.state {
	case stateDrawing:
		b.doc.AppendPoint(b.size().Normalize(x, y))
		b.redraw()
	case stateErasing:
		b.eraseAt(x, y)
	}
}

func (b *Board) pointerUp() {
	switch b.state {
	case stateDrawing:
		b.finishStroke()
	case stateErasing:
		Logger().Debug("freehand: erase ended")
	}
	b.state = stateIdle
}

// finishStroke replaces the raw in-progress stroke with its smoothed form,
// exactly once per stroke, then notifies the completion callback.
func (b *Board) finishStroke() {
	raw, ok := b.doc.Last()
	if !ok || raw.Interpolated {
		return
	}
	smoothed := Smooth(raw, b.size(), b.sampleInterval)
	b.doc.ReplaceLast(smoothed)
	Logger().Debug("freehand: stroke finished",
		"rawPoints", len(raw.Points), "points", len(smoothed.Points))
	if b.onStroke != nil {
		b.onStroke(smoothed.Clone())
	}
	b.redraw()
}

// eraseAt runs the eraser for one pointer sample and replaces the stroke
// list with the resulting fragments.
func (b *Board) eraseAt(x, y float64) {
	size := b.size()
	radius := size.NormalizeWidth(b.eraserSize) / 2
	center := size.Normalize(x, y)
	live := b.doc.view()
	fragments := EraseAt(live, center, radius)
	changed := len(fragments) != len(live) || totalPoints(fragments) != totalPoints(live)
	b.doc.ReplaceAll(fragments, changed)
	if b.onCursor != nil {
		b.onCursor(true, b.eraserSize/2, x, y)
	}
	b.redraw()
}

func totalPoints(strokes []Stroke) int {
	n := 0
	for _, s := range strokes {
		n += len(s.Points)
	}
	return n
}

// AddStroke inserts a straight line between two pixel positions with the
// given style, bypassing pointer input and interpolation. The line commits
// like any stroke: it clears the redo history and triggers a redraw.
func (b *Board) AddStroke(x0, y0, x1, y1 float64, style Style) {
	size := b.size()
	b.doc.Push(Stroke{
		Points:       []Point{size.Normalize(x0, y0), size.Normalize(x1, y1)},
		Style:        style,
		Interpolated: true,
	})
	b.redraw()
}

// Undo removes the most recent stroke. No-op on an empty document.
func (b *Board) Undo() {
	if b.doc.Undo() {
		b.redraw()
	}
}

// Redo restores the most recently undone stroke. No-op when nothing has
// been undone since the last commit.
func (b *Board) Redo() {
	if b.doc.Redo() {
		b.redraw()
	}
}

// Clear removes every stroke and the undo history, then redraws.
func (b *Board) Clear() {
	b.doc.Clear()
	b.redraw()
}

// SetLineWidth sets the pen width in pixels for subsequent strokes.
func (b *Board) SetLineWidth(px float64) {
	b.lineWidth = px
}

// LineWidth returns the current pen width in pixels.
func (b *Board) LineWidth() float64 {
	return b.lineWidth
}

// EraserSize returns the current eraser diameter in pixels.
func (b *Board) EraserSize() float64 {
	return b.eraserSize
}

// SetLineColor sets the pen color for subsequent strokes.
func (b *Board) SetLineColor(color string) {
	b.lineColor = color
}

// SetLineCap sets the line cap for subsequent strokes.
func (b *Board) SetLineCap(c LineCap) {
	b.lineCap = c
}

// SetLineJoin sets the line join for subsequent strokes.
func (b *Board) SetLineJoin(j LineJoin) {
	b.lineJoin = j
}

// SetMiterLimit sets the miter limit for subsequent strokes.
func (b *Board) SetMiterLimit(limit float64) {
	b.miterLimit = limit
}

// SetEraserSize sets the eraser diameter in pixels.
func (b *Board) SetEraserSize(px float64) {
	b.eraserSize = px
}

// SetBackground sets the background color and redraws.
func (b *Board) SetBackground(color string) {
	b.background = color
	b.redraw()
}

// ToggleEraser switches between pen and eraser mode.
func (b *Board) ToggleEraser() {
	b.SetEraser(!b.eraser)
}

// SetEraser switches eraser mode on or off.
func (b *Board) SetEraser(on bool) {
	if b.eraser == on {
		return
	}
	b.eraser = on
	Logger().Debug("freehand: eraser toggled", "on", on)
	if !on && b.onCursor != nil {
		b.onCursor(false, 0, 0, 0)
	}
}

// Eraser reports whether eraser mode is active.
func (b *Board) Eraser() bool {
	return b.eraser
}

// SetReadOnly suppresses (or re-enables) drawing and erasing. Undo, redo,
// clear and serialization are unaffected.
func (b *Board) SetReadOnly(readOnly bool) {
	b.readOnly = readOnly
}

// ReadOnly reports whether the board is read-only.
func (b *Board) ReadOnly() bool {
	return b.readOnly
}

// Resize changes the surface width, keeping the current aspect ratio. The
// pen and eraser pixel sizes scale by the width ratio; stroke data is
// normalized and untouched. The canvas must implement Resizer.
func (b *Board) Resize(newWidth float64) error {
	if newWidth <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, newWidth)
	}
	r, ok := b.canvas.(Resizer)
	if !ok {
		return ErrResizeUnsupported
	}
	size := b.size()
	ratio := newWidth / size.Width
	newHeight := newWidth / size.AspectRatio()
	if err := r.Resize(int(newWidth+0.5), int(newHeight+0.5)); err != nil {
		return fmt.Errorf("freehand: resize canvas: %w", err)
	}
	b.lineWidth *= ratio
	b.eraserSize *= ratio
	Logger().Debug("freehand: resized",
		"width", newWidth, "height", newHeight, "ratio", ratio)
	b.redraw()
	return nil
}

// Export snapshots the document as a Record.
func (b *Board) Export() Record {
	return recordFromStrokes(b.doc.view(), b.size().AspectRatio())
}

// Import replaces the document with the strokes of a Record and redraws.
// The record's aspect ratio is informational and never rescales points; a
// record without strokes imports as an empty document. Importing resets the
// undo history.
func (b *Board) Import(rec Record) {
	b.doc.Clear()
	b.doc.ReplaceAll(strokesFromRecord(rec), false)
	b.redraw()
}

// ExportImage encodes the current canvas contents, delegating to the
// canvas. Supported MIME types are the canvas's concern.
func (b *Board) ExportImage(mime string) ([]byte, error) {
	enc, ok := b.canvas.(ImageEncoder)
	if !ok {
		return nil, ErrExportUnsupported
	}
	return enc.EncodeImage(mime)
}

// currentStyle builds the normalized style for a new stroke from the pixel
// working values.
func (b *Board) currentStyle() Style {
	return Style{
		Width:      b.size().NormalizeWidth(b.lineWidth),
		Color:      b.lineColor,
		Cap:        b.lineCap,
		Join:       b.lineJoin,
		MiterLimit: b.miterLimit,
	}
}

func (b *Board) redraw() {
	Render(b.doc.view(), b.canvas, b.background)
}
