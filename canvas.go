package freehand

// Canvas is the rendering surface the core draws onto. It is a minimal
// immediate-mode path API plus the current pixel dimensions, which the core
// also uses for every coordinate conversion.
//
// Package ggcanvas provides an implementation backed by the gg software
// rasterizer; any backend with path stroking can satisfy it.
type Canvas interface {
	// Width and Height are the current surface dimensions in pixels.
	Width() int
	Height() int

	// Clear erases the whole surface to transparent (or the backend's
	// notion of empty).
	Clear()

	// SetFillColor and FillRect paint rectangles, used for the background.
	SetFillColor(color string)
	FillRect(x, y, w, h float64)

	// Stroke state.
	SetStrokeColor(color string)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	SetMiterLimit(limit float64)

	// Path construction and stroking.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	Stroke()
}

// ImageEncoder is implemented by canvases that can export their contents as
// an encoded image. Board.ExportImage delegates to it.
type ImageEncoder interface {
	EncodeImage(mime string) ([]byte, error)
}

// Resizer is implemented by canvases whose pixel dimensions can change.
// Board.Resize requires it.
type Resizer interface {
	Resize(width, height int) error
}
