// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/freehand"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrUnsupportedMIME is returned by EncodeImage for MIME types the
	// backend cannot encode.
	ErrUnsupportedMIME = errors.New("ggcanvas: unsupported image MIME type")
)

// jpegQuality is the quality used for image/jpeg export.
const jpegQuality = 92

// Canvas implements freehand.Canvas on top of a gg software context.
//
// Canvas is NOT safe for concurrent use, matching the single-threaded
// processing model of the board that drives it.
type Canvas struct {
	ctx *gg.Context
}

var (
	_ freehand.Canvas       = (*Canvas)(nil)
	_ freehand.ImageEncoder = (*Canvas)(nil)
	_ freehand.Resizer      = (*Canvas)(nil)
)

// New creates a software canvas with the given pixel dimensions.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{ctx: gg.NewContext(width, height)}, nil
}

// Context returns the underlying gg context. Callers can use it for
// drawing beyond the freehand.Canvas surface, such as watermarking an
// export; the next board redraw repaints everything.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

// Image returns the current contents as an image.Image.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.ctx.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.ctx.Height()
}

// Clear erases the canvas to transparent.
func (c *Canvas) Clear() {
	c.ctx.Clear()
}

// SetFillColor sets the fill color from a hex string.
func (c *Canvas) SetFillColor(color string) {
	c.ctx.SetFillBrush(gg.SolidHex(color))
}

// FillRect fills an axis-aligned rectangle with the current fill color.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.ctx.DrawRectangle(x, y, w, h)
	if err := c.ctx.Fill(); err != nil {
		freehand.Logger().Warn("ggcanvas: fill failed", "error", err)
	}
}

// SetStrokeColor sets the stroke color from a hex string.
func (c *Canvas) SetStrokeColor(color string) {
	c.ctx.SetStrokeBrush(gg.SolidHex(color))
}

// SetLineWidth sets the stroke width in pixels.
func (c *Canvas) SetLineWidth(w float64) {
	c.ctx.SetLineWidth(w)
}

// SetLineCap sets the stroke cap style.
func (c *Canvas) SetLineCap(lineCap freehand.LineCap) {
	switch lineCap {
	case freehand.LineCapRound:
		c.ctx.SetLineCap(gg.LineCapRound)
	case freehand.LineCapSquare:
		c.ctx.SetLineCap(gg.LineCapSquare)
	default:
		c.ctx.SetLineCap(gg.LineCapButt)
	}
}

// SetLineJoin sets the stroke join style.
func (c *Canvas) SetLineJoin(join freehand.LineJoin) {
	switch join {
	case freehand.LineJoinBevel:
		c.ctx.SetLineJoin(gg.LineJoinBevel)
	case freehand.LineJoinMiter:
		c.ctx.SetLineJoin(gg.LineJoinMiter)
	default:
		c.ctx.SetLineJoin(gg.LineJoinRound)
	}
}

// SetMiterLimit sets the miter limit.
func (c *Canvas) SetMiterLimit(limit float64) {
	c.ctx.SetMiterLimit(limit)
}

// BeginPath starts a fresh path.
func (c *Canvas) BeginPath() {
	c.ctx.ClearPath()
}

// MoveTo starts a new subpath at the given position.
func (c *Canvas) MoveTo(x, y float64) {
	c.ctx.MoveTo(x, y)
}

// LineTo adds a straight segment to the current path.
func (c *Canvas) LineTo(x, y float64) {
	c.ctx.LineTo(x, y)
}

// QuadraticTo adds a quadratic curve with control point (cx, cy).
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	c.ctx.QuadraticTo(cx, cy, x, y)
}

// Stroke paints the current path with the current stroke state.
func (c *Canvas) Stroke() {
	if err := c.ctx.Stroke(); err != nil {
		freehand.Logger().Warn("ggcanvas: stroke failed", "error", err)
	}
}

// EncodeImage exports the canvas contents. Supported MIME types are
// "image/png" and "image/jpeg".
func (c *Canvas) EncodeImage(mime string) ([]byte, error) {
	var buf bytes.Buffer
	switch mime {
	case "image/png":
		if err := c.ctx.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("ggcanvas: encode png: %w", err)
		}
	case "image/jpeg":
		if err := c.ctx.EncodeJPEG(&buf, jpegQuality); err != nil {
			return nil, fmt.Errorf("ggcanvas: encode jpeg: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMIME, mime)
	}
	return buf.Bytes(), nil
}

// Resize changes the canvas dimensions, clearing its contents. The board
// redraws from stroke data right after, so nothing is lost.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return c.ctx.Resize(width, height)
}
