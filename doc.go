// Package freehand provides a resolution-independent freehand drawing surface.
//
// # Overview
//
// freehand captures pointer input, accumulates it into normalized stroke
// data, smooths finished strokes with quadratic curve resampling, supports
// an eraser that splits strokes into fragments, and provides undo/redo and
// JSON serialization. Rendering is delegated to a Canvas implementation;
// package ggcanvas supplies one backed by the gg software rasterizer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/freehand"
//	    "github.com/gogpu/freehand/ggcanvas"
//	)
//
//	canvas, _ := ggcanvas.New(800, 600)
//	board, _ := freehand.New(canvas, freehand.WithLineColor("#1a1a2e"))
//
//	// Feed pointer events.
//	board.Pointer(freehand.Event{Kind: freehand.EventStart, X: 100, Y: 100})
//	board.Pointer(freehand.Event{Kind: freehand.EventMove, X: 180, Y: 140})
//	board.Pointer(freehand.Event{Kind: freehand.EventEnd})
//
//	// Export.
//	png, _ := board.ExportImage("image/png")
//	_ = png
//
// # Coordinate System
//
// Stroke data is stored normalized: positions as fractions of the current
// surface width and height, stroke widths as fractions of the surface width.
// Pixel values exist only transiently during rendering and hit-testing, so
// resizing the surface never mutates stroke data.
//
// # Concurrency
//
// A Board is single-threaded by design: every pointer event is handled
// fully (state update, geometry, redraw) before the next one. Boards are
// not safe for concurrent use.
package freehand
