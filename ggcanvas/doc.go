// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas adapts a gg drawing context to the freehand.Canvas
// interface, giving a freehand board a pure-Go software rasterizer and
// PNG/JPEG export without any GPU or display dependency.
//
// Example:
//
//	canvas, err := ggcanvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	board, err := freehand.New(canvas)
package ggcanvas
