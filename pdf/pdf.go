// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pdf exports a freehand document record as a vector PDF.
//
// Strokes are drawn as polylines in PDF points, denormalized against the
// requested page size. Finalized strokes are already dense enough that the
// polyline is indistinguishable from the smoothed curve.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/freehand"
)

// ErrEmptySize is returned when the page size has a non-positive dimension.
var ErrEmptySize = errors.New("pdf: page size must be positive")

// Export writes rec as a single-page PDF of the given size (in PDF points,
// 1/72 inch). Strokes without points are skipped.
func Export(rec freehand.Record, size freehand.Size, w io.Writer) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("%w: %+v", ErrEmptySize, size)
	}
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	doc.AddPage()

	for _, s := range rec.Strokes {
		if len(s.Points) == 0 {
			continue
		}
		drawStroke(doc, s, size)
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: write document: %w", err)
	}
	return nil
}

func drawStroke(doc *gofpdf.Fpdf, s freehand.StrokeRecord, size freehand.Size) {
	r, g, b := hexRGB(s.Color)
	doc.SetDrawColor(r, g, b)
	doc.SetLineWidth(size.DenormalizeWidth(s.Size))
	doc.SetLineCapStyle(s.Cap.String())
	doc.SetLineJoinStyle(s.Join.String())

	x, y := size.Denormalize(s.Points[0])
	doc.MoveTo(x, y)
	if len(s.Points) == 1 {
		doc.LineTo(x, y)
	}
	for _, p := range s.Points[1:] {
		if p.Skipped {
			continue
		}
		x, y = size.Denormalize(p)
		doc.LineTo(x, y)
	}
	doc.DrawPath("D")
}

// hexRGB parses "#rgb" / "#rrggbb" colors; anything unparseable is black.
func hexRGB(hex string) (r, g, b int) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3:
		r = hexComponent(hex[0:1]) * 17
		g = hexComponent(hex[1:2]) * 17
		b = hexComponent(hex[2:3]) * 17
	case 6:
		r = hexComponent(hex[0:2])
		g = hexComponent(hex[2:4])
		b = hexComponent(hex[4:6])
	}
	return r, g, b
}

func hexComponent(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
