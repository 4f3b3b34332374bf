package freehand

// Size is the pixel dimensions of a drawing surface. It is the bridge
// between normalized stroke data and pixel space: all conversions in the
// package go through its methods.
type Size struct {
	Width, Height float64
}

// Normalize converts a pixel position into a normalized Point.
func (s Size) Normalize(x, y float64) Point {
	return Point{X: x / s.Width, Y: y / s.Height}
}

// Denormalize converts a normalized Point back into pixel coordinates.
// It is the exact inverse of Normalize up to floating-point rounding, so
// resizing the surface and re-rendering reproduces the same proportions.
func (s Size) Denormalize(p Point) (x, y float64) {
	return p.X * s.Width, p.Y * s.Height
}

// NormalizeWidth converts a pixel stroke width into normalized form.
// Widths are always normalized against the surface width, never the height,
// for compatibility with stored documents.
func (s Size) NormalizeWidth(px float64) float64 {
	return px / s.Width
}

// DenormalizeWidth converts a normalized stroke width back into pixels.
func (s Size) DenormalizeWidth(w float64) float64 {
	return w * s.Width
}

// AspectRatio returns width divided by height.
func (s Size) AspectRatio() float64 {
	return s.Width / s.Height
}
