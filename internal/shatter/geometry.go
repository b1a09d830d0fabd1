package shatter

import "math"

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty reports whether the rectangle has no usable area, which is the case
// for an element that has not been laid out yet.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0) || !finite(r.X, r.Y, r.Width, r.Height)
}

// Viewport is the size of the drawing surface the fragments fly across.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) Empty() bool {
	return !(v.Width > 0) || !(v.Height > 0) || !finite(v.Width, v.Height)
}

// Longest returns the larger of the two dimensions.
func (v Viewport) Longest() float64 {
	return math.Max(v.Width, v.Height)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp is written as a*(1-t) + b*t so t=0 and t=1 return a and b exactly.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
