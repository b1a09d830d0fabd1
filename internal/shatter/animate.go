package shatter

import (
	"math"
	"time"
)

// Transform is the rendered state of a fragment at one instant.
type Transform struct {
	X, Y     float64 // top-left
	Rotation float64 // radians
	Scale    float64 // [0.5, 1]
	Opacity  float64 // [0, 1]
}

// EaseOutExpo is fast at first and decelerates toward 1.
func EaseOutExpo(t float64) float64 {
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// EffectiveProgress remaps global progress onto the fragment's own timeline:
// zero until its delay has passed, then linear up to 1 at progress 1.
func EffectiveProgress(f Fragment, progress float64) float64 {
	progress = clamp01(progress)
	return clamp01((progress - f.DelayFraction) / (1 - f.DelayFraction))
}

// Evaluate computes where fragment f is drawn at progress, which is clamped
// to [0, 1].
func Evaluate(f Fragment, progress float64) Transform {
	e := EffectiveProgress(f, progress)
	c := EaseOutExpo(e)
	return Transform{
		X:        lerp(f.StartX, f.EndX, c),
		Y:        lerp(f.StartY, f.EndY, c),
		Rotation: f.RotationRange * e,
		Scale:    1 - 0.5*e,
		Opacity:  clamp01(1 - e*1.2),
	}
}

// EvaluateAll evaluates every fragment into dst, reusing its backing array.
func EvaluateAll(frags []Fragment, progress float64, dst []Transform) []Transform {
	dst = dst[:0]
	for i := range frags {
		dst = append(dst, Evaluate(frags[i], progress))
	}
	return dst
}

// Timeline maps elapsed time onto progress in [0, 1].
type Timeline struct {
	Duration time.Duration
}

func (tl Timeline) Progress(elapsed time.Duration) float64 {
	if tl.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(tl.Duration))
}

// Done reports whether progress has reached the end of the timeline.
func (tl Timeline) Done(progress float64) bool {
	return progress >= 1
}
