package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// slide eases a single offset toward a target with a spring.
type slide struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newSlide(from float64) slide {
	return slide{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0), pos: from}
}

// step advances one frame and reports whether the slide has settled.
func (s *slide) step(target float64) bool {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if math.Abs(s.pos-target) < 0.01 && math.Abs(s.vel) < 0.01 {
		s.pos, s.vel = target, 0
		return true
	}
	return false
}

func (s slide) offset() int {
	return int(math.Round(s.pos))
}
