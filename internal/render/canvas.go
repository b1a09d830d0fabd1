// Package render rasterizes animated fragments onto a terminal cell grid.
package render

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/olivier-w/shatter/internal/shatter"
)

// Terminal cells are roughly twice as tall as they are wide. Rotation is
// computed in square units so fragments do not skew as they spin.
const cellAspect = 2.0

type cell struct {
	glyph rune
	color colorful.Color
	set   bool
}

// Canvas is a fixed-size grid of cells in viewport coordinates: one unit is
// one terminal column horizontally and one row vertically.
type Canvas struct {
	width, height int
	background    colorful.Color
	profile       termenv.Profile
	cells         []cell
	sb            strings.Builder
}

func NewCanvas(width, height int, background string, profile termenv.Profile) *Canvas {
	c := &Canvas{background: parseColor(background), profile: profile}
	c.Resize(width, height)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	if cap(c.cells) < width*height {
		c.cells = make([]cell, width*height)
	}
	c.cells = c.cells[:width*height]
	c.Clear()
}

func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Viewport returns the canvas size as the viewport fragments are built for.
func (c *Canvas) Viewport() shatter.Viewport {
	return shatter.Viewport{Width: float64(c.width), Height: float64(c.height)}
}

// DrawFragment paints f at transform t. Transparent fragments and the parts
// of a fragment outside the canvas are skipped.
func (c *Canvas) DrawFragment(f shatter.Fragment, t shatter.Transform) {
	if t.Opacity <= 0 || c.width == 0 || c.height == 0 {
		return
	}

	s := t.Scale * jitter(f.ScaleJitter, t.Scale)
	hw := f.Width * s / 2
	hh := f.Height * s / 2 * cellAspect
	cx := t.X + f.Width/2
	cy := t.Y + f.Height/2

	r := math.Hypot(hw, hh)
	x0 := max(int(math.Floor(cx-r)), 0)
	x1 := min(int(math.Ceil(cx+r)), c.width-1)
	y0 := max(int(math.Floor(cy-r/cellAspect)), 0)
	y1 := min(int(math.Ceil(cy+r/cellAspect)), c.height-1)

	glyph, col := c.shade(f.Color, t.Opacity)
	sin, cos := math.Sincos(t.Rotation)

	hit := false
	for y := y0; y <= y1; y++ {
		py := (float64(y) + 0.5 - cy) * cellAspect
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5 - cx
			lx := px*cos + py*sin
			ly := -px*sin + py*cos
			if math.Abs(lx) <= hw && math.Abs(ly) <= hh {
				c.cells[y*c.width+x] = cell{glyph: glyph, color: col, set: true}
				hit = true
			}
		}
	}

	// Fragments smaller than a cell still mark the cell under their center.
	if !hit {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if x >= 0 && x < c.width && y >= 0 && y < c.height {
			c.cells[y*c.width+x] = cell{glyph: glyph, color: col, set: true}
		}
	}
}

// jitter grows from 1 toward the fragment's scale jitter as it shrinks.
func jitter(j, scale float64) float64 {
	if j <= 0 {
		return 1
	}
	k := (1 - scale) * 2
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return 1 + (j-1)*k
}

func (c *Canvas) shade(hex string, opacity float64) (rune, colorful.Color) {
	col := parseColor(hex).BlendLab(c.background, 1-opacity).Clamped()
	switch {
	case opacity > 0.75:
		return '█', col
	case opacity > 0.5:
		return '▓', col
	case opacity > 0.25:
		return '▒', col
	default:
		return '░', col
	}
}

// String renders the grid as newline-separated rows.
func (c *Canvas) String() string {
	c.sb.Reset()
	c.sb.Grow(c.width*c.height + c.height)
	for y := range c.height {
		st := newANSIState(c.profile)
		for x := range c.width {
			cl := c.cells[y*c.width+x]
			if !cl.set {
				st.reset(&c.sb)
				c.sb.WriteByte(' ')
				continue
			}
			st.set(&c.sb, cl.color)
			c.sb.WriteRune(cl.glyph)
		}
		st.reset(&c.sb)
		if y < c.height-1 {
			c.sb.WriteByte('\n')
		}
	}
	return c.sb.String()
}
