package shatter

import (
	"fmt"
	"math"
)

const (
	perturbSpread  = 10.0
	minTravel      = 0.8
	maxTravel      = 1.3
	rotationTurns  = 4 * math.Pi
	maxDelay       = 0.3
	minScaleJitter = 0.5
	maxScaleJitter = 1.5
)

// Fragment describes one grid cell of a shattered rectangle: where it rests,
// where it ends up and how it gets there. Fragments are never modified after
// Build returns them.
type Fragment struct {
	Row, Col int

	StartX, StartY float64 // top-left at rest
	EndX, EndY     float64 // top-left when fully dispersed
	Width, Height  float64

	RotationRange float64 // signed radians reached at the end of travel
	DelayFraction float64 // share of the timeline spent at rest, [0, 0.3)
	ScaleJitter   float64 // cosmetic, [0.5, 1.5)

	Color string
}

// Build subdivides rect into a gridSize×gridSize field of fragments whose
// targets lie roughly beyond the viewport edge. The result is row-major.
func Build(rect Rect, vp Viewport, gridSize int, force float64, src Source) ([]Fragment, error) {
	if err := validateGrid(gridSize, force); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	if rect.Empty() {
		return nil, fmt.Errorf("%w: source rect %.1fx%.1f", ErrGeometryUnavailable, rect.Width, rect.Height)
	}
	if vp.Empty() {
		return nil, fmt.Errorf("%w: viewport %.1fx%.1f", ErrGeometryUnavailable, vp.Width, vp.Height)
	}

	fw := rect.Width / float64(gridSize)
	fh := rect.Height / float64(gridSize)
	cx, cy := rect.Center()
	reach := vp.Longest() * force
	if !finite(reach * maxTravel) {
		return nil, fmt.Errorf("%w: viewport %gx%g with force %g overflows travel distance", ErrGeometryUnavailable, vp.Width, vp.Height, force)
	}

	frags := make([]Fragment, 0, gridSize*gridSize)
	for i := range gridSize {
		for j := range gridSize {
			startX := rect.X + float64(j)*fw
			startY := rect.Y + float64(i)*fh

			dirX := startX + fw/2 - cx + uniform(src, -perturbSpread, perturbSpread)
			dirY := startY + fh/2 - cy + uniform(src, -perturbSpread, perturbSpread)

			distance := math.Hypot(dirX, dirY)
			if distance == 0 {
				distance = 1
			}
			scale := reach / distance * uniform(src, minTravel, maxTravel)
			endX, endY := startX+dirX*scale, startY+dirY*scale
			if !finite(startX, startY, endX, endY) {
				return nil, fmt.Errorf("%w: fragment %d,%d lands outside float range", ErrGeometryUnavailable, i, j)
			}

			frags = append(frags, Fragment{
				Row:           i,
				Col:           j,
				StartX:        startX,
				StartY:        startY,
				EndX:          endX,
				EndY:          endY,
				Width:         fw,
				Height:        fh,
				RotationRange: uniform(src, -0.5, 0.5) * rotationTurns,
				DelayFraction: uniform(src, 0, maxDelay),
				ScaleJitter:   uniform(src, minScaleJitter, maxScaleJitter),
				Color:         DefaultAccentColor,
			})
		}
	}
	return frags, nil
}

// Builder binds a validated Config and a random source.
type Builder struct {
	cfg Config
	src Source
}

// NewBuilder validates cfg up front. A nil src selects NewEntropySource.
func NewBuilder(cfg Config, src Source) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewEntropySource()
	}
	return &Builder{cfg: cfg, src: src}, nil
}

func (b *Builder) Config() Config { return b.cfg }

// Build generates a fresh fragment field for one trigger.
func (b *Builder) Build(rect Rect, vp Viewport) ([]Fragment, error) {
	frags, err := Build(rect, vp, b.cfg.GridSize, b.cfg.ExplosionForce, b.src)
	if err != nil {
		return nil, err
	}
	for i := range frags {
		frags[i].Color = b.cfg.AccentColor
	}
	return frags, nil
}
