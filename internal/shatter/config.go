package shatter

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrGeometryUnavailable is returned when the source rectangle or the
	// viewport has no area. Callers should treat the trigger as a no-op.
	ErrGeometryUnavailable = errors.New("geometry unavailable")

	// ErrInvalidConfiguration is returned for tunables outside their domain.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

const (
	DefaultGridSize       = 10
	MaxGridSize           = 200
	DefaultExplosionForce = 1.5
	DefaultDuration       = 1500 * time.Millisecond
	DefaultAccentColor    = "#FF8C00"
)

// Config holds the effect tunables.
type Config struct {
	GridSize       int           // fragments per side
	ExplosionForce float64       // travel distance multiplier
	Duration       time.Duration // total animation time
	AccentColor    string        // fragment fill, hex
}

// DefaultConfig returns the stock effect settings.
func DefaultConfig() Config {
	return Config{
		GridSize:       DefaultGridSize,
		ExplosionForce: DefaultExplosionForce,
		Duration:       DefaultDuration,
		AccentColor:    DefaultAccentColor,
	}
}

// Validate reports the first tunable outside its domain.
func (c Config) Validate() error {
	if err := validateGrid(c.GridSize, c.ExplosionForce); err != nil {
		return err
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfiguration, c.Duration)
	}
	if _, err := colorful.Hex(c.AccentColor); err != nil {
		return fmt.Errorf("%w: accent color %q: %v", ErrInvalidConfiguration, c.AccentColor, err)
	}
	return nil
}

func validateGrid(gridSize int, force float64) error {
	if gridSize < 1 || gridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size must be between 1 and %d, got %d", ErrInvalidConfiguration, MaxGridSize, gridSize)
	}
	if !(force > 0) || math.IsInf(force, 1) {
		return fmt.Errorf("%w: explosion force must be positive, got %g", ErrInvalidConfiguration, force)
	}
	return nil
}
