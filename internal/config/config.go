// Package config provides YAML-based configuration loading for FPT.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/fpt/internal/core"
	"github.com/vovakirdan/fpt/internal/tetris"
)

// View modes.
const (
	ViewRotating = "rotating"
	ViewFixed    = "fixed"
)

// WallColorKey is the Colors key for wall cells; other keys are shape letters.
const WallColorKey = "wall"

// FPTConfig contains all configuration for the game.
type FPTConfig struct {
	Gravity GravityConfig     `yaml:"gravity"`
	View    ViewConfig        `yaml:"view"`
	Colors  map[string]string `yaml:"colors"`
}

// GravityConfig controls automatic falling.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Minimum time between two automatic falls
}

// ViewConfig controls how the field is drawn.
type ViewConfig struct {
	Mode      string `yaml:"mode"`       // "rotating" or "fixed"
	CellWidth int    `yaml:"cell_width"` // Terminal columns per field cell
}

// GravityInterval returns the gravity threshold as a duration.
func (c FPTConfig) GravityInterval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// Validate reports every problem found in the configuration.
func (c FPTConfig) Validate() error {
	var errs []error

	if c.Gravity.IntervalMS < 0 {
		errs = append(errs, fmt.Errorf("gravity.interval_ms must be >= 0, got %d", c.Gravity.IntervalMS))
	}
	switch c.View.Mode {
	case ViewRotating, ViewFixed:
	default:
		errs = append(errs, fmt.Errorf("view.mode must be %q or %q, got %q", ViewRotating, ViewFixed, c.View.Mode))
	}
	if c.View.CellWidth < 1 || c.View.CellWidth > 4 {
		errs = append(errs, fmt.Errorf("view.cell_width must be between 1 and 4, got %d", c.View.CellWidth))
	}
	for key, name := range c.Colors {
		if _, ok := tetris.ParseShape(key); !ok && key != WallColorKey {
			errs = append(errs, fmt.Errorf("colors: unknown key %q", key))
		}
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// Palette resolves the configured colors. Missing entries fall back to the
// default palette.
func (c FPTConfig) Palette() Palette {
	p := DefaultPalette()
	for key, name := range c.Colors {
		color, err := core.ParseColor(name)
		if err != nil {
			continue
		}
		if key == WallColorKey {
			p.Wall = color
			continue
		}
		if s, ok := tetris.ParseShape(key); ok {
			p.Shapes[s] = color
		}
	}
	return p
}

// Palette maps field cells to screen colors.
type Palette struct {
	Shapes [tetris.ShapeCount]core.Color
	Wall   core.Color
}

// DefaultPalette returns the standard tetrimino colors.
func DefaultPalette() Palette {
	return Palette{
		Shapes: [tetris.ShapeCount]core.Color{
			tetris.ShapeI: core.ColorCyan,
			tetris.ShapeO: core.ColorYellow,
			tetris.ShapeS: core.ColorBrightGreen,
			tetris.ShapeZ: core.ColorRed,
			tetris.ShapeJ: core.ColorBlue,
			tetris.ShapeL: core.ColorOrange,
			tetris.ShapeT: core.ColorMagenta,
		},
		Wall: core.ColorGray,
	}
}

// CellColor returns the color for a field cell.
func (p Palette) CellColor(c tetris.Cell) core.Color {
	if c == tetris.Wall {
		return p.Wall
	}
	if s, ok := c.Shape(); ok {
		return p.Shapes[s]
	}
	return core.ColorDefault
}
