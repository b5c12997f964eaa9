// Package app wires the plotting engine to the HAL: it owns the expression
// registry and viewport, routes keyboard input to the expression editor and
// pointer input to pan/zoom, and renders one frame per host step.
package app

import (
	"github.com/guptanshuman124/ImGraph/hal"
)

// DefaultExpression seeds the registry at startup.
const DefaultExpression = "r = 1 + 0.5*cos(theta)"

// Config carries startup options.
type Config struct {
	// Expr overrides the seeded expression text.
	Expr string
}

// New initializes the grapher with default config and returns the per-frame
// step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the grapher and returns the per-frame step
// function the host runner drives.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSession(h, cfg)
	return s.step
}
