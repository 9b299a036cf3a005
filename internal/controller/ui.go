// Package controller provides output adapters for displaying scale selections.
package controller

import (
	"errors"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

// ErrNotInteractive is returned when an interactive session is requested
// without a terminal.
var ErrNotInteractive = errors.New("explore needs an interactive terminal")

// ExploreSession seeds an interactive session.
type ExploreSession struct {
	Selection m.Selection
	// Reroll draws a fresh selection from the same pools.
	Reroll func() m.Selection
}

// UI defines the interface for displaying fretboards and catalogs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDaily(sel m.Selection, diagram m.Diagram) error
	DisplayTunings(tunings []m.Tuning) error
	DisplayScales(scales []m.Scale) error
	DisplayPlan(plans []m.DayPlan) error
	Explore(session ExploreSession) error
}
