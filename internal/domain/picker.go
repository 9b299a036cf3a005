package domain

import (
	"go.uber.org/zap"

	"github.com/mouse-blink/daily-scale/internal/adapter"
	m "github.com/mouse-blink/daily-scale/internal/model"
)

// Picker chooses a practice selection from pools.
type Picker interface {
	Pick(pools m.Pools, src adapter.RandomSource) m.Selection
}

type picker struct{}

// NewPicker creates a new Picker instance.
func NewPicker() Picker {
	return &picker{}
}

// Pick draws the root, then the scale, then the starting fret from src.
// Empty pools fall back to every note, every scale and every valid fret.
func (p *picker) Pick(pools m.Pools, src adapter.RandomSource) m.Selection {
	sel := m.Selection{Tuning: pools.Tuning}

	if len(pools.RootNotes) > 0 {
		accidental := choose(src, pools.RootNotes)
		sel.Root = accidental.Note
		sel.Flat = accidental.Flat
	} else {
		sel.Root = choose(src, m.Notes[:])
	}

	if len(pools.Scales) > 0 {
		sel.Scale = choose(src, pools.Scales)
	} else {
		sel.Scale = choose(src, m.Scales)
	}

	if len(pools.StartingFrets) > 0 {
		sel.StartingFret = choose(src, pools.StartingFrets)
	} else {
		sel.StartingFret = src.IntN(m.MaxStartingFret + 1)
	}

	zap.L().Debug("picked selection",
		zap.Stringer("tuning", sel.Tuning),
		zap.String("root", sel.Root.Name(sel.Flat)),
		zap.Stringer("scale", sel.Scale),
		zap.Int("startingFret", sel.StartingFret),
	)

	return sel
}

func choose[T any](src adapter.RandomSource, pool []T) T {
	return pool[src.IntN(len(pool))]
}
