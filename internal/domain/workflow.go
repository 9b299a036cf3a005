// Package domain contains the scale selection workflow and its logic.
package domain

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/daily-scale/internal/adapter"
	"github.com/mouse-blink/daily-scale/internal/controller"
	"github.com/mouse-blink/daily-scale/internal/domain/fretboard"
	m "github.com/mouse-blink/daily-scale/internal/model"
)

// MaxPlanDays bounds how far ahead a plan may look.
const MaxPlanDays = 31

// DailyArgs holds arguments for picking and showing one selection.
type DailyArgs struct {
	Pools          m.Pools
	FullRandomness bool
	// Date seeds the selection unless FullRandomness is set.
	Date time.Time
}

// ListArgs chooses which catalogs to list. When neither is set both are listed.
type ListArgs struct {
	Tunings bool
	Scales  bool
}

// PlanArgs holds arguments for previewing upcoming days.
type PlanArgs struct {
	Pools   m.Pools
	From    time.Time
	Days    int
	Threads int
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Daily(args DailyArgs) error
	List(args ListArgs) error
	Plan(args PlanArgs) error
	Explore(args DailyArgs) error
}

type workflow struct {
	ui      controller.UI
	sources adapter.SourceProvider
	picker  Picker
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(ui controller.UI, sources adapter.SourceProvider, picker Picker) Workflow {
	return &workflow{
		ui:      ui,
		sources: sources,
		picker:  picker,
	}
}

// Daily picks one selection and displays its diagram and summary.
func (w *workflow) Daily(args DailyArgs) error {
	sel := w.picker.Pick(args.Pools, w.source(args))

	return w.ui.DisplayDaily(sel, fretboard.BuildSelection(sel))
}

// List displays the tuning and scale catalogs.
func (w *workflow) List(args ListArgs) error {
	both := !args.Tunings && !args.Scales

	if args.Tunings || both {
		if err := w.ui.DisplayTunings(m.Tunings); err != nil {
			return err
		}
	}

	if args.Scales || both {
		if err := w.ui.DisplayScales(m.Scales); err != nil {
			return err
		}
	}

	return nil
}

// Plan computes the date-seeded selection of each UTC day starting with the
// UTC day of args.From.
func (w *workflow) Plan(args PlanArgs) error {
	if args.Days < 1 || args.Days > MaxPlanDays {
		return fmt.Errorf("days must be between 1 and %d, got %d", MaxPlanDays, args.Days)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	from := utcDate(args.From)
	plans := make([]m.DayPlan, args.Days)

	var g errgroup.Group

	g.SetLimit(threads)

	for i := range plans {
		g.Go(func() error {
			date := from.AddDate(0, 0, i)
			sel := w.picker.Pick(args.Pools, w.sources.Seeded(date))

			plans[i] = m.DayPlan{
				Date:      date,
				Selection: sel,
				Diagram:   fretboard.BuildSelection(sel),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}

	zap.L().Debug("plan built", zap.Int("days", args.Days), zap.Int("threads", threads))

	return w.ui.DisplayPlan(plans)
}

// Explore starts an interactive session seeded like Daily.
func (w *workflow) Explore(args DailyArgs) error {
	src := w.source(args)

	var mu sync.Mutex

	return w.ui.Explore(controller.ExploreSession{
		Selection: w.picker.Pick(args.Pools, src),
		Reroll: func() m.Selection {
			mu.Lock()
			defer mu.Unlock()

			return w.picker.Pick(args.Pools, src)
		},
	})
}

// utcDate returns midnight UTC of t's UTC calendar day, the day a seeded
// source is keyed on.
func utcDate(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()

	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func (w *workflow) source(args DailyArgs) adapter.RandomSource {
	if args.FullRandomness {
		return w.sources.Entropy()
	}

	return w.sources.Seeded(args.Date)
}
