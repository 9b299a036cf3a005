package controller

import (
	"bytes"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

// TUI implements UI with lipgloss styling and a Bubble Tea explorer.
type TUI struct {
	output io.Writer
	input  io.Reader
	styles styles
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		styles: newStyles(lipgloss.NewRenderer(output)),
	}
}

// DisplayDaily prints the highlighted diagram followed by the summary.
func (t *TUI) DisplayDaily(sel m.Selection, diagram m.Diagram) error {
	_, _ = fmt.Fprintf(t.output, "%s\n%s\n",
		t.styles.highlight(diagram, sel.Root.Name(sel.Flat)),
		t.styles.summary(sel),
	)

	return nil
}

// DisplayTunings prints the tuning catalog.
func (t *TUI) DisplayTunings(tunings []m.Tuning) error {
	var buf bytes.Buffer

	writeTuningTable(&buf, tunings)
	_, _ = fmt.Fprintf(t.output, "%s\n%s\n", t.styles.title.Render("Tunings"), buf.String())

	return nil
}

// DisplayScales prints the scale catalog.
func (t *TUI) DisplayScales(scales []m.Scale) error {
	var buf bytes.Buffer

	writeScaleTable(&buf, scales)
	_, _ = fmt.Fprintf(t.output, "%s\n%s\n", t.styles.title.Render("Scales"), buf.String())

	return nil
}

// DisplayPlan prints an overview followed by each day's highlighted diagram.
func (t *TUI) DisplayPlan(plans []m.DayPlan) error {
	var buf bytes.Buffer

	writePlanTable(&buf, plans)
	_, _ = fmt.Fprintf(t.output, "%s\n%s", t.styles.title.Render("Practice plan"), buf.String())

	for _, plan := range plans {
		_, _ = fmt.Fprintf(t.output, "\n%s\n", t.styles.date.Render(plan.Date.Format("Monday, 2006-01-02")))

		if err := t.DisplayDaily(plan.Selection, plan.Diagram); err != nil {
			return err
		}
	}

	return nil
}

// Explore runs the interactive explorer until the user quits.
func (t *TUI) Explore(session ExploreSession) error {
	return t.startWithModel(newExploreModel(session, t.styles), tea.WithAltScreen())
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithOutput(t.output))
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("explorer: %w", err)
	}

	return nil
}
