package controller

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDaily prints the diagram lines verbatim followed by the summary.
func (s *SimpleUI) DisplayDaily(sel m.Selection, diagram m.Diagram) error {
	for _, line := range diagram {
		s.printf("%s\n", line)
	}

	s.printf("%s\n", sel.Headline())
	s.printf("%s\n", sel.NotesLine())

	return nil
}

// DisplayTunings prints the tuning catalog as a table.
func (s *SimpleUI) DisplayTunings(tunings []m.Tuning) error {
	var buf bytes.Buffer

	writeTuningTable(&buf, tunings)
	s.printf("%s\n", buf.String())

	return nil
}

// DisplayScales prints the scale catalog as a table.
func (s *SimpleUI) DisplayScales(scales []m.Scale) error {
	var buf bytes.Buffer

	writeScaleTable(&buf, scales)
	s.printf("%s\n", buf.String())

	return nil
}

// DisplayPlan prints an overview table followed by each day's diagram.
func (s *SimpleUI) DisplayPlan(plans []m.DayPlan) error {
	var buf bytes.Buffer

	writePlanTable(&buf, plans)
	s.printf("%s", buf.String())

	for _, plan := range plans {
		s.printf("\n%s\n", plan.Date.Format("Monday, 2006-01-02"))

		if err := s.DisplayDaily(plan.Selection, plan.Diagram); err != nil {
			return err
		}
	}

	return nil
}

// Explore is not available without a terminal.
func (s *SimpleUI) Explore(_ ExploreSession) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
