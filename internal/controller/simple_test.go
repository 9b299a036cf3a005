package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplayDaily(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	sel := m.Selection{Tuning: m.StandardE6, Root: m.A, Scale: m.PentatonicMinor, StartingFret: 5}
	diagram := m.Diagram{"line one", "line two", "ruler"}

	require.NoError(t, ui.DisplayDaily(sel, diagram))

	want := "line one\nline two\nruler\n" +
		"Here's the scale of the day: A Pentatonic Minor starting at fret 5 in Standard E (6 string) tuning\n" +
		"The notes in this scale are: A, C, D, E, G\n"
	assert.Equal(t, want, buf.String())
}

func TestSimpleUI_DisplayTunings(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayTunings([]m.Tuning{m.DropD6, m.AllFourths7}))

	output := buf.String()
	for _, want := range []string{
		"drop-d6",
		"Drop D (6 string)",
		"D A D G B E",
		"all-fourths7",
		"B E A D G C F",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayScales(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayScales([]m.Scale{m.HarmonicMinor}))

	output := buf.String()
	assert.Contains(t, output, "harmonic-minor")
	assert.Contains(t, output, "Harmonic Minor")
	assert.Contains(t, output, "0 2 3 5 7 8 11")
	assert.Contains(t, output, "C D D# F G G# B")
}

func TestSimpleUI_DisplayPlan(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	plans := []m.DayPlan{
		{
			Date:      day,
			Selection: m.Selection{Tuning: m.OpenG6, Root: m.CSharp, Flat: true, Scale: m.Dorian, StartingFret: 3},
			Diagram:   m.Diagram{"diagram-1"},
		},
		{
			Date:      day.AddDate(0, 0, 1),
			Selection: m.Selection{Tuning: m.OpenG6, Root: m.E, Scale: m.Major, StartingFret: 12},
			Diagram:   m.Diagram{"diagram-2"},
		},
	}

	require.NoError(t, ui.DisplayPlan(plans))

	output := buf.String()
	for _, want := range []string{
		"2024-03-14",
		"Thursday, 2024-03-14",
		"Friday, 2024-03-15",
		"Db",
		"diagram-1",
		"diagram-2",
		"E Major starting at fret 12",
	} {
		assert.Contains(t, output, want)
	}

	assert.Less(t, strings.Index(output, "diagram-1"), strings.Index(output, "diagram-2"))
}

func TestSimpleUI_Explore(t *testing.T) {
	cmd, _ := newBufferedCmd()

	err := NewSimpleUI(cmd).Explore(ExploreSession{})
	assert.ErrorIs(t, err, ErrNotInteractive)
}
