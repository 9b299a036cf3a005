package controller

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignments := make([]int, len(header))
	for i := range alignments {
		alignments[i] = tablewriter.ALIGN_LEFT
	}

	table.SetColumnAlignment(alignments)

	return table
}

func writeTuningTable(w io.Writer, tunings []m.Tuning) {
	table := newTable(w, "Tuning", "Name", "Strings (low to high)")

	for _, tuning := range tunings {
		table.Append([]string{
			tuning.ID(),
			tuning.Name(),
			strings.Join(m.NoteNames(tuning.Notes(), false), " "),
		})
	}

	table.Render()
}

func writeScaleTable(w io.Writer, scales []m.Scale) {
	table := newTable(w, "Scale", "Name", "Steps", "From C")

	for _, scale := range scales {
		steps := make([]string, 0, len(scale.Steps()))
		for _, step := range scale.Steps() {
			steps = append(steps, strconv.Itoa(step))
		}

		table.Append([]string{
			scale.ID(),
			scale.Name(),
			strings.Join(steps, " "),
			strings.Join(m.NoteNames(scale.NotesFrom(m.C), false), " "),
		})
	}

	table.Render()
}

func writePlanTable(w io.Writer, plans []m.DayPlan) {
	table := newTable(w, "Date", "Root", "Scale", "Fret", "Tuning")

	for _, plan := range plans {
		sel := plan.Selection
		table.Append([]string{
			plan.Date.Format(time.DateOnly),
			sel.Root.Name(sel.Flat),
			sel.Scale.Name(),
			strconv.Itoa(sel.StartingFret),
			sel.Tuning.Name(),
		})
	}

	table.Render()
}
