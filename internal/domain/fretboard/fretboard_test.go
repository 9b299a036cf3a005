package fretboard

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

func TestStringLine(t *testing.T) {
	tests := []struct {
		name         string
		startingFret int
		scaleNotes   []m.Note
		openNote     m.Note
		fill         rune
		flat         bool
		want         string
	}{
		{
			name:         "thick string mid neck",
			startingFret: 5,
			scaleNotes:   []m.Note{m.A, m.B, m.C},
			openNote:     m.E,
			fill:         '=',
			want:         "|====A====|========|===B====|===C====|========|",
		},
		{
			name:         "thin string from the nut",
			startingFret: 0,
			scaleNotes:   []m.Note{m.A, m.B, m.C, m.D, m.E, m.F, m.GSharp},
			openNote:     m.D,
			fill:         '-',
			want:         "D-|----------|----E-----|----F----|---------|",
		},
		{
			name:         "open string not in scale",
			startingFret: 0,
			scaleNotes:   []m.Note{m.F},
			openNote:     m.E,
			fill:         '=',
			want:         "==|====F=====|==========|=========|=========|",
		},
		{
			name:         "sharp labels fill the label slot",
			startingFret: 0,
			scaleNotes:   []m.Note{m.CSharp, m.FSharp},
			openNote:     m.CSharp,
			fill:         '-',
			want:         "C#|----------|----------|---------|---------|",
		},
		{
			name:         "flat spelling",
			startingFret: 1,
			scaleNotes:   []m.Note{m.ASharp},
			openNote:     m.A,
			fill:         '-',
			flat:         true,
			want:         "|----Bb----|----------|---------|---------|---------|",
		},
		{
			name:         "last window on the neck",
			startingFret: m.MaxStartingFret,
			scaleNotes:   []m.Note{m.E},
			openNote:     m.E,
			fill:         '=',
			want:         "|======|=====|=====|=====|==E==|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringLine(tt.startingFret, tt.scaleNotes, tt.openNote, tt.fill, tt.flat)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StringLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRulerLine(t *testing.T) {
	tests := []struct {
		startingFret int
		want         string
	}{
		{0, "  |    1     |    2     |    3    |    4    |"},
		{5, "|    5    |   6    |   7    |   8    |   9    |"},
		{10, "|   10  |   11  |   12  |   13  |   14  |"},
		{20, "|  20  |  21 |  22 |  23 |  24 |"},
	}

	for _, tt := range tests {
		got := RulerLine(tt.startingFret)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("RulerLine(%d) mismatch (-want +got):\n%s", tt.startingFret, diff)
		}
	}
}

func TestBuild_OpenG(t *testing.T) {
	scaleNotes := []m.Note{m.A, m.B, m.C, m.D, m.E, m.F, m.GSharp}

	got := Build(m.OpenG6.Notes(), 0, scaleNotes, false)

	want := m.Diagram{
		"D-|----------|----E-----|----F----|---------|",
		"B-|----C-----|----------|----D----|---------|",
		"--|----G#----|----A-----|---------|----B----|",
		"D=|==========|====E=====|====F====|=========|",
		"==|====G#====|====A=====|=========|====B====|",
		"D=|==========|====E=====|====F====|=========|",
		"  |    1     |    2     |    3    |    4    |",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_StringOrdering(t *testing.T) {
	tuning := m.DropA7.Notes()
	scaleNotes := []m.Note{m.A, m.E}

	got := Build(tuning, 0, scaleNotes, false)

	require.Len(t, got, len(tuning)+1)
	assert.True(t, strings.HasPrefix(got[0], "E-"), "top line should be the highest string, got %q", got[0])
	assert.True(t, strings.HasPrefix(got[len(tuning)-1], "A="), "last string line should be the lowest string, got %q", got[len(tuning)-1])
	assert.Equal(t, RulerLine(0), got[len(got)-1])

	for i, line := range got[:len(tuning)] {
		thin := i < numThinStrings
		assert.Equal(t, thin, strings.Contains(line, "-"), "line %d thin=%v: %q", i, thin, line)
		assert.Equal(t, !thin, strings.Contains(line, "="), "line %d thick=%v: %q", i, !thin, line)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	sel := m.Selection{
		Tuning:       m.StandardCSharp6,
		Root:         m.GSharp,
		Flat:         true,
		Scale:        m.HalfDiminished,
		StartingFret: 11,
	}

	first := BuildSelection(sel)
	second := BuildSelection(sel)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("BuildSelection() not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuild_CellWidths(t *testing.T) {
	chromatic := m.Notes[:]

	for start := 0; start <= m.MaxStartingFret; start++ {
		for _, flat := range []bool{false, true} {
			diagram := Build(m.StandardB7.Notes(), start, chromatic, flat)

			for _, line := range diagram {
				cells := strings.Split(line, "|")
				// Leading nut cell (possibly empty), one cell per fret, trailing empty.
				require.Len(t, cells, m.FretSpan+2-boolToInt(start == 0), "line %q", line)

				frets := cells[1 : len(cells)-1]
				if start == 0 {
					assert.Equal(t, CellWidth(0), len(cells[0]), "nut cell in %q", line)
				} else {
					assert.Empty(t, cells[0])
				}

				first := start
				if start == 0 {
					first = 1
				}

				for i, cell := range frets {
					assert.Equal(t, CellWidth(first+i), len(cell), "fret %d in %q", first+i, line)
				}
			}
		}
	}
}

func TestSplit(t *testing.T) {
	for width := 5; width <= 10; width++ {
		left, right := Split(width)
		assert.Equal(t, width-2, left+right, "width %d", width)
		assert.GreaterOrEqual(t, left, right, "width %d", width)
	}

	left, right := Split(10)
	assert.Equal(t, 4, left)
	assert.Equal(t, 4, right)

	left, right = Split(9)
	assert.Equal(t, 4, left)
	assert.Equal(t, 3, right)
}

func TestPadLabel(t *testing.T) {
	assert.Equal(t, "A=", padLabel("A", '='))
	assert.Equal(t, "C#", padLabel("C#", '='))
	assert.Equal(t, "7 ", padLabel("7", ' '))
	assert.Equal(t, "12", padLabel("12", ' '))
}

func TestCellWidth(t *testing.T) {
	assert.Equal(t, openWidth, CellWidth(0))
	assert.Equal(t, 10, CellWidth(1))
	assert.Equal(t, 5, CellWidth(m.NumFrets))

	counts := map[int]int{}
	for fret := 1; fret <= m.NumFrets; fret++ {
		counts[CellWidth(fret)]++
		if fret > 1 {
			assert.LessOrEqual(t, CellWidth(fret), CellWidth(fret-1))
		}
	}

	assert.Equal(t, map[int]int{10: 2, 9: 3, 8: 4, 7: 5, 6: 6, 5: 4}, counts)
	assert.Panics(t, func() { CellWidth(m.NumFrets + 1) })
}

func TestBuild_PanicsOutsideNeck(t *testing.T) {
	assert.Panics(t, func() { Build(m.StandardE6.Notes(), -1, nil, false) })
	assert.Panics(t, func() { Build(m.StandardE6.Notes(), m.MaxStartingFret+1, nil, false) })
	assert.NotPanics(t, func() { Build(m.StandardE6.Notes(), m.MaxStartingFret, nil, false) })
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
