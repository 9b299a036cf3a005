package controller

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/daily-scale/internal/domain/fretboard"
	m "github.com/mouse-blink/daily-scale/internal/model"
)

func newTestExploreModel(sel m.Selection, reroll func() m.Selection) exploreModel {
	var buf bytes.Buffer

	return newExploreModel(ExploreSession{Selection: sel, Reroll: reroll}, NewTUI(&buf).styles)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, model exploreModel, msg tea.Msg) (exploreModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)
	em, ok := next.(exploreModel)
	require.True(t, ok, "Update returned %T", next)

	return em, cmd
}

func TestExploreModel_MovesWindow(t *testing.T) {
	sel := m.Selection{Tuning: m.StandardE6, Root: m.C, Scale: m.Major, StartingFret: 0}
	model := newTestExploreModel(sel, nil)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, model.selection.StartingFret, "window must not move below the nut")

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRight})
	model, _ = update(t, model, runeKey('l'))
	assert.Equal(t, 2, model.selection.StartingFret)
	assert.Equal(t, fretboard.RulerLine(2), model.diagram[len(model.diagram)-1])

	model, _ = update(t, model, runeKey('h'))
	assert.Equal(t, 1, model.selection.StartingFret)
}

func TestExploreModel_StopsAtLastWindow(t *testing.T) {
	sel := m.Selection{Tuning: m.StandardE6, Root: m.C, Scale: m.Major, StartingFret: m.MaxStartingFret}
	model := newTestExploreModel(sel, nil)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, m.MaxStartingFret, model.selection.StartingFret)
}

func TestExploreModel_ChangesSelection(t *testing.T) {
	sel := m.Selection{Tuning: m.AllFourths7, Root: m.B, Scale: m.Locrian, StartingFret: 4}
	model := newTestExploreModel(sel, nil)

	model, _ = update(t, model, runeKey('t'))
	assert.Equal(t, m.StandardE6, model.selection.Tuning)
	assert.Len(t, model.diagram, len(m.StandardE6.Notes())+1)

	model, _ = update(t, model, runeKey('s'))
	assert.Equal(t, m.Major, model.selection.Scale)

	model, _ = update(t, model, runeKey('n'))
	assert.Equal(t, m.C, model.selection.Root)

	model, _ = update(t, model, runeKey('f'))
	assert.True(t, model.selection.Flat)
	assert.Equal(t, fretboard.BuildSelection(model.selection), model.diagram)
}

func TestExploreModel_Reroll(t *testing.T) {
	want := m.Selection{Tuning: m.DropC6, Root: m.F, Scale: m.Aeolian, StartingFret: 9}
	model := newTestExploreModel(m.Selection{}, func() m.Selection { return want })

	model, cmd := update(t, model, runeKey('r'))
	assert.Nil(t, cmd)
	assert.Equal(t, want, model.selection)
	assert.Equal(t, fretboard.BuildSelection(want), model.diagram)
}

func TestExploreModel_RerollsInKeyOrder(t *testing.T) {
	frets := []int{3, 11, 7}
	calls := 0
	model := newTestExploreModel(m.Selection{}, func() m.Selection {
		sel := m.Selection{Tuning: m.StandardE6, Root: m.G, Scale: m.Major, StartingFret: frets[calls]}
		calls++

		return sel
	})

	for _, want := range frets {
		model, _ = update(t, model, runeKey('r'))
		assert.Equal(t, want, model.selection.StartingFret)
	}

	assert.Equal(t, len(frets), calls)
}

func TestExploreModel_RerollWithoutSource(t *testing.T) {
	model := newTestExploreModel(m.Selection{}, nil)

	_, cmd := update(t, model, runeKey('r'))
	assert.Nil(t, cmd)
}

func TestExploreModel_Quit(t *testing.T) {
	model := newTestExploreModel(m.Selection{}, nil)

	_, cmd := update(t, model, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestExploreModel_View(t *testing.T) {
	sel := m.Selection{Tuning: m.OpenG6, Root: m.A, Scale: m.HarmonicMinor, StartingFret: 0}
	model := newTestExploreModel(sel, nil)
	model, _ = update(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := model.View()
	assert.Contains(t, view, "Scale explorer")
	assert.Contains(t, view, "D=|==========|====E=====|====F====|=========|")
	assert.Contains(t, view, sel.Headline())
	assert.Contains(t, view, "reroll")
}
