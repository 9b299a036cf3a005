package controller

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/daily-scale/internal/domain/fretboard"
	m "github.com/mouse-blink/daily-scale/internal/model"
)

type exploreKeyMap struct {
	Lower  key.Binding
	Higher key.Binding
	Reroll key.Binding
	Flat   key.Binding
	Tuning key.Binding
	Scale  key.Binding
	Root   key.Binding
	Quit   key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lower, k.Higher, k.Reroll, k.Flat, k.Tuning, k.Scale, k.Root, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Lower, k.Higher},
		{k.Reroll, k.Flat},
		{k.Tuning, k.Scale, k.Root},
		{k.Quit},
	}
}

func newExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Lower:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "lower")),
		Higher: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "higher")),
		Reroll: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reroll")),
		Flat:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "♯/♭")),
		Tuning: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tuning")),
		Scale:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scale")),
		Root:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "root")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// exploreModel lets the user move the fret window and change the selection.
type exploreModel struct {
	selection m.Selection
	diagram   m.Diagram
	reroll    func() m.Selection
	keys      exploreKeyMap
	help      help.Model
	styles    styles
	width     int
}

func newExploreModel(session ExploreSession, s styles) exploreModel {
	model := exploreModel{
		reroll: session.Reroll,
		keys:   newExploreKeyMap(),
		help:   help.New(),
		styles: s,
	}

	return model.withSelection(session.Selection)
}

func (m exploreModel) withSelection(sel m.Selection) exploreModel {
	m.selection = sel
	m.diagram = fretboard.BuildSelection(sel)

	return m
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.selection

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Lower):
		if sel.StartingFret > 0 {
			sel.StartingFret--
		}

	case key.Matches(msg, m.keys.Higher):
		if sel.StartingFret < maxStartingFret {
			sel.StartingFret++
		}

	case key.Matches(msg, m.keys.Reroll):
		if m.reroll == nil {
			return m, nil
		}

		sel = m.reroll()

	case key.Matches(msg, m.keys.Flat):
		sel.Flat = !sel.Flat

	case key.Matches(msg, m.keys.Tuning):
		sel.Tuning = nextTuning(sel.Tuning)

	case key.Matches(msg, m.keys.Scale):
		sel.Scale = nextScale(sel.Scale)

	case key.Matches(msg, m.keys.Root):
		sel.Root = sel.Root.Transpose(1)

	default:
		return m, nil
	}

	return m.withSelection(sel), nil
}

func (m exploreModel) View() string {
	title := m.styles.title.Padding(1, 0, 0, 2).Render("Scale explorer")

	body := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.highlight(m.diagram, m.selection.Root.Name(m.selection.Flat)),
		"",
		m.styles.summary(m.selection),
	))

	footer := lipgloss.NewStyle().Padding(0, 2).Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

const maxStartingFret = m.MaxStartingFret

func nextTuning(t m.Tuning) m.Tuning {
	return m.Tunings[(int(t)+1)%len(m.Tunings)]
}

func nextScale(s m.Scale) m.Scale {
	return m.Scales[(int(s)+1)%len(m.Scales)]
}
