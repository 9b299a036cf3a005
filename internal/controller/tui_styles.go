package controller

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

// noteLabel matches a note name inside a rendered string line.
var noteLabel = regexp.MustCompile(`[A-G][#b]?`)

type styles struct {
	title    lipgloss.Style
	root     lipgloss.Style
	note     lipgloss.Style
	ruler    lipgloss.Style
	headline lipgloss.Style
	notes    lipgloss.Style
	date     lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		root:     r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
		note:     r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		ruler:    r.NewStyle().Foreground(lipgloss.Color("8")),
		headline: r.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		notes:    r.NewStyle().Foreground(lipgloss.Color("6")),
		date:     r.NewStyle().Foreground(lipgloss.Color("11")).Underline(true),
		footer:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// highlight colors the note labels of every string line, the root in its own
// style, and dims the ruler. Cell widths are unchanged.
func (s styles) highlight(diagram m.Diagram, rootName string) string {
	if len(diagram) == 0 {
		return ""
	}

	lines := make([]string, 0, len(diagram))

	for _, line := range diagram[:len(diagram)-1] {
		lines = append(lines, noteLabel.ReplaceAllStringFunc(line, func(label string) string {
			if label == rootName {
				return s.root.Render(label)
			}

			return s.note.Render(label)
		}))
	}

	lines = append(lines, s.ruler.Render(diagram[len(diagram)-1]))

	return strings.Join(lines, "\n")
}

// summary renders the headline and the scale's notes.
func (s styles) summary(sel m.Selection) string {
	return s.headline.Render(sel.Headline()) + "\n" + s.notes.Render(sel.NotesLine())
}
