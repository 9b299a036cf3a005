// Package fretboard renders ASCII fretboard diagrams with the notes of a scale
// highlighted across a fixed window of frets.
package fretboard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/daily-scale/internal/model"
)

// numThinStrings is how many of the highest strings are drawn with thinFill.
const numThinStrings = 3

const (
	thickFill = '='
	thinFill  = '-'
	rulerFill = ' '
	separator = '|'
)

// openWidth is the width of the fret 0 (nut) slot.
const openWidth = 2

// cellWidths holds the printed width of each fret, shrinking up the neck the
// way real frets do. Index 0 is unused: the nut is drawn with openWidth.
var cellWidths = [m.NumFrets + 1]int{
	0, 10, 10, 9, 9, 9, 8, 8, 8, 8, 7, 7, 7, 7, 7, 6, 6, 6, 6, 6, 6, 5, 5, 5, 5,
}

// CellWidth returns the printed width of a fret cell, excluding its separator.
func CellWidth(fret int) int {
	mustBeOnNeck(fret)

	if fret == 0 {
		return openWidth
	}

	return cellWidths[fret]
}

// Build renders the diagram for the given open-string notes (lowest string
// first). The highest string comes out on top and the fret ruler last.
func Build(tuning []m.Note, startingFret int, scaleNotes []m.Note, flat bool) m.Diagram {
	mustBeValidWindow(startingFret)

	diagram := make(m.Diagram, 0, len(tuning)+1)

	for i := len(tuning) - 1; i >= 0; i-- {
		fill := thickFill
		if i >= len(tuning)-numThinStrings {
			fill = thinFill
		}

		diagram = append(diagram, StringLine(startingFret, scaleNotes, tuning[i], fill, flat))
	}

	return append(diagram, RulerLine(startingFret))
}

// BuildSelection renders the diagram for a complete selection.
func BuildSelection(sel m.Selection) m.Diagram {
	return Build(sel.Tuning.Notes(), sel.StartingFret, sel.ScaleNotes(), sel.Flat)
}

// StringLine renders one string whose open note is openNote.
func StringLine(startingFret int, scaleNotes []m.Note, openNote m.Note, fill rune, flat bool) string {
	mustBeValidWindow(startingFret)

	var b strings.Builder

	for fret := startingFret; fret < startingFret+m.FretSpan; fret++ {
		note := openNote.Transpose(fret % m.NumNotes)
		inScale := slices.Contains(scaleNotes, note)

		if fret == 0 {
			if inScale {
				b.WriteString(padLabel(note.Name(flat), fill))
			} else {
				writeFill(&b, fill, CellWidth(fret))
			}

			continue
		}

		b.WriteRune(separator)

		if inScale {
			writeCentered(&b, padLabel(note.Name(flat), fill), CellWidth(fret), fill)
		} else {
			writeFill(&b, fill, CellWidth(fret))
		}
	}

	b.WriteRune(separator)

	return b.String()
}

// RulerLine renders the fret numbers for the window.
func RulerLine(startingFret int) string {
	mustBeValidWindow(startingFret)

	var b strings.Builder

	for fret := startingFret; fret < startingFret+m.FretSpan; fret++ {
		if fret == 0 {
			writeFill(&b, rulerFill, CellWidth(fret))
			continue
		}

		b.WriteRune(separator)
		writeCentered(&b, padLabel(strconv.Itoa(fret), rulerFill), CellWidth(fret), rulerFill)
	}

	b.WriteRune(separator)

	return b.String()
}

// Split returns the fill on each side of a two-character label in a cell of
// the given width. The right side is one shorter on even widths.
func Split(width int) (left, right int) {
	left = width / 2
	if width%2 == 0 {
		left--
	}

	return left, width/2 - 1
}

func writeCentered(b *strings.Builder, label string, width int, fill rune) {
	left, right := Split(width)
	writeFill(b, fill, left)
	b.WriteString(label)
	writeFill(b, fill, right)
}

// padLabel widens one-character labels to openWidth with the fill character.
func padLabel(label string, fill rune) string {
	if utf8.RuneCountInString(label) == 1 {
		return label + string(fill)
	}

	return label
}

func writeFill(b *strings.Builder, fill rune, n int) {
	for range n {
		b.WriteRune(fill)
	}
}

func mustBeValidWindow(startingFret int) {
	if startingFret < 0 || startingFret > m.MaxStartingFret {
		panic(fmt.Sprintf("fretboard: starting fret %d outside 0..%d", startingFret, m.MaxStartingFret))
	}
}

func mustBeOnNeck(fret int) {
	if fret < 0 || fret > m.NumFrets {
		panic(fmt.Sprintf("fretboard: fret %d outside 0..%d", fret, m.NumFrets))
	}
}
