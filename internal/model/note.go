// Package model defines the data structures for scale practice: notes,
// tunings, scales and the selections built from them.
package model

import (
	"fmt"
	"strings"
)

// NumNotes is the number of pitch classes in an octave.
const NumNotes = 12

// Note is one of the twelve pitch classes, C=0 through B=11.
type Note int

// Available Note values in chromatic order.
const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Notes lists every pitch class in chromatic order.
var Notes = [NumNotes]Note{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}

var sharpNames = [NumNotes]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [NumNotes]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Index returns the position of the note in the chromatic scale.
func (n Note) Index() int {
	return int(n)
}

// Transpose moves the note by the given number of semitones, wrapping around the octave.
func (n Note) Transpose(semitones int) Note {
	return Note(((int(n)+semitones)%NumNotes + NumNotes) % NumNotes)
}

// Name returns the conventional spelling of the note. Natural notes are a
// single letter, altered notes are a letter plus '#' or 'b'.
func (n Note) Name(flat bool) string {
	if flat {
		return flatNames[n.Index()]
	}

	return sharpNames[n.Index()]
}

func (n Note) String() string {
	return n.Name(false)
}

// NoteNames spells every note with the given accidental preference.
func NoteNames(notes []Note, flat bool) []string {
	names := make([]string, 0, len(notes))
	for _, note := range notes {
		names = append(names, note.Name(flat))
	}

	return names
}

// Accidental is a named spelling of a root note. Enharmonic spellings such as
// c-sharp and d-flat resolve to the same Note but display differently.
type Accidental struct {
	ID   string
	Note Note
	Flat bool
}

// Accidentals lists every root-note spelling accepted on the command line.
var Accidentals = []Accidental{
	{ID: "c", Note: C},
	{ID: "c-sharp", Note: CSharp},
	{ID: "d-flat", Note: CSharp, Flat: true},
	{ID: "d", Note: D},
	{ID: "d-sharp", Note: DSharp},
	{ID: "e-flat", Note: DSharp, Flat: true},
	{ID: "e", Note: E},
	{ID: "f", Note: F},
	{ID: "f-sharp", Note: FSharp},
	{ID: "g-flat", Note: FSharp, Flat: true},
	{ID: "g", Note: G},
	{ID: "g-sharp", Note: GSharp},
	{ID: "a-flat", Note: GSharp, Flat: true},
	{ID: "a", Note: A},
	{ID: "a-sharp", Note: ASharp},
	{ID: "b-flat", Note: ASharp, Flat: true},
	{ID: "b", Note: B},
}

// Name returns the display form of the spelling, e.g. "Db".
func (a Accidental) Name() string {
	return a.Note.Name(a.Flat)
}

func (a Accidental) String() string {
	return a.ID
}

// ParseAccidental resolves either an id ("d-flat") or a display name ("Db").
func ParseAccidental(s string) (Accidental, error) {
	value := strings.TrimSpace(s)
	for _, accidental := range Accidentals {
		if strings.EqualFold(accidental.ID, value) || accidental.Name() == normalizeNoteName(value) {
			return accidental, nil
		}
	}

	ids := make([]string, 0, len(Accidentals))
	for _, accidental := range Accidentals {
		ids = append(ids, accidental.ID)
	}

	return Accidental{}, fmt.Errorf("unknown root note %q (valid: %s)", s, strings.Join(ids, ", "))
}

// normalizeNoteName upper-cases the letter and keeps the accidental mark as
// typed, so "db" and "Db" both match while "DB" does not.
func normalizeNoteName(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
