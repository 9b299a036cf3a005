package model

import (
	"fmt"
	"strings"
)

// Scale identifies a set of semitone steps above a root.
type Scale int

// Available Scale values.
const (
	Major Scale = iota
	HarmonicMinor
	MelodicMinor
	NaturalMinor
	PentatonicMajor
	PentatonicMinor
	PentatonicBlues
	PentatonicNeutral
	WholeDiminished
	HalfDiminished
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

type scaleInfo struct {
	id    string
	name  string
	steps []int
}

var scaleTable = [...]scaleInfo{
	Major:             {"major", "Major", []int{0, 2, 4, 5, 7, 9, 11}},
	HarmonicMinor:     {"harmonic-minor", "Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11}},
	MelodicMinor:      {"melodic-minor", "Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11}},
	NaturalMinor:      {"natural-minor", "Natural Minor", []int{0, 2, 3, 5, 7, 8, 10}},
	PentatonicMajor:   {"pentatonic-major", "Pentatonic Major", []int{0, 2, 4, 7, 9}},
	PentatonicMinor:   {"pentatonic-minor", "Pentatonic Minor", []int{0, 3, 5, 7, 10}},
	PentatonicBlues:   {"pentatonic-blues", "Pentatonic Blues", []int{0, 3, 5, 6, 7, 10}},
	PentatonicNeutral: {"pentatonic-neutral", "Pentatonic Neutral", []int{0, 2, 5, 7, 10}},
	WholeDiminished:   {"whole-diminished", "Whole Diminished", []int{0, 2, 3, 5, 6, 8, 9, 11}},
	HalfDiminished:    {"half-diminished", "Half Diminished", []int{0, 1, 3, 4, 6, 7, 9, 10}},
	Ionian:            {"ionian", "Ionian", []int{0, 2, 4, 5, 7, 9, 11}},
	Dorian:            {"dorian", "Dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	Phrygian:          {"phrygian", "Phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
	Lydian:            {"lydian", "Lydian", []int{0, 2, 4, 6, 7, 9, 11}},
	Mixolydian:        {"mixolydian", "Mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
	Aeolian:           {"aeolian", "Aeolian", []int{0, 2, 3, 5, 7, 8, 10}},
	Locrian:           {"locrian", "Locrian", []int{0, 1, 3, 5, 6, 8, 10}},
}

// Scales lists every known scale in declaration order.
var Scales = func() []Scale {
	scales := make([]Scale, len(scaleTable))
	for i := range scaleTable {
		scales[i] = Scale(i)
	}

	return scales
}()

// ID returns the command-line identifier, e.g. "harmonic-minor".
func (s Scale) ID() string {
	return scaleTable[s].id
}

// Name returns the human readable name, e.g. "Harmonic Minor".
func (s Scale) Name() string {
	return scaleTable[s].name
}

// Steps returns the ascending semitone offsets from the root. The returned slice is a copy.
func (s Scale) Steps() []int {
	return append([]int(nil), scaleTable[s].steps...)
}

// NotesFrom resolves the scale against a root note, in step order.
func (s Scale) NotesFrom(root Note) []Note {
	steps := scaleTable[s].steps

	notes := make([]Note, 0, len(steps))
	for _, step := range steps {
		notes = append(notes, root.Transpose(step))
	}

	return notes
}

func (s Scale) String() string {
	return s.ID()
}

// ParseScale resolves a scale identifier.
func ParseScale(id string) (Scale, error) {
	value := strings.ToLower(strings.TrimSpace(id))
	for _, scale := range Scales {
		if scale.ID() == value {
			return scale, nil
		}
	}

	ids := make([]string, 0, len(Scales))
	for _, scale := range Scales {
		ids = append(ids, scale.ID())
	}

	return 0, fmt.Errorf("unknown scale %q (valid: %s)", id, strings.Join(ids, ", "))
}
