package model

import (
	"fmt"
	"strings"
)

// Tuning identifies a set of open-string pitches.
type Tuning int

// Available Tuning values.
const (
	StandardE6 Tuning = iota
	OpenG6
	OpenE6
	OpenD6
	OpenC6
	OpenA6
	DropD6
	StandardD6
	DropCSharp6
	StandardCSharp6
	DropC6
	StandardC6
	StandardB7
	DropA7
	StandardA7
	AllFourths7
)

type tuningInfo struct {
	id    string
	name  string
	notes []Note
}

// Open notes run from the lowest-pitched string to the highest.
var tuningTable = [...]tuningInfo{
	StandardE6:      {"standard-e6", "Standard E (6 string)", []Note{E, A, D, G, B, E}},
	OpenG6:          {"open-g6", "Open G (6 string)", []Note{D, G, D, G, B, D}},
	OpenE6:          {"open-e6", "Open E (6 string)", []Note{E, B, E, GSharp, B, E}},
	OpenD6:          {"open-d6", "Open D (6 string)", []Note{D, A, D, FSharp, A, D}},
	OpenC6:          {"open-c6", "Open C (6 string)", []Note{C, G, C, G, C, E}},
	OpenA6:          {"open-a6", "Open A (6 string)", []Note{E, A, E, A, CSharp, E}},
	DropD6:          {"drop-d6", "Drop D (6 string)", []Note{D, A, D, G, B, E}},
	StandardD6:      {"standard-d6", "Standard D (6 string)", []Note{D, G, C, F, A, D}},
	DropCSharp6:     {"drop-c-sharp6", "Drop C# (6 string)", []Note{CSharp, GSharp, CSharp, FSharp, ASharp, DSharp}},
	StandardCSharp6: {"standard-c-sharp6", "Standard C# (6 string)", []Note{CSharp, FSharp, CSharp, E, GSharp, CSharp}},
	DropC6:          {"drop-c6", "Drop C (6 string)", []Note{C, G, C, F, A, D}},
	StandardC6:      {"standard-c6", "Standard C (6 string)", []Note{C, F, ASharp, DSharp, G, C}},
	StandardB7:      {"standard-b7", "Standard B (7 string)", []Note{B, E, A, D, G, B, E}},
	DropA7:          {"drop-a7", "Drop A (7 string)", []Note{A, E, A, D, G, B, E}},
	StandardA7:      {"standard-a7", "Standard A (7 string)", []Note{A, D, G, C, F, A, D}},
	AllFourths7:     {"all-fourths7", "All fourths (7 string)", []Note{B, E, A, D, G, C, F}},
}

// Tunings lists every known tuning in declaration order.
var Tunings = func() []Tuning {
	tunings := make([]Tuning, len(tuningTable))
	for i := range tuningTable {
		tunings[i] = Tuning(i)
	}

	return tunings
}()

// ID returns the command-line identifier, e.g. "drop-d6".
func (t Tuning) ID() string {
	return tuningTable[t].id
}

// Name returns the human readable name, e.g. "Drop D (6 string)".
func (t Tuning) Name() string {
	return tuningTable[t].name
}

// Notes returns the open-string notes ordered from the lowest string to the highest.
// The returned slice is a copy.
func (t Tuning) Notes() []Note {
	return append([]Note(nil), tuningTable[t].notes...)
}

func (t Tuning) String() string {
	return t.ID()
}

// ParseTuning resolves a tuning identifier.
func ParseTuning(id string) (Tuning, error) {
	value := strings.ToLower(strings.TrimSpace(id))
	for _, tuning := range Tunings {
		if tuning.ID() == value {
			return tuning, nil
		}
	}

	ids := make([]string, 0, len(Tunings))
	for _, tuning := range Tunings {
		ids = append(ids, tuning.ID())
	}

	return 0, fmt.Errorf("unknown tuning %q (valid: %s)", id, strings.Join(ids, ", "))
}
