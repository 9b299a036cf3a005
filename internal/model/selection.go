package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	// NumFrets is the number of frets on the neck.
	NumFrets = 24
	// FretSpan is the number of consecutive frets shown in a diagram.
	FretSpan = 5
	// MaxStartingFret is the highest fret a diagram may start on; the window
	// then ends on the last fret of the neck.
	MaxStartingFret = NumFrets - FretSpan + 1
)

// Diagram is a rendered fretboard: one line per string, highest string first,
// followed by the fret-number ruler.
type Diagram []string

func (d Diagram) String() string {
	return strings.Join(d, "\n")
}

// Pools restrict what a random selection may choose from. Empty pools mean
// "anything".
type Pools struct {
	Tuning        Tuning
	RootNotes     []Accidental
	Scales        []Scale
	StartingFrets []int
}

// Selection is one concrete practice assignment.
type Selection struct {
	Tuning       Tuning
	Root         Note
	Flat         bool
	Scale        Scale
	StartingFret int
}

// ScaleNotes returns the absolute notes of the selected scale, in step order.
func (s Selection) ScaleNotes() []Note {
	return s.Scale.NotesFrom(s.Root)
}

// Headline is the one-sentence description of the selection.
func (s Selection) Headline() string {
	return fmt.Sprintf("Here's the scale of the day: %s %s starting at fret %d in %s tuning",
		s.Root.Name(s.Flat),
		s.Scale.Name(),
		s.StartingFret,
		s.Tuning.Name(),
	)
}

// NotesLine lists the scale's notes with the selection's spelling.
func (s Selection) NotesLine() string {
	return "The notes in this scale are: " + strings.Join(NoteNames(s.ScaleNotes(), s.Flat), ", ")
}

// DayPlan pairs a calendar day with its selection and rendered diagram.
type DayPlan struct {
	Date      time.Time
	Selection Selection
	Diagram   Diagram
}

// ValidateStartingFret rejects frets that would push the window off the neck.
func ValidateStartingFret(fret int) error {
	if fret < 0 {
		return fmt.Errorf("starting fret %d: number must be >= 0", fret)
	}

	if fret > MaxStartingFret {
		return fmt.Errorf("starting fret %d: number must be <= %d", fret, MaxStartingFret)
	}

	return nil
}

// ParsePools resolves raw identifiers into Pools. An empty tuning means
// StandardE6.
func ParsePools(tuning string, rootNotes, scales []string, startingFrets []int) (Pools, error) {
	pools := Pools{Tuning: StandardE6}

	if tuning != "" {
		parsed, err := ParseTuning(tuning)
		if err != nil {
			return Pools{}, err
		}

		pools.Tuning = parsed
	}

	for _, id := range rootNotes {
		accidental, err := ParseAccidental(id)
		if err != nil {
			return Pools{}, err
		}

		pools.RootNotes = append(pools.RootNotes, accidental)
	}

	for _, id := range scales {
		scale, err := ParseScale(id)
		if err != nil {
			return Pools{}, err
		}

		pools.Scales = append(pools.Scales, scale)
	}

	for _, fret := range startingFrets {
		if err := ValidateStartingFret(fret); err != nil {
			return Pools{}, err
		}

		pools.StartingFrets = append(pools.StartingFrets, fret)
	}

	return pools, nil
}
