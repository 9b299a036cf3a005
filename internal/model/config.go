package model

// Path represents a file system path.
type Path string

// Config holds user defaults read from the configuration file. Every field is
// optional; command-line flags take precedence.
type Config struct {
	Tuning         string   `yaml:"tuning,omitempty"`
	RootNotes      []string `yaml:"root_notes,omitempty"`
	Scales         []string `yaml:"scales,omitempty"`
	StartingFrets  []int    `yaml:"starting_frets,omitempty"`
	FullRandomness bool     `yaml:"full_randomness,omitempty"`
}
