// Package adapter provides the I/O boundaries of daily-scale: random sources
// and the configuration file.
package adapter

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// daysFromCEAtUnixEpoch is the proleptic Gregorian day number of 1970-01-01,
// counting 0001-01-01 as day 1.
const daysFromCEAtUnixEpoch = 719163

const secondsPerDay = 24 * 60 * 60

// RandomSource picks uniformly from a finite pool.
type RandomSource interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// SourceProvider hands out the random sources used for selections.
type SourceProvider interface {
	// Seeded returns a source that yields the same sequence for every instant of the same UTC day.
	Seeded(day time.Time) RandomSource
	// Entropy returns a source seeded from the operating system.
	Entropy() RandomSource
}

type sourceProvider struct{}

// NewSourceProvider constructs the default SourceProvider.
func NewSourceProvider() SourceProvider {
	return &sourceProvider{}
}

func (p *sourceProvider) Seeded(day time.Time) RandomSource {
	seed := DaysFromCE(day)
	zap.L().Debug("seeding random source from date",
		zap.String("date", day.UTC().Format(time.DateOnly)),
		zap.Int64("seed", seed),
	)

	return NewSeededSource(uint64(seed))
}

func (p *sourceProvider) Entropy() RandomSource {
	zap.L().Debug("using entropy random source")

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}

// DaysFromCE returns the day number of t's UTC date, counting 0001-01-01 as day 1.
func DaysFromCE(t time.Time) int64 {
	unix := t.UTC().Unix()

	days := unix / secondsPerDay
	if unix%secondsPerDay < 0 {
		days--
	}

	return days + daysFromCEAtUnixEpoch
}
