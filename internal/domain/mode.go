package domain

import (
	"fmt"
	"strings"
)

// Mode is the kind of diatonic scale.
type Mode string

// Supported modes.
const (
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

// Modes lists the supported modes in display order.
var Modes = []Mode{ModeMajor, ModeMinor}

// ParseMode reads a mode name, ignoring case and surrounding space.
func ParseMode(text string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(text)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, text)
	}
	return m, nil
}

// IsValid reports whether m is major or minor.
func (m Mode) IsValid() bool {
	return m == ModeMajor || m == ModeMinor
}

// Relative returns the mode of the relative key.
func (m Mode) Relative() Mode {
	if m == ModeMajor {
		return ModeMinor
	}
	return ModeMajor
}

// Formula returns the interval formula of the mode.
func (m Mode) Formula() (Formula, error) {
	switch m {
	case ModeMajor:
		return MajorFormula, nil
	case ModeMinor:
		return NaturalMinorFormula, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
	}
}

// Step is one interval of a scale formula.
type Step byte

// Interval steps.
const (
	Whole Step = 'W'
	Half  Step = 'H'
)

// Semitones returns the size of the step.
func (s Step) Semitones() int {
	if s == Whole {
		return 2
	}
	return 1
}

// Formula is the ordered sequence of seven steps from root to octave.
type Formula []Step

// Scale formulas.
var (
	MajorFormula        = Formula{Whole, Whole, Half, Whole, Whole, Whole, Half}
	NaturalMinorFormula = Formula{Whole, Half, Whole, Whole, Half, Whole, Whole}
)

// Semitones returns the total span of the formula.
func (f Formula) Semitones() int {
	total := 0
	for _, step := range f {
		total += step.Semitones()
	}
	return total
}

// String renders the formula as W/H letters.
func (f Formula) String() string {
	var b strings.Builder
	for _, step := range f {
		b.WriteByte(byte(step))
	}
	return b.String()
}
