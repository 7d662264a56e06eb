package domain

// Semitones is the number of pitch classes in an octave.
const Semitones = 12

// PitchClass is a position on the chromatic circle, 0 (C) through 11 (B).
type PitchClass int

// NewPitchClass folds any semitone count onto the circle.
func NewPitchClass(semitones int) PitchClass {
	pc := semitones % Semitones
	if pc < 0 {
		pc += Semitones
	}
	return PitchClass(pc)
}

// IsValid reports whether pc lies in [0,11].
func (pc PitchClass) IsValid() bool {
	return pc >= 0 && pc < Semitones
}

// Step advances pc by a number of semitones. The next index is computed
// once from the unwrapped sum and re-enters the circle by subtracting 12.
func (pc PitchClass) Step(semitones int) PitchClass {
	next := int(pc) + semitones
	if next >= Semitones {
		next -= Semitones
	}
	return PitchClass(next)
}
