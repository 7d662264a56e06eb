package domain

import "fmt"

// ScaleLength is the number of tones in a built scale, octave included.
const ScaleLength = 8

// Scale is a built diatonic scale. Tones holds the spellings that belong to
// the key and are used for grading; Primary holds the primary spelling of
// each tone's pitch class. Both hold eight entries, degree 8 being the
// octave of the root.
type Scale struct {
	Root    Spelling
	Mode    Mode
	Tones   []Spelling
	Primary []Spelling
	// Gaps lists the degrees where no spelling continued the letter cycle
	// and the primary spelling was used instead.
	Gaps []int
}

// Tone is a single degree of a scale.
type Tone struct {
	Degree   int
	Spelling Spelling
	Primary  Spelling
}

// ValidateDegree checks that degree addresses a tone of a scale.
func ValidateDegree(degree int) error {
	if degree < 1 || degree > ScaleLength {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidDegree, degree, ScaleLength)
	}
	return nil
}

// Degree returns the key spelling at a 1-based degree.
func (s *Scale) Degree(degree int) (Spelling, error) {
	if err := ValidateDegree(degree); err != nil {
		return Spelling{}, err
	}
	if degree > len(s.Tones) {
		return Spelling{}, fmt.Errorf("%w: scale has %d tones", ErrInvalidDegree, len(s.Tones))
	}
	return s.Tones[degree-1], nil
}

// Tone returns both spellings at a 1-based degree.
func (s *Scale) Tone(degree int) (Tone, error) {
	spelling, err := s.Degree(degree)
	if err != nil {
		return Tone{}, err
	}
	return Tone{Degree: degree, Spelling: spelling, Primary: s.Primary[degree-1]}, nil
}

// Diatonic reports whether every degree continued the letter cycle.
func (s *Scale) Diatonic() bool {
	return len(s.Gaps) == 0
}

// Render writes the key spellings with the glyphs of the profile.
func (s *Scale) Render(p AccidentalProfile) []string {
	out := make([]string, len(s.Tones))
	for i, tone := range s.Tones {
		out[i] = tone.Render(p)
	}
	return out
}

// Name returns the scale name, e.g. "F♯ minor".
func (s *Scale) Name(p AccidentalProfile) string {
	return s.Root.Render(p) + " " + string(s.Mode)
}
