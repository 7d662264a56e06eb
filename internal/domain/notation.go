package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Letter is one of the seven natural note names.
type Letter byte

// The natural letters in the order a diatonic scale walks through them.
const (
	LetterC Letter = 'C'
	LetterD Letter = 'D'
	LetterE Letter = 'E'
	LetterF Letter = 'F'
	LetterG Letter = 'G'
	LetterA Letter = 'A'
	LetterB Letter = 'B'
)

// Letters is the cyclic letter alphabet starting at C.
var Letters = [7]Letter{LetterC, LetterD, LetterE, LetterF, LetterG, LetterA, LetterB}

// letterSemitones maps each natural letter to its pitch class.
var letterSemitones = map[Letter]int{
	LetterC: 0,
	LetterD: 2,
	LetterE: 4,
	LetterF: 5,
	LetterG: 7,
	LetterA: 9,
	LetterB: 11,
}

// IsValid reports whether l is one of A..G.
func (l Letter) IsValid() bool {
	_, ok := letterSemitones[l]
	return ok
}

// Next returns the letter that follows l in the cycle C-D-E-F-G-A-B-C.
func (l Letter) Next() Letter {
	for i, candidate := range Letters {
		if candidate == l {
			return Letters[(i+1)%len(Letters)]
		}
	}
	return l
}

// String returns the letter as text.
func (l Letter) String() string {
	return string(rune(l))
}

// Accidental is the signed semitone offset applied to a letter.
// Positive values are sharps, negative values are flats.
type Accidental int

// Accidentals used by the pitch table.
const (
	TripleFlat  Accidental = -3
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
	TripleSharp Accidental = 3
)

// IsCompound reports whether the accidental needs a single and a double
// glyph written together. Such spellings are never offered for iteration.
func (a Accidental) IsCompound() bool {
	return a == TripleSharp || a == TripleFlat
}

// AccidentalProfile is the set of glyphs used to render accidentals.
// A profile is selected once at startup and never changes afterwards.
type AccidentalProfile struct {
	Name        string
	Natural     string
	Sharp       string
	Flat        string
	DoubleSharp string
	DoubleFlat  string
}

// Available accidental profiles.
var (
	// UnicodeProfile renders accidentals with musical symbols.
	UnicodeProfile = AccidentalProfile{
		Name:        "unicode",
		Natural:     "♮",
		Sharp:       "♯",
		Flat:        "♭",
		DoubleSharp: "\U0001D12A",
		DoubleFlat:  "\U0001D12B",
	}

	// ASCIIProfile renders accidentals with plain keyboard characters.
	ASCIIProfile = AccidentalProfile{
		Name:        "ascii",
		Natural:     "",
		Sharp:       "#",
		Flat:        "b",
		DoubleSharp: "##",
		DoubleFlat:  "bb",
	}
)

// ProfileByName returns the profile registered under name.
func ProfileByName(name string) (AccidentalProfile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case UnicodeProfile.Name:
		return UnicodeProfile, nil
	case ASCIIProfile.Name:
		return ASCIIProfile, nil
	default:
		return AccidentalProfile{}, fmt.Errorf("%w: unknown notation %q", ErrValidation, name)
	}
}

// Render writes an accidental with the glyphs of the profile.
func (p AccidentalProfile) Render(a Accidental) string {
	switch a {
	case TripleFlat:
		return p.Flat + p.DoubleFlat
	case DoubleFlat:
		return p.DoubleFlat
	case Flat:
		return p.Flat
	case Sharp:
		return p.Sharp
	case DoubleSharp:
		return p.DoubleSharp
	case TripleSharp:
		return p.Sharp + p.DoubleSharp
	default:
		return ""
	}
}

// glyph is one recognisable accidental marker and its offset.
type glyph struct {
	text   string
	offset Accidental
}

// glyphs lists every marker of both profiles, double forms first so that a
// double glyph is never read as two single ones.
var glyphs = []glyph{
	{UnicodeProfile.DoubleSharp, DoubleSharp},
	{UnicodeProfile.DoubleFlat, DoubleFlat},
	{ASCIIProfile.DoubleSharp, DoubleSharp},
	{ASCIIProfile.DoubleFlat, DoubleFlat},
	{UnicodeProfile.Sharp, Sharp},
	{UnicodeProfile.Flat, Flat},
	{ASCIIProfile.Sharp, Sharp},
	{ASCIIProfile.Flat, Flat},
	{UnicodeProfile.Natural, Natural},
}

// Spelling is a letter plus an accidental, the written name of a pitch.
type Spelling struct {
	Letter     Letter
	Accidental Accidental
}

// PitchClass returns the equal-tempered pitch class the spelling sounds.
func (s Spelling) PitchClass() PitchClass {
	return NewPitchClass(letterSemitones[s.Letter] + int(s.Accidental))
}

// Render writes the spelling with the glyphs of the profile.
func (s Spelling) Render(p AccidentalProfile) string {
	return s.Letter.String() + p.Render(s.Accidental)
}

// String renders the spelling in ASCII.
func (s Spelling) String() string {
	return s.Render(ASCIIProfile)
}

// ParseSpelling reads a spelling written in either profile. The letter is
// case-insensitive; accidentals may be any mix of the known glyphs.
func ParseSpelling(text string) (Spelling, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Spelling{}, fmt.Errorf("%w: empty spelling", ErrInvalidSpelling)
	}

	first, size := utf8.DecodeRuneInString(text)
	letter := Letter(strings.ToUpper(string(first))[0])
	if first >= utf8.RuneSelf || !letter.IsValid() {
		return Spelling{}, fmt.Errorf("%w: %q has no note letter", ErrInvalidSpelling, text)
	}

	var offset Accidental
	rest := text[size:]
	for rest != "" {
		matched := false
		for _, g := range glyphs {
			if g.text != "" && strings.HasPrefix(rest, g.text) {
				offset += g.offset
				rest = rest[len(g.text):]
				matched = true
				break
			}
		}
		if !matched {
			return Spelling{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSpelling, rest, text)
		}
	}

	if offset < TripleFlat || offset > TripleSharp {
		return Spelling{}, fmt.Errorf("%w: too many accidentals in %q", ErrInvalidSpelling, text)
	}

	return Spelling{Letter: letter, Accidental: offset}, nil
}
