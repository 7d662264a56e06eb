package theory

import (
	"strings"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// chromaticEntry is the static description of one pitch class.
type chromaticEntry struct {
	primary    domain.Spelling
	alternates []domain.Spelling
}

func sp(letter domain.Letter, accidental domain.Accidental) domain.Spelling {
	return domain.Spelling{Letter: letter, Accidental: accidental}
}

// chromatic is the circle starting at C. Primary spellings use naturals and
// sharps only; alternates cover every other letter that can reach the pitch
// class, including a few triple accidentals needed by remote keys.
var chromatic = [domain.Semitones]chromaticEntry{
	{sp(domain.LetterC, domain.Natural), []domain.Spelling{
		sp(domain.LetterA, domain.TripleSharp), sp(domain.LetterB, domain.Sharp), sp(domain.LetterD, domain.DoubleFlat),
	}},
	{sp(domain.LetterC, domain.Sharp), []domain.Spelling{
		sp(domain.LetterB, domain.DoubleSharp), sp(domain.LetterD, domain.Flat), sp(domain.LetterE, domain.TripleFlat),
	}},
	{sp(domain.LetterD, domain.Natural), []domain.Spelling{
		sp(domain.LetterC, domain.DoubleSharp), sp(domain.LetterE, domain.DoubleFlat),
	}},
	{sp(domain.LetterD, domain.Sharp), []domain.Spelling{
		sp(domain.LetterC, domain.TripleSharp), sp(domain.LetterE, domain.Flat), sp(domain.LetterF, domain.DoubleFlat),
	}},
	{sp(domain.LetterE, domain.Natural), []domain.Spelling{
		sp(domain.LetterD, domain.DoubleSharp), sp(domain.LetterF, domain.Flat),
	}},
	{sp(domain.LetterF, domain.Natural), []domain.Spelling{
		sp(domain.LetterD, domain.TripleSharp), sp(domain.LetterE, domain.Sharp), sp(domain.LetterG, domain.DoubleFlat),
	}},
	{sp(domain.LetterF, domain.Sharp), []domain.Spelling{
		sp(domain.LetterE, domain.DoubleSharp), sp(domain.LetterG, domain.Flat), sp(domain.LetterA, domain.TripleFlat),
	}},
	{sp(domain.LetterG, domain.Natural), []domain.Spelling{
		sp(domain.LetterF, domain.DoubleSharp), sp(domain.LetterA, domain.DoubleFlat),
	}},
	{sp(domain.LetterG, domain.Sharp), []domain.Spelling{
		sp(domain.LetterF, domain.TripleSharp), sp(domain.LetterA, domain.Flat), sp(domain.LetterB, domain.TripleFlat),
	}},
	{sp(domain.LetterA, domain.Natural), []domain.Spelling{
		sp(domain.LetterG, domain.DoubleSharp), sp(domain.LetterB, domain.DoubleFlat),
	}},
	{sp(domain.LetterA, domain.Sharp), []domain.Spelling{
		sp(domain.LetterG, domain.TripleSharp), sp(domain.LetterB, domain.Flat), sp(domain.LetterC, domain.DoubleFlat),
	}},
	{sp(domain.LetterB, domain.Natural), []domain.Spelling{
		sp(domain.LetterA, domain.DoubleSharp), sp(domain.LetterC, domain.Flat),
	}},
}

// pitchEntry is one pitch class of a built table.
type pitchEntry struct {
	primary    domain.Spelling
	alternates []domain.Spelling
	byLetter   map[domain.Letter]domain.Spelling
	rendered   []string
}

// Table is the chromatic circle rendered with one accidental profile.
// It is built once and only read afterwards, so it is safe for concurrent
// use.
type Table struct {
	profile domain.AccidentalProfile
	entries [domain.Semitones]pitchEntry
}

// NewTable builds the chromatic table for a profile.
func NewTable(profile domain.AccidentalProfile) *Table {
	t := &Table{profile: profile}
	for pc, src := range chromatic {
		e := pitchEntry{
			primary:    src.primary,
			alternates: src.alternates,
			byLetter:   make(map[domain.Letter]domain.Spelling, len(src.alternates)+1),
		}
		all := append([]domain.Spelling{src.primary}, src.alternates...)
		for _, s := range all {
			e.byLetter[s.Letter] = s
			e.rendered = append(e.rendered, s.Render(profile))
		}
		t.entries[pc] = e
	}
	return t
}

// Profile returns the accidental profile the table renders with.
func (t *Table) Profile() domain.AccidentalProfile {
	return t.profile
}

// Primary returns the primary spelling of a pitch class.
func (t *Table) Primary(pc domain.PitchClass) domain.Spelling {
	return t.entries[pc].primary
}

// Spellings returns the primary spelling followed by the alternates that
// are offered for iteration. Compound (triple) accidentals are left out.
func (t *Table) Spellings(pc domain.PitchClass) []domain.Spelling {
	e := t.entries[pc]
	out := []domain.Spelling{e.primary}
	for _, alt := range e.alternates {
		if alt.Accidental.IsCompound() {
			continue
		}
		out = append(out, alt)
	}
	return out
}

// Alternates returns every alternate spelling of a pitch class, compound
// accidentals included.
func (t *Table) Alternates(pc domain.PitchClass) []domain.Spelling {
	return append([]domain.Spelling(nil), t.entries[pc].alternates...)
}

// WithLetter returns the spelling of pc written with letter, if any.
func (t *Table) WithLetter(pc domain.PitchClass, letter domain.Letter) (domain.Spelling, bool) {
	s, ok := t.entries[pc].byLetter[letter]
	return s, ok
}

// Contains reports whether s is one of the table's spellings.
func (t *Table) Contains(s domain.Spelling) bool {
	found, ok := t.WithLetter(s.PitchClass(), s.Letter)
	return ok && found == s
}

// Locate finds the pitch class of the first table spelling that matches a
// whole space-delimited token of text, so "A" never matches inside "A♯".
func (t *Table) Locate(text string) (domain.PitchClass, bool) {
	_, pc, ok := t.lookup(text)
	return pc, ok
}

// Lookup is like Locate but returns the matched spelling.
func (t *Table) Lookup(text string) (domain.Spelling, bool) {
	s, _, ok := t.lookup(text)
	return s, ok
}

func (t *Table) lookup(text string) (domain.Spelling, domain.PitchClass, bool) {
	tokens := make(map[string]struct{})
	for _, token := range strings.Split(text, " ") {
		tokens[token] = struct{}{}
	}

	for pc, e := range t.entries {
		for i, rendered := range e.rendered {
			if _, ok := tokens[rendered]; !ok {
				continue
			}
			if i == 0 {
				return e.primary, domain.PitchClass(pc), true
			}
			return e.alternates[i-1], domain.PitchClass(pc), true
		}
	}
	return domain.Spelling{}, 0, false
}
