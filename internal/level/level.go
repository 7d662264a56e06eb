// Package level defines the practice levels a player picks from and turns
// the player's selection text into a note set.
package level

import (
	"errors"
	"regexp"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// ErrNoLevelSelected is returned when selection text names no known level.
var ErrNoLevelSelected = errors.New("no level selected")

// Level is one selectable group of scales.
type Level struct {
	ID    string
	Name  string
	Notes domain.NoteSet
}

// IsSub reports whether the level is a sub-level such as "3a".
func (l Level) IsSub() bool {
	return len(l.ID) > 1
}

// Catalogue is the ordered list of levels for one accidental profile.
type Catalogue struct {
	levels []Level
	byID   map[string]Level
}

func entries(profile domain.AccidentalProfile, mode domain.Mode, accidental domain.Accidental) domain.NoteSet {
	set := make(domain.NoteSet, 0, len(domain.Letters))
	for _, letter := range domain.Letters {
		root := domain.Spelling{Letter: letter, Accidental: accidental}
		set = append(set, domain.Entry(root, mode, profile))
	}
	return set
}

func concat(sets ...domain.NoteSet) domain.NoteSet {
	var out domain.NoteSet
	for _, set := range sets {
		out = append(out, set...)
	}
	return out
}

// NewCatalogue builds the levels with entries rendered in profile.
func NewCatalogue(profile domain.AccidentalProfile) *Catalogue {
	major := entries(profile, domain.ModeMajor, domain.Natural)
	minor := entries(profile, domain.ModeMinor, domain.Natural)
	majorSharps := entries(profile, domain.ModeMajor, domain.Sharp)
	minorSharps := entries(profile, domain.ModeMinor, domain.Sharp)
	majorFlats := entries(profile, domain.ModeMajor, domain.Flat)
	minorFlats := entries(profile, domain.ModeMinor, domain.Flat)

	levels := []Level{
		{"1", "Major scales", major},
		{"2", "Minor scales", minor},
		{"3", "All sharp accidental scales (" + profile.Sharp + ")", concat(majorSharps, minorSharps)},
		{"3a", "Only major sharp scales (major " + profile.Sharp + ")", majorSharps},
		{"3b", "Only minor sharp scales (minor " + profile.Sharp + ")", minorSharps},
		{"4", "All flat accidental scales (" + profile.Flat + ")", concat(majorFlats, minorFlats)},
		{"4a", "Only major flat scales (major " + profile.Flat + ")", majorFlats},
		{"4b", "Only minor flat scales (minor " + profile.Flat + ")", minorFlats},
		{"5", "Everything", concat(majorFlats, minorFlats, majorSharps, minorSharps, major, minor)},
	}

	c := &Catalogue{levels: levels, byID: make(map[string]Level, len(levels))}
	for _, l := range levels {
		c.byID[l.ID] = l
	}
	return c
}

// Levels returns the levels in menu order.
func (c *Catalogue) Levels() []Level {
	return append([]Level(nil), c.levels...)
}

// Get returns the level with id.
func (c *Catalogue) Get(id string) (Level, bool) {
	l, ok := c.byID[id]
	return l, ok
}

var selectionPattern = regexp.MustCompile(`(\d)([ab]?)`)

// Select reads selection text such as "3a4" or "1 2" and returns the union
// of the chosen note sets without duplicates, plus the levels chosen. A
// digit directly followed by "a" or "b" names the sub-level.
func (c *Catalogue) Select(text string) (domain.NoteSet, []Level, error) {
	var (
		notes  domain.NoteSet
		chosen []Level
		seen   = make(map[string]bool)
	)

	for _, match := range selectionPattern.FindAllStringSubmatch(text, -1) {
		l, ok := c.byID[match[1]+match[2]]
		if !ok {
			l, ok = c.byID[match[1]]
		}
		if !ok || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		chosen = append(chosen, l)
		notes = append(notes, l.Notes...)
	}

	if len(chosen) == 0 {
		return nil, nil, ErrNoLevelSelected
	}
	return notes.Dedup(), chosen, nil
}
