package theory

import (
	"fmt"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// Question degrees are drawn from [MinAskDegree, MaxAskDegree]; degrees 1
// and 8 are the root itself.
const (
	MinAskDegree = 2
	MaxAskDegree = 7
)

// Source supplies uniform random integers in [0,n).
type Source interface {
	IntN(n int) int
}

// Resolver locates roots, derives relative keys and draws questions.
type Resolver struct {
	table  *Table
	source Source
}

// NewResolver creates a resolver drawing from source.
func NewResolver(table *Table, source Source) *Resolver {
	return &Resolver{table: table, source: source}
}

// RelativeKey returns the root of the relative key: degree 6 of a major
// scale, degree 3 of a minor scale.
func (r *Resolver) RelativeKey(scale *domain.Scale) (domain.Spelling, error) {
	switch scale.Mode {
	case domain.ModeMajor:
		return scale.Degree(6)
	case domain.ModeMinor:
		return scale.Degree(3)
	default:
		return domain.Spelling{}, fmt.Errorf("%w: %q", domain.ErrInvalidMode, string(scale.Mode))
	}
}

// ResolveRoot turns root text into a table spelling. Text rendered in the
// table's profile is matched by whole token; anything else is parsed
// leniently and must still be a spelling the table knows.
func (r *Resolver) ResolveRoot(text string) (domain.Spelling, error) {
	if s, ok := r.table.Lookup(text); ok {
		return s, nil
	}

	s, err := domain.ParseSpelling(text)
	if err != nil || !r.table.Contains(s) {
		return domain.Spelling{}, fmt.Errorf("%w: %q", domain.ErrInvalidRoot, text)
	}
	return s, nil
}

// ResolveEntry reads a "root mode" note-set entry.
func (r *Resolver) ResolveEntry(entry string) (domain.Spelling, domain.Mode, error) {
	rootText, mode, err := domain.SplitEntry(entry)
	if err != nil {
		return domain.Spelling{}, "", err
	}
	root, err := r.ResolveRoot(rootText)
	if err != nil {
		return domain.Spelling{}, "", err
	}
	return root, mode, nil
}

// Ask draws a degree in [2,7] and an entry of set, both uniformly.
func (r *Resolver) Ask(kind domain.ExerciseKind, set domain.NoteSet) (domain.Question, error) {
	if kind != domain.ExerciseSingleTone && kind != domain.ExerciseFullScale {
		return domain.Question{}, fmt.Errorf("%w: %q", domain.ErrInvalidExercise, string(kind))
	}
	if len(set) == 0 {
		return domain.Question{}, domain.ErrEmptyNoteSet
	}

	degree := MinAskDegree + r.source.IntN(MaxAskDegree-MinAskDegree+1)
	entry := set[r.source.IntN(len(set))]

	root, mode, err := r.ResolveEntry(entry)
	if err != nil {
		return domain.Question{}, fmt.Errorf("failed to resolve note set entry: %w", err)
	}

	return domain.Question{
		Kind:     kind,
		Degree:   degree,
		Root:     root,
		RootText: root.Render(r.table.Profile()),
		Mode:     mode,
	}, nil
}
