package theory

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// Builder derives diatonic scales from a root spelling.
type Builder struct {
	table  *Table
	logger *slog.Logger
}

// NewBuilder creates a builder reading from table.
func NewBuilder(table *Table, logger *slog.Logger) *Builder {
	return &Builder{
		table:  table,
		logger: orDiscard(logger).With("component", "scale_builder"),
	}
}

// Build returns the eight-tone scale of root in mode.
func (b *Builder) Build(root domain.Spelling, mode domain.Mode) (*domain.Scale, error) {
	return b.walk(root, mode, 0)
}

// Tone returns a single degree of the scale, walking no further than needed.
// Degree 1 is the root itself.
func (b *Builder) Tone(root domain.Spelling, mode domain.Mode, degree int) (domain.Tone, error) {
	if err := domain.ValidateDegree(degree); err != nil {
		return domain.Tone{}, err
	}

	scale, err := b.walk(root, mode, degree)
	if err != nil {
		return domain.Tone{}, err
	}

	count := len(scale.Tones)
	return domain.Tone{
		Degree:   count,
		Spelling: scale.Tones[count-1],
		Primary:  scale.Primary[count-1],
	}, nil
}

// walk applies the mode's formula from root. At each step the spelling
// whose letter follows the previous key letter is chosen; when the pitch
// class has no such spelling its primary spelling is used and the degree
// is recorded as a gap. A limit of 0 builds the whole scale.
func (b *Builder) walk(root domain.Spelling, mode domain.Mode, limit int) (*domain.Scale, error) {
	formula, err := mode.Formula()
	if err != nil {
		return nil, err
	}
	if !b.table.Contains(root) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRoot, root.Render(b.table.Profile()))
	}

	pc := root.PitchClass()
	scale := &domain.Scale{
		Root:    root,
		Mode:    mode,
		Tones:   make([]domain.Spelling, 0, domain.ScaleLength),
		Primary: make([]domain.Spelling, 0, domain.ScaleLength),
	}
	scale.Tones = append(scale.Tones, root)
	scale.Primary = append(scale.Primary, b.table.Primary(pc))

	for _, step := range formula {
		if limit > 0 && len(scale.Tones) >= limit {
			break
		}

		pc = pc.Step(step.Semitones())
		previous := scale.Tones[len(scale.Tones)-1]
		want := previous.Letter.Next()

		next, ok := b.table.WithLetter(pc, want)
		if !ok {
			next = b.table.Primary(pc)
			scale.Gaps = append(scale.Gaps, len(scale.Tones)+1)
			b.logger.Warn("no spelling continues the letter cycle, using primary spelling",
				"error", ErrSpellingGap,
				"root", root.String(),
				"mode", string(mode),
				"degree", len(scale.Tones)+1,
				"wanted_letter", want.String(),
				"used", next.String())
		}

		scale.Tones = append(scale.Tones, next)
		scale.Primary = append(scale.Primary, b.table.Primary(pc))
	}

	return scale, nil
}

// Strict returns an error wrapping ErrSpellingGap when the scale needed the
// primary-spelling fallback for any degree.
func Strict(scale *domain.Scale) error {
	if scale.Diatonic() {
		return nil
	}
	return fmt.Errorf("%w: %s %s at degrees %v",
		ErrSpellingGap, scale.Root.String(), scale.Mode, scale.Gaps)
}
