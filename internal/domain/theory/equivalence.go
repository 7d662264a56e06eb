package theory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// Simplify reduces a spelling written in any profile to its ASCII form:
// the letter followed by "", "#", "b", "##" or "bb" (and "###"/"bbb" for
// triple accidentals). Input that is not a spelling is returned case-folded.
// Simplify is idempotent.
func Simplify(text string) string {
	folded := cases.Fold().String(norm.NFC.String(strings.TrimSpace(text)))
	s, err := domain.ParseSpelling(folded)
	if err != nil {
		return folded
	}
	return canonical(s)
}

func canonical(s domain.Spelling) string {
	return s.Render(domain.ASCIIProfile)
}

// Checker grades answers against built scales.
type Checker struct {
	table *Table
}

// NewChecker creates a checker that consults table for enharmonic spellings.
func NewChecker(table *Table) *Checker {
	return &Checker{table: table}
}

// Grade dispatches on the kind of the question.
func (c *Checker) Grade(q domain.Question, scale *domain.Scale, answer string) (domain.Verdict, error) {
	switch q.Kind {
	case domain.ExerciseSingleTone:
		return c.GradeTone(scale, q.Degree, answer)
	case domain.ExerciseFullScale:
		return c.GradeScale(scale, strings.Fields(answer)), nil
	default:
		return "", domain.ErrInvalidExercise
	}
}

// GradeTone grades a single-degree answer. Matching the key spelling is
// exact; matching any other spelling of the same pitch class is
// enharmonic only.
func (c *Checker) GradeTone(scale *domain.Scale, degree int, answer string) (domain.Verdict, error) {
	tone, err := scale.Tone(degree)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(answer) == "" {
		return domain.VerdictNoAnswer, nil
	}

	given := Simplify(answer)
	if given == canonical(tone.Spelling) {
		return domain.VerdictExact, nil
	}

	if given == canonical(tone.Primary) {
		return domain.VerdictEnharmonic, nil
	}
	for _, alt := range c.table.Alternates(tone.Primary.PitchClass()) {
		if given == canonical(alt) {
			return domain.VerdictEnharmonic, nil
		}
	}

	return domain.VerdictWrong, nil
}

// GradeScale grades a whole-scale answer. Every degree must match the key
// spelling, in order; there is no partial or enharmonic credit.
func (c *Checker) GradeScale(scale *domain.Scale, answer []string) domain.Verdict {
	if len(answer) == 0 {
		return domain.VerdictNoAnswer
	}
	if len(answer) != len(scale.Tones) {
		return domain.VerdictWrong
	}

	for i, token := range answer {
		if Simplify(token) != canonical(scale.Tones[i]) {
			return domain.VerdictWrong
		}
	}
	return domain.VerdictExact
}
