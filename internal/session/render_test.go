package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/scry-scales/internal/domain"
	"github.com/phrazzld/scry-scales/internal/events"
)

func TestOrdinal(t *testing.T) {
	t.Parallel()

	testCases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 7: "7th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 103: "103rd",
	}
	for n, want := range testCases {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestQuestionText(t *testing.T) {
	t.Parallel()

	q := domain.Question{
		Kind:     domain.ExerciseSingleTone,
		Degree:   2,
		Root:     domain.Spelling{Letter: domain.LetterE, Accidental: domain.Flat},
		RootText: "E♭",
		Mode:     domain.ModeMinor,
	}
	assert.Equal(t, "What is the 2nd tone of E♭ minor?", QuestionText(q))

	q.Kind = domain.ExerciseFullScale
	assert.Equal(t, "Write out E♭ minor scale:", QuestionText(q))
}

func TestAlignAndRuler(t *testing.T) {
	t.Parallel()

	aligned := Align([]string{"F\U0001D12A", "G♯", "A", "B#"})
	assert.Equal(t, []string{"F\U0001D12A  ", "G♯  ", "A   ", "B#  "}, aligned)
	assert.Equal(t, "1   2   3   4   ", Ruler(aligned))
}

func TestVerdictLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `   Your answer : "F#" -- `+Green+"correct"+Reset,
		VerdictLine(domain.VerdictExact, "F#", "F♯"))
	assert.Equal(t, `   Your answer : "x" -- `+Red+"nope"+Reset,
		VerdictLine(domain.VerdictWrong, "x", "F♯"))
	assert.Contains(t, VerdictLine(domain.VerdictEnharmonic, "Gb", "F♯"), "but not notation-wise (F♯)")
	assert.Empty(t, VerdictLine(domain.VerdictNoAnswer, "", "F♯"))
}

func TestScoreboard(t *testing.T) {
	t.Parallel()
	board := NewScoreboard()
	q := domain.Question{Kind: domain.ExerciseSingleTone, Degree: 4, RootText: "A", Mode: domain.ModeMinor}

	for _, v := range []domain.Verdict{
		domain.VerdictExact, domain.VerdictExact, domain.VerdictWrong,
		domain.VerdictEnharmonic, domain.VerdictNoAnswer,
	} {
		assert.NoError(t, board.HandleEvent(context.Background(), events.NewGradedEvent(q, "D", v)))
	}

	assert.Equal(t, 2, board.Count(domain.VerdictExact))
	assert.Equal(t, 4, board.Answered())
	assert.Equal(t, "Score: 2 correct, 1 enharmonically correct, 1 nope (4 answered, 1 skipped)", board.Summary())
}
