package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExerciseKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want ExerciseKind
	}{
		{"1", ExerciseSingleTone},
		{"tone", ExerciseSingleTone},
		{"2", ExerciseFullScale},
		{" Scale ", ExerciseFullScale},
	}
	for _, tc := range testCases {
		got, err := ParseExerciseKind(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseExerciseKind("3")
	assert.ErrorIs(t, err, ErrInvalidExercise)
}

func TestNoteSetDedup(t *testing.T) {
	t.Parallel()

	set := NoteSet{"C major", "D minor", "C major", "E major", "D minor"}
	assert.Equal(t, NoteSet{"C major", "D minor", "E major"}, set.Dedup())
	assert.Empty(t, NoteSet(nil).Dedup())
}

func TestSplitEntry(t *testing.T) {
	t.Parallel()

	root, mode, err := SplitEntry("F♯ minor")
	require.NoError(t, err)
	assert.Equal(t, "F♯", root)
	assert.Equal(t, ModeMinor, mode)

	_, _, err = SplitEntry("F♯")
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = SplitEntry("F lydian")
	assert.ErrorIs(t, err, ErrInvalidMode)

	assert.Equal(t, "B♭ major", Entry(Spelling{LetterB, Flat}, ModeMajor, UnicodeProfile))
}

func TestScaleDegree(t *testing.T) {
	t.Parallel()

	scale := &Scale{
		Root:    Spelling{LetterC, Natural},
		Mode:    ModeMajor,
		Tones:   []Spelling{{LetterC, Natural}, {LetterD, Natural}},
		Primary: []Spelling{{LetterC, Natural}, {LetterD, Natural}},
	}

	got, err := scale.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, Spelling{LetterD, Natural}, got)

	_, err = scale.Degree(0)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	_, err = scale.Degree(5)
	assert.ErrorIs(t, err, ErrInvalidDegree, "beyond the built tones")

	assert.True(t, scale.Diatonic())
	assert.Equal(t, "C major", scale.Name(ASCIIProfile))
}
