package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpelling(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in         string
		letter     Letter
		accidental Accidental
	}{
		{"C", LetterC, Natural},
		{"c", LetterC, Natural},
		{"C♮", LetterC, Natural},
		{"F#", LetterF, Sharp},
		{"F♯", LetterF, Sharp},
		{"Bb", LetterB, Flat},
		{"bb", LetterB, Flat},
		{"B♭", LetterB, Flat},
		{"C##", LetterC, DoubleSharp},
		{"C\U0001D12A", LetterC, DoubleSharp},
		{"Ebb", LetterE, DoubleFlat},
		{"E\U0001D12B", LetterE, DoubleFlat},
		{"A♯\U0001D12A", LetterA, TripleSharp},
		{"A###", LetterA, TripleSharp},
		{"B♭\U0001D12B", LetterB, TripleFlat},
		{" G ", LetterG, Natural},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSpelling(tc.in)
			require.NoError(t, err)
			assert.Equal(t, Spelling{Letter: tc.letter, Accidental: tc.accidental}, got)
		})
	}
}

func TestParseSpellingErrors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "H", "#", "Cx", "C#4", "É", "C####", "♯C"} {
		_, err := ParseSpelling(in)
		assert.ErrorIs(t, err, ErrInvalidSpelling, "input %q", in)
	}
}

func TestSpellingRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		s       Spelling
		unicode string
		ascii   string
	}{
		{Spelling{LetterC, Natural}, "C", "C"},
		{Spelling{LetterF, Sharp}, "F♯", "F#"},
		{Spelling{LetterB, Flat}, "B♭", "Bb"},
		{Spelling{LetterC, DoubleSharp}, "C\U0001D12A", "C##"},
		{Spelling{LetterE, DoubleFlat}, "E\U0001D12B", "Ebb"},
		{Spelling{LetterA, TripleSharp}, "A♯\U0001D12A", "A###"},
		{Spelling{LetterB, TripleFlat}, "B♭\U0001D12B", "Bbbb"},
	}

	for _, tc := range testCases {
		t.Run(tc.ascii, func(t *testing.T) {
			assert.Equal(t, tc.unicode, tc.s.Render(UnicodeProfile))
			assert.Equal(t, tc.ascii, tc.s.Render(ASCIIProfile))
			assert.Equal(t, tc.ascii, tc.s.String())

			for _, profile := range []AccidentalProfile{UnicodeProfile, ASCIIProfile} {
				back, err := ParseSpelling(tc.s.Render(profile))
				require.NoError(t, err)
				assert.Equal(t, tc.s, back)
			}
		})
	}
}

func TestSpellingPitchClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PitchClass(0), Spelling{LetterB, Sharp}.PitchClass())
	assert.Equal(t, PitchClass(11), Spelling{LetterC, Flat}.PitchClass())
	assert.Equal(t, PitchClass(10), Spelling{LetterC, DoubleFlat}.PitchClass())
	assert.Equal(t, PitchClass(0), Spelling{LetterA, TripleSharp}.PitchClass())
	assert.Equal(t, PitchClass(6), Spelling{LetterF, Sharp}.PitchClass())
}

func TestLetterNext(t *testing.T) {
	t.Parallel()

	letter := LetterC
	var walked []Letter
	for i := 0; i < 8; i++ {
		walked = append(walked, letter)
		letter = letter.Next()
	}
	assert.Equal(t, []Letter{LetterC, LetterD, LetterE, LetterF, LetterG, LetterA, LetterB, LetterC}, walked)
	assert.False(t, Letter('H').IsValid())
}

func TestProfileByName(t *testing.T) {
	t.Parallel()

	p, err := ProfileByName("unicode")
	require.NoError(t, err)
	assert.Equal(t, UnicodeProfile, p)

	p, err = ProfileByName(" ASCII ")
	require.NoError(t, err)
	assert.Equal(t, ASCIIProfile, p)

	_, err = ProfileByName("braille")
	assert.ErrorIs(t, err, ErrValidation)
}
