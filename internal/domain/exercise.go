package domain

import (
	"fmt"
	"strings"
)

// ExerciseKind selects the shape of a question and its answer.
type ExerciseKind string

// Exercise kinds.
const (
	// ExerciseSingleTone asks for one degree of a scale.
	ExerciseSingleTone ExerciseKind = "tone"
	// ExerciseFullScale asks for the whole scale, octave included.
	ExerciseFullScale ExerciseKind = "scale"
)

// ParseExerciseKind reads an exercise kind by name or menu number.
func ParseExerciseKind(text string) (ExerciseKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", string(ExerciseSingleTone):
		return ExerciseSingleTone, nil
	case "2", string(ExerciseFullScale):
		return ExerciseFullScale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExercise, text)
	}
}

// Title returns the menu title of the exercise.
func (k ExerciseKind) Title() string {
	switch k {
	case ExerciseSingleTone:
		return "Find Tone"
	case ExerciseFullScale:
		return "Write Out Scales"
	default:
		return string(k)
	}
}

// Verdict is the outcome of grading an answer.
type Verdict string

// Possible verdicts.
const (
	VerdictExact      Verdict = "exact"
	VerdictEnharmonic Verdict = "enharmonic"
	VerdictWrong      Verdict = "wrong"
	// VerdictNoAnswer means nothing was typed; no feedback is given.
	VerdictNoAnswer Verdict = "no_answer"
)

// Question is one drawn exercise.
type Question struct {
	Kind ExerciseKind
	// Degree is the requested tone for single-tone questions.
	Degree   int
	Root     Spelling
	RootText string
	Mode     Mode
}

// Entry returns the note-set entry the question was drawn from.
func (q Question) Entry() string {
	return q.RootText + " " + string(q.Mode)
}

// NoteSet is a player-selected collection of "root mode" entries such as
// "C major". Order carries no meaning.
type NoteSet []string

// Dedup returns the set without repeated entries, keeping first occurrences.
func (ns NoteSet) Dedup() NoteSet {
	seen := make(map[string]struct{}, len(ns))
	out := make(NoteSet, 0, len(ns))
	for _, entry := range ns {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// SplitEntry separates a note-set entry into its root text and mode.
func SplitEntry(entry string) (string, Mode, error) {
	fields := strings.Fields(entry)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("%w: entry %q must be \"<root> <mode>\"", ErrValidation, entry)
	}
	mode, err := ParseMode(fields[1])
	if err != nil {
		return "", "", err
	}
	return fields[0], mode, nil
}

// Entry formats a root and mode as a note-set entry.
func Entry(root Spelling, mode Mode, p AccidentalProfile) string {
	return root.Render(p) + " " + string(mode)
}
