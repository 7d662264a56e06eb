package session

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// labelWidth right-aligns every label of the review block to the widest one.
var labelWidth = utf8.RuneCountInString("Relative Minor :")

const (
	separator  = "-----------------------------------"
	toneWidth  = 4
	clearLines = 40
)

// Ordinal returns n with its English suffix, e.g. "3rd".
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// QuestionText is the prompt shown for q.
func QuestionText(q domain.Question) string {
	if q.Kind == domain.ExerciseFullScale {
		return fmt.Sprintf("Write out %s scale:", q.Entry())
	}
	return fmt.Sprintf("What is the %s tone of %s?", Ordinal(q.Degree), q.Entry())
}

// Align pads every tone to a fixed column width so rows line up.
func Align(tones []string) []string {
	out := make([]string, len(tones))
	for i, tone := range tones {
		out[i] = fmt.Sprintf("%-*s", toneWidth, tone)
	}
	return out
}

// Ruler numbers the columns of aligned tones starting at 1.
func Ruler(aligned []string) string {
	var b strings.Builder
	for i, tone := range aligned {
		fmt.Fprintf(&b, "%-*d", utf8.RuneCountInString(tone), i+1)
	}
	return b.String()
}

func label(text string) string {
	return fmt.Sprintf("%*s", labelWidth, text)
}

// VerdictLine reports a verdict for answer. expected is shown when the
// answer was right by pitch but spelled differently. It returns "" for
// VerdictNoAnswer.
func VerdictLine(verdict domain.Verdict, answer, expected string) string {
	switch verdict {
	case domain.VerdictExact:
		return fmt.Sprintf("%s %q -- %s", label("Your answer :"), answer, colour(Green, "correct"))
	case domain.VerdictEnharmonic:
		return fmt.Sprintf("%s %q -- %s, but not notation-wise (%s)",
			label("Your answer :"), answer, colour(Green, "Enharmonically correct"), expected)
	case domain.VerdictWrong:
		return fmt.Sprintf("%s %q -- %s", label("Your answer :"), answer, colour(Red, "nope"))
	default:
		return ""
	}
}

// relativeLabel names the relative scale line for a scale in mode.
func relativeLabel(mode domain.Mode) string {
	if mode == domain.ModeMajor {
		return "Relative Minor :"
	}
	return "Relative Major :"
}
