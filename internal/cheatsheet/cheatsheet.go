// Package cheatsheet prints every scale the trainer knows, one block per
// pitch class, for both modes.
package cheatsheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/scry-scales/internal/domain"
	"github.com/phrazzld/scry-scales/internal/domain/theory"
	"github.com/phrazzld/scry-scales/internal/session"
)

// headerRatio positions the "( root )" header roughly over the middle of
// the primary line.
const headerRatio = 2.25

// Write renders the cheatsheet of engine to w. Each pitch class shows a
// numbered ruler, the scale of its primary spelling and the scales of its
// alternates; triple-accidental roots are skipped.
func Write(w io.Writer, engine *theory.Engine) error {
	buf := bufio.NewWriter(w)
	profile := engine.Profile()
	table := engine.Table()

	for _, mode := range domain.Modes {
		title := session.YellowWithUnderline + strings.ToUpper(string(mode)) + session.Reset
		fmt.Fprintf(buf, "\n\n%42s\n", title)

		for pc := domain.PitchClass(0); pc < domain.Semitones; pc++ {
			spellings := table.Spellings(pc)
			for i, root := range spellings {
				scale, err := engine.Build(root, mode)
				if err != nil {
					return fmt.Errorf("failed to build %s %s: %w", root, mode, err)
				}
				aligned := session.Align(scale.Render(profile))
				line := scaleLine(aligned)
				if i == 0 {
					writeHeader(buf, aligned, line)
				}
				fmt.Fprintf(buf, "%s\n", line)
			}
		}
		fmt.Fprint(buf, "\n")
	}

	return buf.Flush()
}

func scaleLine(aligned []string) string {
	return fmt.Sprintf("  %-4s|  %s", aligned[0], strings.Join(aligned, "-  "))
}

func writeHeader(w io.Writer, aligned []string, line string) {
	width := int(float64(utf8.RuneCountInString(line)) / headerRatio)
	fmt.Fprintf(w, "\n%*s %s )\n", width, "(", strings.TrimSpace(aligned[0]))

	ruler := make([]string, len(aligned))
	for i, tone := range aligned {
		ruler[i] = fmt.Sprintf("%*s", utf8.RuneCountInString(tone), fmt.Sprintf("(%d)", i+1))
	}
	indent := utf8.RuneCountInString(fmt.Sprintf("%6s", aligned[0])) - 1
	fmt.Fprintf(w, "  %*s%s\n", indent, "|", strings.Join(ruler, "   "))
}
