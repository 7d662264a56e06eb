package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-scales/internal/domain"
	"github.com/phrazzld/scry-scales/internal/domain/theory"
	"github.com/phrazzld/scry-scales/internal/events"
	"github.com/phrazzld/scry-scales/internal/level"
	"github.com/phrazzld/scry-scales/internal/platform/logger"
)

// cycleSource replays values, reduced modulo n.
type cycleSource struct {
	values []int
	next   int
}

func (c *cycleSource) IntN(n int) int {
	v := c.values[c.next%len(c.values)]
	c.next++
	return v % n
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type harness struct {
	session *Session
	out     *bytes.Buffer
	board   *Scoreboard
}

// newHarness wires a session whose questions are always degree 3 of the
// second entry of the selection.
func newHarness(t *testing.T, input string, opts ...Option) *harness {
	t.Helper()

	engine, err := theory.NewEngine(domain.UnicodeProfile,
		theory.WithSource(&cycleSource{values: []int{1, 1}}))
	require.NoError(t, err)

	board := NewScoreboard()
	emitter := events.NewInMemoryEventEmitter(discardLogger())
	emitter.RegisterHandler(board)

	out := &bytes.Buffer{}
	opts = append([]Option{WithScoreboard(board), WithLogger(discardLogger())}, opts...)
	s := New(engine, level.NewCatalogue(domain.UnicodeProfile), emitter,
		strings.NewReader(input), out, opts...)

	return &harness{session: s, out: out, board: board}
}

func TestRunSingleToneExact(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "F#\n\nq\n",
		WithExercise(domain.ExerciseSingleTone), WithLevels("1"))

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Question: What is the 3rd tone of D major?")
	assert.Contains(t, out, "Your answer (optional): ")
	assert.Contains(t, out, "Answer : F♯")
	assert.Contains(t, out, `"F#" -- `+Green+"correct"+Reset)
	assert.Contains(t, out, "| 1   2   3   4   5   6   7   8   ")
	assert.Contains(t, out, "Scale : D   E   F♯  G   A   B   C♯  D   ")
	assert.Contains(t, out, "Relative Minor : B   C♯  D   E   F♯  G   A   B   ")
	assert.Contains(t, out, `(Press "enter" to continue or type "exit" to quit)`)

	assert.Equal(t, 1, h.board.Count(domain.VerdictExact))
	assert.Equal(t, 1, h.board.Answered())
	assert.Contains(t, out, "Score: 1 correct, 0 enharmonically correct, 0 nope (1 answered, 0 skipped)")
}

func TestRunSingleToneEnharmonic(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "Gb\nexit\n",
		WithExercise(domain.ExerciseSingleTone), WithLevels("1"))

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, `"Gb" -- `+Green+"Enharmonically correct"+Reset+", but not notation-wise (F♯)")
	assert.Equal(t, 1, h.board.Count(domain.VerdictEnharmonic))
}

func TestRunBlankAnswerGivesNoVerdict(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "\n\nquit\n",
		WithExercise(domain.ExerciseSingleTone), WithLevels("1"))

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.NotContains(t, out, "Your answer :")
	assert.Contains(t, out, "Answer : F♯")
	assert.Equal(t, 1, h.board.Count(domain.VerdictNoAnswer))
	assert.Zero(t, h.board.Answered())
}

func TestRunMenusAndFullScale(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		"7",                 // invalid exercise
		"2",                 // write out scales
		"9",                 // invalid level
		"1",                 // major scales
		"C D E F G A B C",   // wrong
		"",                  // continue
		"d e f# g a b c# d", // exact, lower case
		"exit",
	}, "\n") + "\n"
	h := newHarness(t, input)

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "1 - Find Tone\n2 - Write Out Scales")
	assert.Contains(t, out, "* Please enter a valid option")
	assert.Contains(t, out, "Choose the difficulty:")
	assert.Contains(t, out, "\n 1 - Major scales")
	assert.Contains(t, out, "\n   3a - Only major sharp scales (major ♯)")
	assert.Contains(t, out, "Invalid options specified.")
	assert.Contains(t, out, "* Major scales")
	assert.Contains(t, out, "Write out D major scale:")
	assert.Contains(t, out, "Answer : D E F♯ G A B C♯ D")
	assert.Contains(t, out, `"C D E F G A B C" -- `+Red+"nope"+Reset)
	assert.Contains(t, out, `"d e f# g a b c# d" -- `+Green+"correct"+Reset)

	assert.Equal(t, 1, h.board.Count(domain.VerdictWrong))
	assert.Equal(t, 1, h.board.Count(domain.VerdictExact))
}

func TestRunExitWordInsideScaleAnswer(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "D E q\n",
		WithExercise(domain.ExerciseFullScale), WithLevels("1"))

	require.NoError(t, h.session.Run(context.Background()))
	assert.Zero(t, h.board.Answered())
	assert.NotContains(t, h.out.String(), "Answer :")
}

func TestRunEndOfInput(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "")

	require.NoError(t, h.session.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Exercise: ")
	assert.Contains(t, h.out.String(), "Score: 0 correct")
}

func TestRunPreselectedLevelsInvalid(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "", WithExercise(domain.ExerciseSingleTone), WithLevels("9"))

	err := h.session.Run(context.Background())
	assert.ErrorIs(t, err, level.ErrNoLevelSelected)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()
	h := newHarness(t, "F#\n\n", WithExercise(domain.ExerciseSingleTone), WithLevels("1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.session.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunKeepsGoingWhenHandlerFails(t *testing.T) {
	t.Parallel()

	engine, err := theory.NewEngine(domain.ASCIIProfile,
		theory.WithSource(&cycleSource{values: []int{1, 1}}))
	require.NoError(t, err)

	logs, l := logger.NewTestLogger(t, slog.LevelWarn)
	emitter := events.NewInMemoryEventEmitter(l)
	emitter.RegisterHandler(events.HandlerFunc(func(context.Context, *events.GradedEvent) error {
		return errors.New("storage unavailable")
	}))
	board := NewScoreboard()
	emitter.RegisterHandler(board)

	out := &bytes.Buffer{}
	s := New(engine, level.NewCatalogue(domain.ASCIIProfile), emitter,
		strings.NewReader("F#\n\nF#\nq\n"), out,
		WithExercise(domain.ExerciseSingleTone), WithLevels("1"), WithLogger(l))

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 2, board.Count(domain.VerdictExact))
	logger.AssertLogField(t, logs, "failed to publish graded event", "error", "storage unavailable")
	logger.AssertLogField(t, logs, "handler failed to process event", "handler_index", 0)
	assert.Contains(t, out.String(), "Relative Minor : B   C#  D   E   F#  G   A   B   ")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRunReportsWriteErrors(t *testing.T) {
	t.Parallel()

	engine, err := theory.NewEngine(domain.ASCIIProfile,
		theory.WithSource(&cycleSource{values: []int{0}}))
	require.NoError(t, err)

	s := New(engine, level.NewCatalogue(domain.ASCIIProfile), nil,
		strings.NewReader("F#\n\n"), failingWriter{},
		WithExercise(domain.ExerciseSingleTone), WithLevels("1"))

	assert.EqualError(t, s.Run(context.Background()), "closed")
}
