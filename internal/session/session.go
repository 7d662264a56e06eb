// Package session runs the interactive practice loop: it asks for an
// exercise and levels, draws questions, grades answers and shows the scale
// with its relative key after every answer.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/scry-scales/internal/domain"
	"github.com/phrazzld/scry-scales/internal/domain/theory"
	"github.com/phrazzld/scry-scales/internal/events"
	"github.com/phrazzld/scry-scales/internal/level"
)

// errQuit ends the loop after an exit word or the end of input.
var errQuit = errors.New("quit")

// exitWords end the session wherever input is read.
var exitWords = map[string]struct{}{
	"exit": {},
	"quit": {},
	"q":    {},
}

// Session is one interactive practice run over a reader and a writer.
type Session struct {
	engine    *theory.Engine
	catalogue *level.Catalogue
	emitter   events.EventEmitter
	board     *Scoreboard
	logger    *slog.Logger

	exercise domain.ExerciseKind
	levels   string

	in  *bufio.Scanner
	out *printer
}

// Option configures a Session.
type Option func(*Session)

// WithExercise skips the exercise menu.
func WithExercise(kind domain.ExerciseKind) Option {
	return func(s *Session) {
		s.exercise = kind
	}
}

// WithLevels skips the level menu and selects levels from text such as "3a4".
func WithLevels(text string) Option {
	return func(s *Session) {
		s.levels = text
	}
}

// WithScoreboard prints the board's summary when the session ends.
func WithScoreboard(board *Scoreboard) Option {
	return func(s *Session) {
		s.board = board
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session reading answers from in and writing to out. Every
// graded answer is published to emitter, which may be nil.
func New(
	engine *theory.Engine,
	catalogue *level.Catalogue,
	emitter events.EventEmitter,
	in io.Reader,
	out io.Writer,
	opts ...Option,
) *Session {
	s := &Session{
		engine:    engine,
		catalogue: catalogue,
		emitter:   emitter,
		in:        bufio.NewScanner(in),
		out:       &printer{w: out},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = s.logger.With("component", "session")
	return s
}

// Run plays until the player types an exit word, input ends or ctx is
// cancelled. Quitting is not an error.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, errQuit) {
		err = nil
	}
	if s.board != nil {
		s.out.printf("\n%s\n", s.board.Summary())
	}
	if err != nil {
		return err
	}
	return s.out.err
}

func (s *Session) run(ctx context.Context) error {
	kind, err := s.chooseExercise()
	if err != nil {
		return err
	}

	notes, err := s.chooseLevels()
	if err != nil {
		return err
	}

	s.logger.Info("session started",
		"exercise", string(kind),
		"entries", len(notes),
		"notation", s.engine.Profile().Name)

	s.out.printf("\n\nLet's begin:\n")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.round(ctx, kind, notes); err != nil {
			return err
		}
		if s.out.err != nil {
			return s.out.err
		}
	}
}

func (s *Session) chooseExercise() (domain.ExerciseKind, error) {
	if s.exercise != "" {
		return s.exercise, nil
	}

	for {
		s.out.printf("\nChoose exercise:\n1 - %s\n2 - %s\n",
			domain.ExerciseSingleTone.Title(), domain.ExerciseFullScale.Title())
		s.out.printf("\nExercise: ")

		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		kind, err := domain.ParseExerciseKind(line)
		if err == nil {
			return kind, nil
		}
		s.out.printf("* Please enter a valid option\n")
	}
}

func (s *Session) chooseLevels() (domain.NoteSet, error) {
	if s.levels != "" {
		notes, _, err := s.catalogue.Select(s.levels)
		if err != nil {
			return nil, fmt.Errorf("failed to select levels %q: %w", s.levels, err)
		}
		return notes, nil
	}

	for {
		s.out.printf("\n%s\n", strings.Repeat("-", 50))
		s.out.printf("\t\tChoose the difficulty:\n\n")
		s.out.printf(" Select what to include:\n")
		for _, l := range s.catalogue.Levels() {
			width := 2
			if l.IsSub() {
				width = 5
			}
			s.out.printf("\n%*s - %s", width, l.ID, l.Name)
		}
		s.out.printf("\n\nInclude: ")

		line, err := s.readLine()
		if err != nil {
			return nil, err
		}
		s.out.printf("\n%s\n", strings.Repeat("-", 50))

		notes, chosen, err := s.catalogue.Select(line)
		if errors.Is(err, level.ErrNoLevelSelected) {
			s.out.printf("\nInvalid options specified.\n")
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, l := range chosen {
			s.out.printf("\n* %s", l.Name)
		}
		s.out.printf("\n")
		return notes, nil
	}
}

func (s *Session) round(ctx context.Context, kind domain.ExerciseKind, notes domain.NoteSet) error {
	q, err := s.engine.Ask(kind, notes)
	if err != nil {
		return fmt.Errorf("failed to draw question: %w", err)
	}
	s.logger.Debug("question drawn", "entry", q.Entry(), "degree", q.Degree, "exercise", string(kind))

	if kind == domain.ExerciseFullScale {
		s.out.printf("\n%s\n", QuestionText(q))
		s.out.printf("\n\nYour answer (space separated): ")
	} else {
		s.out.printf("\n\nQuestion: %s", QuestionText(q))
		s.out.printf("\n\nYour answer (optional): ")
	}

	line, err := s.readLine()
	if err != nil {
		return err
	}
	answer := strings.Join(strings.Fields(line), " ")

	review, err := s.engine.Review(q, answer)
	if err != nil {
		return fmt.Errorf("failed to grade answer: %w", err)
	}

	if s.emitter != nil {
		event := events.NewGradedEvent(q, answer, review.Verdict)
		if err := s.emitter.EmitEvent(ctx, event); err != nil {
			s.logger.Warn("failed to publish graded event", "error", err, "event_id", event.ID)
		}
	}

	s.showReview(review, answer)

	s.out.printf("(Press \"enter\" to continue or type \"exit\" to quit)\n")
	if _, err := s.readLine(); err != nil {
		return err
	}
	s.out.printf("%s", strings.Repeat("\n", clearLines))
	return nil
}

func (s *Session) showReview(review *theory.Review, answer string) {
	profile := s.engine.Profile()
	q := review.Question
	tones := review.Scale.Render(profile)

	s.out.printf("\n")
	expected := strings.Join(tones, " ")
	if q.Kind == domain.ExerciseSingleTone {
		expected = tones[q.Degree-1]
		s.out.printf("%s\n", separator)
	}
	s.out.printf("\n%s %s\n\n", label("Answer :"), expected)

	if line := VerdictLine(review.Verdict, answer, expected); line != "" {
		s.out.printf("%s\n\n", line)
	}

	aligned := Align(tones)
	s.out.printf("%s %s\n", label("|"), Ruler(aligned))
	s.out.printf("%s %s\n", label("Scale :"), strings.Join(aligned, ""))
	s.out.printf("%s %s\n",
		label(relativeLabel(q.Mode)),
		strings.Join(Align(review.Relative.Render(profile)), ""))
	s.out.printf("\n%s\n", separator)
}

// readLine returns the next input line, or errQuit once input is exhausted.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}
	line := s.in.Text()
	if isExit(line) {
		return "", errQuit
	}
	return line, nil
}

// isExit reports whether any word of line is an exit word.
func isExit(line string) bool {
	for _, word := range strings.Fields(strings.ToLower(line)) {
		if _, ok := exitWords[word]; ok {
			return true
		}
	}
	return false
}

// printer remembers the first write error so the loop can stop on it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
