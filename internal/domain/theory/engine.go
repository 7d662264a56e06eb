// Package theory implements the enharmonic scale engine: the chromatic
// table, scale construction, answer grading and question drawing.
package theory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// Engine ties the components together around one read-only table. Every
// method is free of shared mutable state apart from the random source.
type Engine struct {
	table    *Table
	builder  *Builder
	checker  *Checker
	resolver *Resolver
}

// Review is the graded outcome of one question.
type Review struct {
	Question domain.Question
	Verdict  domain.Verdict
	Scale    *domain.Scale
	Relative *domain.Scale
}

type options struct {
	logger *slog.Logger
	source Source
}

// Option configures an Engine.
type Option func(*options)

// WithLogger sets the logger used to report spelling gaps.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource sets the random source used to draw questions.
func WithSource(source Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// NewEngine builds the table for profile and wires the components to it.
// Without WithSource the engine draws from a source seeded by crypto/rand.
func NewEngine(profile domain.AccidentalProfile, opts ...Option) (*Engine, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.source == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, fmt.Errorf("failed to seed question source: %w", err)
		}
		o.source = NewSource(seed)
	}

	table := NewTable(profile)
	return &Engine{
		table:    table,
		builder:  NewBuilder(table, o.logger),
		checker:  NewChecker(table),
		resolver: NewResolver(table, o.source),
	}, nil
}

// Table returns the engine's chromatic table.
func (e *Engine) Table() *Table {
	return e.table
}

// Profile returns the accidental profile of the session.
func (e *Engine) Profile() domain.AccidentalProfile {
	return e.table.Profile()
}

// Locate finds the pitch class named by a whole token of text.
func (e *Engine) Locate(text string) (domain.PitchClass, bool) {
	return e.table.Locate(text)
}

// Build returns the full scale of root in mode.
func (e *Engine) Build(root domain.Spelling, mode domain.Mode) (*domain.Scale, error) {
	return e.builder.Build(root, mode)
}

// BuildEntry builds the scale named by a "root mode" entry.
func (e *Engine) BuildEntry(entry string) (*domain.Scale, error) {
	root, mode, err := e.resolver.ResolveEntry(entry)
	if err != nil {
		return nil, err
	}
	return e.builder.Build(root, mode)
}

// Tone returns one degree of the scale of root in mode.
func (e *Engine) Tone(root domain.Spelling, mode domain.Mode, degree int) (domain.Tone, error) {
	return e.builder.Tone(root, mode, degree)
}

// RelativeKey returns the root of the relative key of scale.
func (e *Engine) RelativeKey(scale *domain.Scale) (domain.Spelling, error) {
	return e.resolver.RelativeKey(scale)
}

// RelativeScale builds the relative minor of a major scale or the relative
// major of a minor scale.
func (e *Engine) RelativeScale(scale *domain.Scale) (*domain.Scale, error) {
	root, err := e.resolver.RelativeKey(scale)
	if err != nil {
		return nil, err
	}
	return e.builder.Build(root, scale.Mode.Relative())
}

// Ask draws a question of kind from set.
func (e *Engine) Ask(kind domain.ExerciseKind, set domain.NoteSet) (domain.Question, error) {
	return e.resolver.Ask(kind, set)
}

// Grade grades answer against the scale the question is about.
func (e *Engine) Grade(q domain.Question, answer string) (domain.Verdict, error) {
	scale, err := e.builder.Build(q.Root, q.Mode)
	if err != nil {
		return "", err
	}
	return e.checker.Grade(q, scale, answer)
}

// Review grades answer and returns the scale and its relative scale for
// display.
func (e *Engine) Review(q domain.Question, answer string) (*Review, error) {
	scale, err := e.builder.Build(q.Root, q.Mode)
	if err != nil {
		return nil, err
	}

	verdict, err := e.checker.Grade(q, scale, answer)
	if err != nil {
		return nil, err
	}

	relative, err := e.RelativeScale(scale)
	if err != nil {
		return nil, fmt.Errorf("failed to build relative scale: %w", err)
	}

	return &Review{
		Question: q,
		Verdict:  verdict,
		Scale:    scale,
		Relative: relative,
	}, nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
