package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-scales/internal/cheatsheet"
	"github.com/phrazzld/scry-scales/internal/config"
	"github.com/phrazzld/scry-scales/internal/domain"
	"github.com/phrazzld/scry-scales/internal/domain/theory"
	"github.com/phrazzld/scry-scales/internal/events"
	"github.com/phrazzld/scry-scales/internal/level"
	"github.com/phrazzld/scry-scales/internal/session"
)

// application holds the dependencies of one trainer run.
type application struct {
	config *config.Config
	logger *slog.Logger

	in  io.Reader
	out io.Writer

	engine    *theory.Engine
	catalogue *level.Catalogue

	// Event system
	eventEmitter *events.InMemoryEventEmitter
	scoreboard   *session.Scoreboard
}

// newApplication builds the engine for the configured notation and wires
// the scoreboard to the event emitter.
func newApplication(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		in:     in,
		out:    out,
	}

	profile, err := domain.ProfileByName(cfg.Trainer.Notation)
	if err != nil {
		return nil, err
	}

	opts := []theory.Option{theory.WithLogger(logger)}
	if cfg.Trainer.Seed != 0 {
		opts = append(opts, theory.WithSource(theory.NewSource(cfg.Trainer.Seed)))
	}
	app.engine, err = theory.NewEngine(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scale engine: %w", err)
	}
	app.catalogue = level.NewCatalogue(profile)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.scoreboard = session.NewScoreboard()
	app.eventEmitter.RegisterHandler(app.scoreboard)

	logger.Info("application initialized", "notation", profile.Name)
	return app, nil
}

// Run plays an interactive session until the player quits.
func (app *application) Run(ctx context.Context) error {
	opts := []session.Option{
		session.WithScoreboard(app.scoreboard),
		session.WithLogger(app.logger),
	}
	if app.config.Trainer.Exercise != "" {
		kind, err := domain.ParseExerciseKind(app.config.Trainer.Exercise)
		if err != nil {
			return err
		}
		opts = append(opts, session.WithExercise(kind))
	}
	if app.config.Trainer.Levels != "" {
		opts = append(opts, session.WithLevels(app.config.Trainer.Levels))
	}

	s := session.New(app.engine, app.catalogue, app.eventEmitter, app.in, app.out, opts...)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}

	app.logger.Info("session finished",
		"answered", app.scoreboard.Answered(),
		"correct", app.scoreboard.Count(domain.VerdictExact))
	return nil
}

// Cheatsheet prints every scale of the configured notation.
func (app *application) Cheatsheet() error {
	if err := cheatsheet.Write(app.out, app.engine); err != nil {
		return fmt.Errorf("failed to write cheatsheet: %w", err)
	}
	return nil
}
