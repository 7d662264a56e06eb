// Package main implements the scales trainer, an interactive terminal game
// for practising major and natural minor scales with correct enharmonic
// spelling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/phrazzld/scry-scales/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "scales: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, wires the application and plays or prints the
// cheatsheet. Game output goes to out; logs and usage go to errOut.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("scales", flag.ContinueOnError)
	fs.SetOutput(errOut)
	basic := fs.Bool("b", false, "use basic notation (#, b, ##, bb) instead of ♯ ♭ 𝄪 𝄫")
	cheats := fs.Bool("c", false, "print every scale and exit")
	configPath := fs.String("config", "", "path to a config file (default: ./scales.yaml)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadAppConfig(*configPath)
	if err != nil {
		return err
	}
	if *basic {
		cfg.Trainer.Notation = domain.ASCIIProfile.Name
	}

	logger, err := setupAppLogger(cfg, errOut)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, in, out)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if *basic {
		fmt.Fprintln(out, "* Basic Notes - Enabled")
	}
	if *cheats {
		return app.Cheatsheet()
	}
	return app.Run(ctx)
}
