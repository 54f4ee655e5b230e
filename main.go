package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"atlas/application"
	"atlas/config"
	"atlas/logging"
	"atlas/terminal"
)

// Populated at build time via -ldflags.
var version = "dev"

func build() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}
	return version
}

func main() {
	ctx := context.Background()

	var (
		cfg       *config.Config
		cfgPath   = config.Path()
		logger    = zerolog.Nop()
		logCloser func()
	)

	app := &cli.Command{
		Name:      "atlas",
		Usage:     "a small terminal text editor",
		ArgsUsage: "[file]",
		Version:   build(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			cfg, err = config.Init(cfgPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			logger, logCloser, err = logging.New(cfg.LogLevel, filepath.Join(config.Dir(), logging.FileName))
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 1 {
				return fmt.Errorf("expected at most one file, got %d arguments", c.Args().Len())
			}
			return edit(ctx, cfg, cfgPath, logger, c.Args().First())
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "atlas:", err)
		os.Exit(1)
	}
}

// edit runs the editor on path, or on an empty buffer if path is empty. The
// terminal is restored before any error is returned.
func edit(ctx context.Context, cfg *config.Config, cfgPath string, log zerolog.Logger, path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("atlas must be run in a terminal")
	}

	tty, err := terminal.Open(logging.Component(log, "terminal"), terminal.DefaultReadTimeout)
	if err != nil {
		return err
	}
	defer tty.Close()

	editor, err := application.New(tty, cfg, log, build())
	if err != nil {
		return err
	}
	defer editor.Close()

	if path != "" {
		if err := editor.Open(path); err != nil {
			return err
		}
	}
	if err := editor.WatchConfig(cfgPath); err != nil {
		log.Warn().Err(err).Str("path", cfgPath).Msg("config will not be reloaded")
	}

	if err := editor.Run(ctx); err != nil {
		log.Error().Err(err).Msg("editor stopped")
		return err
	}
	return nil
}
