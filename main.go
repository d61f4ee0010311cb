// Chessground - an interactive chessboard widget built with Ebitengine
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chesskit/ground/internal/board"
	"github.com/chesskit/ground/internal/storage"
	"github.com/chesskit/ground/internal/ui"
)

func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func run(ctx context.Context, c *cli.Command) error {
	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := storage.NewStorage(logger)
	if err != nil {
		logger.Warnw("preferences unavailable", "error", err)
		store = nil
	}

	cfg := ui.Config{
		FEN:     board.StartPlacement,
		Flipped: c.Bool("flipped"),
		Size:    8 * int(c.Int("size")),
		Theme:   "classic",
	}
	if store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			logger.Warnw("loading preferences", "error", err)
		} else {
			cfg.Flipped = prefs.Flipped
			cfg.Theme = prefs.Theme
			if !c.IsSet("size") {
				cfg.Size = 8 * prefs.SquareSize
			}
		}
	}
	if c.IsSet("flipped") {
		cfg.Flipped = c.Bool("flipped")
	}
	if fen := c.String("fen"); fen != "" {
		cfg.FEN = fen
	}

	game, err := ui.NewGame(cfg, store, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Size, cfg.Size)
	ebiten.SetWindowTitle("Chessground")

	return ebiten.RunGame(game)
}

func main() {
	cmd := &cli.Command{
		Name:  "chessground",
		Usage: "interactive chessboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fen",
				Usage: "starting position in FEN",
			},
			&cli.BoolFlag{
				Name:  "flipped",
				Usage: "show the board from Black's side",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "square size in pixels",
				Value: 80,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zap log level",
				Value: "info",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
