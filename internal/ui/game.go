package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/chesskit/ground/internal/board"
	"github.com/chesskit/ground/internal/ground"
	"github.com/chesskit/ground/internal/storage"
)

// Config carries the startup options resolved from flags and preferences.
type Config struct {
	FEN     string
	Flipped bool
	Size    int
	Theme   string
}

// Game ties the board view into the ebiten run loop and persists
// preferences across sessions.
type Game struct {
	view    *BoardView
	theme   *Theme
	store   *storage.Storage
	logger  *zap.SugaredLogger
	flipped bool
}

// NewGame builds the scene from the config. The storage may be nil when
// preferences should not be persisted.
func NewGame(cfg Config, store *storage.Storage, logger *zap.SugaredLogger) (*Game, error) {
	placement, err := board.ParsePlacement(cfg.FEN)
	if err != nil {
		return nil, fmt.Errorf("parsing position: %w", err)
	}

	set, err := ground.NewPieceSet()
	if err != nil {
		return nil, fmt.Errorf("loading piece set: %w", err)
	}

	orientation := board.White
	if cfg.Flipped {
		orientation = board.Black
	}

	theme := ThemeByName(cfg.Theme)
	view := NewBoardView(placement, set, cfg.Size, orientation, theme, logger)

	return &Game{
		view:    view,
		theme:   theme,
		store:   store,
		logger:  logger,
		flipped: cfg.Flipped,
	}, nil
}

// Update advances one tick: pointer input, finished moves, and the flip key.
func (g *Game) Update() error {
	if err := g.view.Update(); err != nil {
		return err
	}

	for {
		select {
		case m := <-g.view.Moves():
			g.logger.Infow("move played",
				"orig", m.Orig.String(),
				"dest", m.Dest.String(),
				"promotion", m.Promotion.String())
			g.view.ApplyMove(m)
		default:
			return g.handleKeys()
		}
	}
}

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.flipped = !g.flipped
		g.view.Flip()
		g.savePreferences()
	}
	return nil
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	prefs := storage.Preferences{
		Flipped:    g.flipped,
		Theme:      g.theme.Name,
		SquareSize: g.view.Size() / 8,
		LastPlayed: time.Now(),
	}
	if err := g.store.SavePreferences(prefs); err != nil {
		g.logger.Warnw("saving preferences", "error", err)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	g.view.Draw(screen)
}

// Layout fixes the logical screen to the board size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Size(), g.view.Size()
}

// Close releases the preference store.
func (g *Game) Close() error {
	if g.store == nil {
		return nil
	}
	return g.store.Close()
}
