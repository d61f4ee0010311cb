package ui

import (
	"image"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/chesskit/ground/internal/board"
	"github.com/chesskit/ground/internal/ground"
)

// BoardView is the interactive board widget. It owns the figurines and the
// promotion picker, implements ground.WidgetContext for their redraw
// requests, and implements ground.BoardState so the picker can query
// legality, glyphs, and orientation.
//
// Rendering is lazy: redraw requests collect in a dirty set and the scene is
// re-rendered only for the invalidated region, or in full while something is
// animating.
type BoardView struct {
	theme  *Theme
	logger *zap.SugaredLogger

	rules      Rules
	set        *ground.PieceSet
	pieces     *ground.Pieces
	promotable *ground.Promotable

	orientation board.Color
	size        int // board edge length in pixels

	selected board.Square
	dragFrom board.Square

	moves chan ground.UserMove

	dirty    map[board.Square]struct{}
	dirtyAll bool
	canvas   *image.RGBA
	scene    *ebiten.Image
}

// NewBoardView builds a board of the given pixel edge length showing the
// placement, with free-play rules.
func NewBoardView(placement map[board.Square]board.Piece, set *ground.PieceSet, size int, orientation board.Color, theme *Theme, logger *zap.SugaredLogger) *BoardView {
	pieces := ground.NewPieces(placement)
	return &BoardView{
		theme:       theme,
		logger:      logger,
		rules:       &freeRules{pieces: pieces},
		set:         set,
		pieces:      pieces,
		promotable:  ground.NewPromotable(),
		orientation: orientation,
		size:        size,
		selected:    board.NoSquare,
		dragFrom:    board.NoSquare,
		moves:       make(chan ground.UserMove, 8),
		dirty:       make(map[board.Square]struct{}),
		dirtyAll:    true,
	}
}

// SetRules swaps the legality oracle.
func (bv *BoardView) SetRules(r Rules) {
	bv.rules = r
}

// Moves is the channel finished user moves are delivered on.
func (bv *BoardView) Moves() <-chan ground.UserMove {
	return bv.moves
}

// Size returns the board edge length in pixels.
func (bv *BoardView) Size() int {
	return bv.size
}

// Flip turns the board around.
func (bv *BoardView) Flip() {
	bv.orientation = bv.orientation.Other()
	bv.QueueDraw()
}

// ground.BoardState

// LegalMove delegates to the configured rules.
func (bv *BoardView) LegalMove(orig, dest board.Square, promotion board.PieceType) bool {
	return bv.rules.LegalMove(orig, dest, promotion)
}

// PieceSet returns the glyph set.
func (bv *BoardView) PieceSet() *ground.PieceSet {
	return bv.set
}

// Orientation returns which side sits at the bottom.
func (bv *BoardView) Orientation() board.Color {
	return bv.orientation
}

// ground.WidgetContext

// QueueDrawSquare invalidates a single cell.
func (bv *BoardView) QueueDrawSquare(sq board.Square) {
	if sq.IsValid() {
		bv.dirty[sq] = struct{}{}
	}
}

// QueueDraw invalidates the whole board.
func (bv *BoardView) QueueDraw() {
	bv.dirtyAll = true
}

// Update processes one frame of pointer input. Call once per tick.
func (bv *BoardView) Update() error {
	mx, my := ebiten.CursorPosition()
	sq := ground.PixelToSquare(float64(mx), float64(my), bv.size, bv.size, bv.orientation)
	ctx := ground.NewEventContext(bv, sq, bv.moves)

	bv.promotable.MouseMove(ctx)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		bv.mouseDown(ctx, sq)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		bv.mouseUp(sq)
	}

	if bv.dragFrom != board.NoSquare {
		if fig := bv.pieces.FigurineAt(bv.dragFrom); fig != nil && fig.Dragging {
			x, y := ground.InvertPixel(float64(mx), float64(my), bv.size, bv.size, bv.orientation)
			fig.DragPos = ground.Pos{X: x, Y: y}
		}
	}

	return nil
}

func (bv *BoardView) mouseDown(ctx *ground.EventContext, sq board.Square) {
	if bv.promotable.MouseDown(bv.pieces, bv, ctx) {
		bv.clearSelection()
		return
	}

	if sq == board.NoSquare {
		bv.clearSelection()
		return
	}

	if fig := bv.pieces.FigurineAt(sq); fig != nil {
		// click-click capture: a selected piece takes an enemy piece
		if bv.selected != board.NoSquare && bv.selected != sq {
			if sel := bv.pieces.FigurineAt(bv.selected); sel != nil && sel.Piece.Color() != fig.Piece.Color() {
				bv.tryMove(bv.selected, sq)
				bv.clearSelection()
				return
			}
		}
		bv.selected = sq
		bv.dragFrom = sq
		fig.Dragging = true
		fig.DragPos = ground.SquarePos(sq)
		bv.QueueDraw()
		return
	}

	if bv.selected != board.NoSquare {
		bv.tryMove(bv.selected, sq)
	}
	bv.clearSelection()
}

func (bv *BoardView) mouseUp(sq board.Square) {
	if bv.dragFrom == board.NoSquare {
		return
	}
	orig := bv.dragFrom
	bv.dragFrom = board.NoSquare

	fig := bv.pieces.FigurineAt(orig)
	if fig == nil {
		return
	}
	fig.Dragging = false
	fig.Pos = fig.DragPos
	fig.Since = time.Now()

	if sq != board.NoSquare && sq != orig {
		bv.tryMove(orig, sq)
		bv.clearSelection()
	}
	// releasing on the origin square keeps the click-click selection
	bv.QueueDraw()
}

// tryMove resolves an attempted move. A pawn reaching its last rank with a
// legal promotion opens the picker instead of emitting immediately.
func (bv *BoardView) tryMove(orig, dest board.Square) {
	if !bv.rules.LegalMove(orig, dest, board.NoPieceType) {
		return
	}

	fig := bv.pieces.FigurineAt(orig)
	if fig != nil && fig.Piece.Type() == board.Pawn && bv.rules.LegalMove(orig, dest, board.Queen) {
		bv.promotable.StartPromoting(orig, dest)
		bv.logger.Debugw("promotion started", "orig", orig.String(), "dest", dest.String())
		bv.QueueDraw()
		return
	}

	select {
	case bv.moves <- ground.UserMove{Orig: orig, Dest: dest, Promotion: board.NoPieceType}:
	default:
	}
}

func (bv *BoardView) clearSelection() {
	bv.selected = board.NoSquare
	bv.QueueDraw()
}

// ApplyMove updates the figurines for a move the game logic accepted.
func (bv *BoardView) ApplyMove(m ground.UserMove) {
	bv.pieces.MovePiece(m.Orig, m.Dest, time.Now())
	if m.Promotion != board.NoPieceType {
		if fig := bv.pieces.FigurineAt(m.Dest); fig != nil {
			fig.Piece = board.NewPiece(m.Promotion, fig.Piece.Color())
		}
	}
	bv.QueueDraw()
}

// IsAnimating reports whether the view needs continuous frames.
func (bv *BoardView) IsAnimating() bool {
	return bv.promotable.IsAnimating() || bv.pieces.IsAnimating(time.Now())
}

// Draw composes the board into the screen's top-left corner.
func (bv *BoardView) Draw(screen *ebiten.Image) {
	if bv.canvas == nil {
		bv.canvas = image.NewRGBA(image.Rect(0, 0, bv.size, bv.size))
		bv.scene = ebiten.NewImage(bv.size, bv.size)
		bv.dirtyAll = true
	}

	if bv.dirtyAll || len(bv.dirty) > 0 || bv.IsAnimating() {
		bv.render()
		bv.scene.WritePixels(bv.canvas.Pix)
	}

	screen.DrawImage(bv.scene, &ebiten.DrawImageOptions{})
}

// render repaints the invalidated region of the canvas. Everything below
// draws in board coordinates; the clip keeps partial redraws cheap.
func (bv *BoardView) render() {
	now := time.Now()
	full := bv.dirtyAll || bv.pieces.IsAnimating(now)

	dc := gg.NewContextForRGBA(bv.canvas)
	ground.TransformContext(dc, bv.size, bv.size, bv.orientation)

	if !full {
		for sq := range bv.dirty {
			dc.DrawRectangle(float64(sq.File()), 7-float64(sq.Rank()), 1, 1)
		}
		dc.Clip()
	}

	bv.drawSquares(dc)
	bv.drawFigurines(dc, now)
	bv.promotable.Draw(dc, bv)

	bv.dirty = make(map[board.Square]struct{})
	bv.dirtyAll = false
}

func (bv *BoardView) drawSquares(dc *gg.Context) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if (file+rank)&1 == 1 {
				dc.SetColor(bv.theme.LightSquare)
			} else {
				dc.SetColor(bv.theme.DarkSquare)
			}
			dc.DrawRectangle(float64(file), 7-float64(rank), 1, 1)
			dc.Fill()
		}
	}

	if bv.selected != board.NoSquare {
		dc.SetColor(bv.theme.SelectedSquare)
		dc.DrawRectangle(float64(bv.selected.File()), 7-float64(bv.selected.Rank()), 1, 1)
		dc.Fill()
	}
}

func (bv *BoardView) drawFigurines(dc *gg.Context, now time.Time) {
	var dragged *ground.Figurine
	for _, fig := range bv.pieces.All() {
		if fig.Dragging {
			dragged = fig
			continue
		}
		// the picker covers the promoting pawn
		if bv.promotable.IsPromoting(fig.Square) {
			continue
		}
		bv.drawFigurine(dc, fig, now)
	}
	if dragged != nil {
		bv.drawFigurine(dc, dragged, now)
	}
}

func (bv *BoardView) drawFigurine(dc *gg.Context, fig *ground.Figurine, now time.Time) {
	px := bv.size / 8
	img := bv.set.ScaledGlyph(fig.Piece, px)
	if img == nil {
		return
	}

	pos := fig.DrawPos(now)
	dc.Push()
	dc.Translate(pos.X, pos.Y)
	if bv.orientation == board.Black {
		dc.Rotate(math.Pi) // keep glyphs upright on a flipped board
	}
	dc.Translate(-0.5, -0.5)
	dc.Scale(1/float64(px), 1/float64(px))
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}
