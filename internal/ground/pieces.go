package ground

import (
	"time"

	"github.com/chesskit/ground/internal/board"
)

// Pos is a position in board coordinates (units of one square).
type Pos struct {
	X, Y float64
}

// Figurine is one piece on the board. Square is where the piece logically
// sits; Pos and Since drive its drift animation: drawing eases Pos toward the
// square center over one second starting at Since. Snapping a figurine
// elsewhere and resetting Since makes it glide home, which is how a cancelled
// promotion returns the pawn.
type Figurine struct {
	Piece  board.Piece
	Square board.Square
	Pos    Pos
	Since  time.Time

	// Dragging suspends the drift animation; DragPos follows the cursor.
	Dragging bool
	DragPos  Pos
}

// DrawPos returns the position the figurine should be painted at.
func (f *Figurine) DrawPos(now time.Time) Pos {
	if f.Dragging {
		return f.DragPos
	}
	target := SquarePos(f.Square)
	t := now.Sub(f.Since).Seconds()
	return Pos{
		X: Ease(f.Pos.X, target.X, t),
		Y: Ease(f.Pos.Y, target.Y, t),
	}
}

// IsAnimating reports whether the figurine has not yet settled on its square.
func (f *Figurine) IsAnimating(now time.Time) bool {
	if f.Dragging {
		return true
	}
	if f.Pos == SquarePos(f.Square) {
		return false
	}
	return now.Sub(f.Since).Seconds() < 1.0
}

// Pieces is the mutable set of figurines on a board. It is owned by a single
// widget and mutated only from its event handlers.
type Pieces struct {
	figurines []*Figurine
}

// NewPieces builds the figurine set for a placement, every piece settled on
// its square.
func NewPieces(placement map[board.Square]board.Piece) *Pieces {
	ps := &Pieces{}
	for sq, p := range placement {
		ps.figurines = append(ps.figurines, &Figurine{
			Piece:  p,
			Square: sq,
			Pos:    SquarePos(sq),
		})
	}
	return ps
}

// FigurineAt returns the figurine whose logical square is sq, or nil.
func (ps *Pieces) FigurineAt(sq board.Square) *Figurine {
	for _, f := range ps.figurines {
		if f.Square == sq {
			return f
		}
	}
	return nil
}

// All returns the figurines. The slice is shared, not a copy.
func (ps *Pieces) All() []*Figurine {
	return ps.figurines
}

// SetPiece places a piece on sq, replacing whatever was there. The figurine
// appears settled, without animation.
func (ps *Pieces) SetPiece(sq board.Square, p board.Piece) {
	ps.Remove(sq)
	ps.figurines = append(ps.figurines, &Figurine{
		Piece:  p,
		Square: sq,
		Pos:    SquarePos(sq),
	})
}

// Remove takes the figurine at sq off the board.
func (ps *Pieces) Remove(sq board.Square) {
	for i, f := range ps.figurines {
		if f.Square == sq {
			ps.figurines = append(ps.figurines[:i], ps.figurines[i+1:]...)
			return
		}
	}
}

// MovePiece moves the figurine at orig to dest, capturing anything already
// there, and starts its glide from wherever it is currently drawn.
func (ps *Pieces) MovePiece(orig, dest board.Square, now time.Time) {
	fig := ps.FigurineAt(orig)
	if fig == nil || orig == dest {
		return
	}
	ps.Remove(dest)
	fig.Pos = fig.DrawPos(now)
	fig.Dragging = false
	fig.Square = dest
	fig.Since = now
}

// IsAnimating reports whether any figurine is still moving.
func (ps *Pieces) IsAnimating(now time.Time) bool {
	for _, f := range ps.figurines {
		if f.IsAnimating(now) {
			return true
		}
	}
	return false
}
