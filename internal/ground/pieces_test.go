package ground

import (
	"testing"
	"time"

	"github.com/chesskit/ground/internal/board"
)

func TestMovePiece(t *testing.T) {
	now := time.Unix(1000, 0)
	ps := NewPieces(map[board.Square]board.Piece{
		board.E2: board.WhitePawn,
		board.D7: board.BlackQueen,
	})

	ps.MovePiece(board.E2, board.E4, now)

	if ps.FigurineAt(board.E2) != nil {
		t.Error("expected e2 empty after the move")
	}
	fig := ps.FigurineAt(board.E4)
	if fig == nil {
		t.Fatal("expected the pawn on e4")
	}
	if fig.Piece != board.WhitePawn {
		t.Errorf("expected a white pawn, got %v", fig.Piece)
	}

	// The glide starts where the piece stood and ends on the new square.
	if fig.DrawPos(now) != SquarePos(board.E2) {
		t.Errorf("expected the glide to start on e2, got %+v", fig.DrawPos(now))
	}
	if !fig.IsAnimating(now.Add(500 * time.Millisecond)) {
		t.Error("expected the pawn still gliding at 0.5s")
	}
	settled := fig.DrawPos(now.Add(2 * time.Second))
	if settled != SquarePos(board.E4) {
		t.Errorf("expected the pawn settled on e4, got %+v", settled)
	}
}

func TestMovePieceCaptures(t *testing.T) {
	now := time.Unix(1000, 0)
	ps := NewPieces(map[board.Square]board.Piece{
		board.E4: board.WhitePawn,
		board.D5: board.BlackPawn,
	})

	ps.MovePiece(board.E4, board.D5, now)

	if len(ps.All()) != 1 {
		t.Fatalf("expected one figurine left, got %d", len(ps.All()))
	}
	fig := ps.FigurineAt(board.D5)
	if fig == nil || fig.Piece != board.WhitePawn {
		t.Error("expected the white pawn on d5")
	}
}

func TestMovePieceNoop(t *testing.T) {
	now := time.Unix(1000, 0)
	ps := NewPieces(map[board.Square]board.Piece{
		board.E4: board.WhiteKing,
	})

	ps.MovePiece(board.E4, board.E4, now)
	ps.MovePiece(board.A1, board.B2, now)

	fig := ps.FigurineAt(board.E4)
	if fig == nil || fig.IsAnimating(now) {
		t.Error("expected the king untouched")
	}
}

func TestDraggingSuspendsGlide(t *testing.T) {
	now := time.Unix(1000, 0)
	ps := NewPieces(map[board.Square]board.Piece{
		board.E2: board.WhitePawn,
	})

	fig := ps.FigurineAt(board.E2)
	fig.Dragging = true
	fig.DragPos = Pos{X: 3.2, Y: 1.7}

	if fig.DrawPos(now) != (Pos{X: 3.2, Y: 1.7}) {
		t.Errorf("expected the drag position, got %+v", fig.DrawPos(now))
	}
	if !fig.IsAnimating(now) {
		t.Error("expected a dragged piece to need frames")
	}
	if !ps.IsAnimating(now) {
		t.Error("expected the set animating while a piece is dragged")
	}
}
