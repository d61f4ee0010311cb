package ui

import (
	"github.com/chesskit/ground/internal/board"
	"github.com/chesskit/ground/internal/ground"
)

// Rules decides move legality for the widget. BoardView only ever queries;
// it never mutates game state through this interface.
type Rules interface {
	LegalMove(orig, dest board.Square, promotion board.PieceType) bool
}

// freeRules is the built-in oracle: free-play movement, the analysis board
// behavior. Any piece may move to any other square; promotion choices exist
// only for a pawn arriving on its last rank, and only to the four standard
// roles. Applications embedding BoardView can supply a real rules engine
// through the Rules interface instead.
type freeRules struct {
	pieces *ground.Pieces
}

func (r *freeRules) LegalMove(orig, dest board.Square, promotion board.PieceType) bool {
	fig := r.pieces.FigurineAt(orig)
	if fig == nil || !dest.IsValid() || orig == dest {
		return false
	}
	if promotion == board.NoPieceType {
		return true
	}

	if fig.Piece.Type() != board.Pawn {
		return false
	}
	lastRank := 7
	if fig.Piece.Color() == board.Black {
		lastRank = 0
	}
	if dest.Rank() != lastRank {
		return false
	}

	switch promotion {
	case board.Queen, board.Rook, board.Bishop, board.Knight:
		return true
	default:
		return false
	}
}
