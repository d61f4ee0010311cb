package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the piece placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses the piece placement field of a FEN string (the first
// space-separated field; a full FEN is accepted and the rest ignored) into a
// square-to-piece map. Empty squares are absent from the map.
func ParsePlacement(fen string) (map[Square]Piece, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty FEN")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid placement: need 8 ranks, got %d", len(ranks))
	}

	placement := make(map[Square]Piece)
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := PieceFromChar(c)
			if p == NoPiece {
				return nil, fmt.Errorf("invalid placement character %q in rank %d", c, rank+1)
			}
			sq := NewSquare(file, rank)
			if sq == NoSquare {
				return nil, fmt.Errorf("rank %d overflows the board", rank+1)
			}
			placement[sq] = p
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("rank %d describes %d files", rank+1, file)
		}
	}

	return placement, nil
}
