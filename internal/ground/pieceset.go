package ground

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/chesskit/ground/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// glyphSize is the resolution piece SVGs are rasterized at. Glyphs are drawn
// scaled down from this, so it only needs to exceed the largest on-screen
// piece.
const glyphSize = 240

var pieceFiles = map[board.Piece]string{
	board.WhitePawn:   "assets/pieces/wP.svg",
	board.WhiteKnight: "assets/pieces/wN.svg",
	board.WhiteBishop: "assets/pieces/wB.svg",
	board.WhiteRook:   "assets/pieces/wR.svg",
	board.WhiteQueen:  "assets/pieces/wQ.svg",
	board.WhiteKing:   "assets/pieces/wK.svg",
	board.BlackPawn:   "assets/pieces/bP.svg",
	board.BlackKnight: "assets/pieces/bN.svg",
	board.BlackBishop: "assets/pieces/bB.svg",
	board.BlackRook:   "assets/pieces/bR.svg",
	board.BlackQueen:  "assets/pieces/bQ.svg",
	board.BlackKing:   "assets/pieces/bK.svg",
}

// PieceSet holds the rasterized piece glyphs. Glyphs render into a
// unit-square-normalized space: a drawing transform that maps the unit square
// to the target cell, composed with Scale, places a piece exactly.
type PieceSet struct {
	glyphs map[board.Piece]*image.RGBA
	scaled map[scaledKey]*image.RGBA
}

type scaledKey struct {
	piece board.Piece
	size  int
}

// NewPieceSet rasterizes the embedded SVG glyphs.
func NewPieceSet() (*PieceSet, error) {
	ps := &PieceSet{
		glyphs: make(map[board.Piece]*image.RGBA),
		scaled: make(map[scaledKey]*image.RGBA),
	}

	for piece, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read piece asset %s: %w", path, err)
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse piece asset %s: %w", path, err)
		}
		icon.SetTarget(0, 0, glyphSize, glyphSize)

		rgba := image.NewRGBA(image.Rect(0, 0, glyphSize, glyphSize))
		scanner := rasterx.NewScannerGV(glyphSize, glyphSize, rgba, rgba.Bounds())
		icon.Draw(rasterx.NewDasher(glyphSize, glyphSize, scanner), 1.0)

		ps.glyphs[piece] = rgba
	}

	return ps, nil
}

// Scale is the factor that normalizes a glyph to the unit square.
func (ps *PieceSet) Scale() float64 {
	return 1.0 / glyphSize
}

// Glyph returns the full-resolution raster for a piece, or nil.
func (ps *PieceSet) Glyph(p board.Piece) image.Image {
	img, ok := ps.glyphs[p]
	if !ok {
		return nil
	}
	return img
}

// ScaledGlyph returns the glyph resampled to size pixels square, cached.
func (ps *PieceSet) ScaledGlyph(p board.Piece, size int) image.Image {
	if size <= 0 {
		return nil
	}
	key := scaledKey{piece: p, size: size}
	if img, ok := ps.scaled[key]; ok {
		return img
	}
	src, ok := ps.glyphs[p]
	if !ok {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	ps.scaled[key] = dst
	return dst
}

// DrawPiece paints a piece into the context. The current transform must map
// the unit square to the target area.
func (ps *PieceSet) DrawPiece(dc *gg.Context, p board.Piece) {
	img, ok := ps.glyphs[p]
	if !ok {
		return
	}
	dc.Push()
	dc.Scale(ps.Scale(), ps.Scale())
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}
