package ground

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chesskit/ground/internal/board"
)

// Board coordinates are measured in squares: the board occupies (0,0)-(8,8),
// x grows with files and y grows downward, so square a8 covers (0,0)-(1,1)
// from White's point of view. Orientation only affects the pixel transform,
// never the board coordinates themselves.

// Transform returns the affine transform from board coordinates to widget
// pixels: the board is centered in the widget, uniformly scaled so the
// smaller widget dimension spans 8 squares, and rotated half a turn when
// Black sits at the bottom. The rotation applies to the linear part only; the
// half-board offset is folded in before it so the board spins around its own
// center.
func Transform(w, h int, orientation board.Color) ebiten.GeoM {
	var m ebiten.GeoM
	size := min(w, h)

	m.Translate(-4, -4)
	if orientation == board.Black {
		m.Rotate(math.Pi)
	}
	m.Scale(float64(size)/8, float64(size)/8)
	m.Translate(float64(w)/2, float64(h)/2)

	return m
}

// TransformContext applies the same board-to-pixel transform to a drawing
// context. The context applies operations in user-space order, so the calls
// read outermost first.
func TransformContext(dc *gg.Context, w, h int, orientation board.Color) {
	size := min(w, h)

	dc.Translate(float64(w)/2, float64(h)/2)
	dc.Scale(float64(size)/8, float64(size)/8)
	if orientation == board.Black {
		dc.Rotate(math.Pi)
	}
	dc.Translate(-4, -4)
}

// PixelToSquare maps a pixel position to the square under it, or NoSquare if
// the position falls outside the board or no usable transform exists. A zero
// or negative widget size degenerates this way and is not an error.
func PixelToSquare(x, y float64, w, h int, orientation board.Color) board.Square {
	if min(w, h) <= 0 {
		return board.NoSquare
	}
	m := Transform(w, h, orientation)
	if !m.IsInvertible() {
		return board.NoSquare
	}
	m.Invert()

	bx, by := m.Apply(x, y)
	fx, fy := math.Floor(bx), math.Floor(by)
	if fx < 0 || fx > 7 || fy < 0 || fy > 7 {
		return board.NoSquare
	}
	return board.NewSquare(int(fx), 7-int(fy))
}

// InvertPixel maps a pixel position to fractional board coordinates without
// bucketing, for sub-square positions such as a dragged piece. With a
// degenerate widget size or a non-invertible transform the input is returned
// unchanged.
func InvertPixel(x, y float64, w, h int, orientation board.Color) (float64, float64) {
	if min(w, h) <= 0 {
		return x, y
	}
	m := Transform(w, h, orientation)
	if !m.IsInvertible() {
		return x, y
	}
	m.Invert()
	return m.Apply(x, y)
}

// SquarePos returns the board-space center of a square.
func SquarePos(sq board.Square) Pos {
	return Pos{
		X: float64(sq.File()) + 0.5,
		Y: 7.5 - float64(sq.Rank()),
	}
}
