package ground

import (
	"testing"

	"github.com/chesskit/ground/internal/board"
)

func TestPixelToSquareRoundTrip(t *testing.T) {
	// Project every square center to pixels and map it back. The round trip
	// must recover the square for any widget shape and both orientations.
	sizes := []struct{ w, h int }{
		{64, 64},
		{640, 480},
		{800, 800},
		{123, 77},
	}

	for _, orientation := range []board.Color{board.White, board.Black} {
		for _, size := range sizes {
			m := Transform(size.w, size.h, orientation)
			for sq := board.A1; sq <= board.H8; sq++ {
				pos := SquarePos(sq)
				px, py := m.Apply(pos.X, pos.Y)

				got := PixelToSquare(px, py, size.w, size.h, orientation)
				if got != sq {
					t.Errorf("%dx%d %v: expected %v, got %v (pixel %.1f,%.1f)",
						size.w, size.h, orientation, sq, got, px, py)
				}
			}
		}
	}
}

func TestPixelToSquareOutsideBoard(t *testing.T) {
	// 640x480: the board is 480x480 centered, so x < 80 is off the board.
	cases := []struct {
		name string
		x, y float64
	}{
		{"left margin", 40, 240},
		{"right margin", 600, 240},
		{"negative", -5, -5},
		{"far outside", 10000, 10000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PixelToSquare(tc.x, tc.y, 640, 480, board.White)
			if got != board.NoSquare {
				t.Errorf("expected NoSquare, got %v", got)
			}
		})
	}
}

func TestPixelToSquareKnownCells(t *testing.T) {
	// 800x800 board, White at the bottom: a8 is the top-left cell, h1 the
	// bottom-right one. Flipping the orientation swaps them.
	if got := PixelToSquare(50, 50, 800, 800, board.White); got != board.A8 {
		t.Errorf("expected a8, got %v", got)
	}
	if got := PixelToSquare(750, 750, 800, 800, board.White); got != board.H1 {
		t.Errorf("expected h1, got %v", got)
	}
	if got := PixelToSquare(50, 50, 800, 800, board.Black); got != board.H1 {
		t.Errorf("flipped: expected h1, got %v", got)
	}
	if got := PixelToSquare(750, 750, 800, 800, board.Black); got != board.A8 {
		t.Errorf("flipped: expected a8, got %v", got)
	}
}

func TestDegenerateWidgetSize(t *testing.T) {
	// A zero or negative widget size never yields a square. The negative
	// case matters: a -100x-100 widget produces an invertible transform
	// (both scales flip sign), so it must be rejected up front rather than
	// by the singular-matrix guard.
	sizes := []struct{ w, h int }{
		{0, 0},
		{0, 480},
		{640, 0},
		{-100, -100},
		{-100, 480},
		{640, -1},
	}

	for _, size := range sizes {
		for _, orientation := range []board.Color{board.White, board.Black} {
			if got := PixelToSquare(-50, -50, size.w, size.h, orientation); got != board.NoSquare {
				t.Errorf("%dx%d %v: expected NoSquare, got %v", size.w, size.h, orientation, got)
			}

			x, y := InvertPixel(12, 34, size.w, size.h, orientation)
			if x != 12 || y != 34 {
				t.Errorf("%dx%d %v: expected input unchanged, got %.1f,%.1f", size.w, size.h, orientation, x, y)
			}
		}
	}
}

func TestInvertPixelFractional(t *testing.T) {
	// The center of an 800x800 widget is the middle of the board.
	x, y := InvertPixel(400, 400, 800, 800, board.White)
	if x != 4 || y != 4 {
		t.Errorf("expected 4,4, got %.3f,%.3f", x, y)
	}

	// A quarter square into e4 from its center.
	m := Transform(800, 800, board.White)
	px, py := m.Apply(4.75, 4.25)
	x, y = InvertPixel(px, py, 800, 800, board.White)
	if x < 4.74 || x > 4.76 || y < 4.24 || y > 4.26 {
		t.Errorf("expected 4.75,4.25, got %.3f,%.3f", x, y)
	}
}

func TestSquarePos(t *testing.T) {
	cases := []struct {
		sq   board.Square
		x, y float64
	}{
		{board.A1, 0.5, 7.5},
		{board.H1, 7.5, 7.5},
		{board.A8, 0.5, 0.5},
		{board.H8, 7.5, 0.5},
		{board.E4, 4.5, 4.5},
	}

	for _, tc := range cases {
		pos := SquarePos(tc.sq)
		if pos.X != tc.x || pos.Y != tc.y {
			t.Errorf("%v: expected %.1f,%.1f, got %.1f,%.1f", tc.sq, tc.x, tc.y, pos.X, pos.Y)
		}
	}
}
