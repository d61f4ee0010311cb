package board

import "testing"

func TestSquareCoordinates(t *testing.T) {
	cases := []struct {
		sq         Square
		file, rank int
		str        string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{E4, 4, 3, "e4"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
	}

	for _, tc := range cases {
		if tc.sq.File() != tc.file {
			t.Errorf("%v: expected file %d, got %d", tc.sq, tc.file, tc.sq.File())
		}
		if tc.sq.Rank() != tc.rank {
			t.Errorf("%v: expected rank %d, got %d", tc.sq, tc.rank, tc.sq.Rank())
		}
		if tc.sq.String() != tc.str {
			t.Errorf("expected %q, got %q", tc.str, tc.sq.String())
		}
		if got := NewSquare(tc.file, tc.rank); got != tc.sq {
			t.Errorf("NewSquare(%d,%d): expected %v, got %v", tc.file, tc.rank, tc.sq, got)
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		if got := NewSquare(c[0], c[1]); got != NoSquare {
			t.Errorf("NewSquare(%d,%d): expected NoSquare, got %v", c[0], c[1], got)
		}
	}
	if NoSquare.String() != "-" {
		t.Errorf("expected \"-\", got %q", NoSquare.String())
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	if err != nil {
		t.Fatal("Error parsing square:", err)
	}
	if sq != E4 {
		t.Errorf("expected e4, got %v", sq)
	}

	for _, s := range []string{"", "e", "e44", "i1", "a9", "4e"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("expected an error for %q", s)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt < NoPieceType; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt {
				t.Errorf("%v %v: expected type %v, got %v", c, pt, pt, p.Type())
			}
			if p.Color() != c {
				t.Errorf("%v %v: expected color %v, got %v", c, pt, c, p.Color())
			}
		}
	}

	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("expected NoPiece for NoPieceType")
	}
	if NoPiece.Type() != NoPieceType || NoPiece.Color() != NoColor {
		t.Error("expected NoPiece to decode to the sentinels")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Error("expected Other to flip the color")
	}
}
