// ground-render renders a position to a PNG without opening a window,
// useful for generating thumbnails and for eyeballing theme changes.
package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/urfave/cli/v3"

	"github.com/chesskit/ground/internal/board"
	"github.com/chesskit/ground/internal/ground"
	"github.com/chesskit/ground/internal/ui"
)

func render(fen, theme, out string, size int, flipped bool) error {
	placement, err := board.ParsePlacement(fen)
	if err != nil {
		return fmt.Errorf("parsing position: %w", err)
	}

	set, err := ground.NewPieceSet()
	if err != nil {
		return fmt.Errorf("loading piece set: %w", err)
	}

	orientation := board.White
	if flipped {
		orientation = board.Black
	}
	th := ui.ThemeByName(theme)

	dc := gg.NewContext(size, size)
	dc.SetColor(th.Background)
	dc.Clear()
	ground.TransformContext(dc, size, size, orientation)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if (file+rank)&1 == 1 {
				dc.SetColor(th.LightSquare)
			} else {
				dc.SetColor(th.DarkSquare)
			}
			dc.DrawRectangle(float64(file), 7-float64(rank), 1, 1)
			dc.Fill()
		}
	}

	for sq, p := range placement {
		pos := ground.SquarePos(sq)
		dc.Push()
		dc.Translate(pos.X, pos.Y)
		if orientation == board.Black {
			dc.Rotate(math.Pi)
		}
		dc.Translate(-0.5, -0.5)
		set.DrawPiece(dc, p)
		dc.Pop()
	}

	return dc.SavePNG(out)
}

func main() {
	cmd := &cli.Command{
		Name:  "ground-render",
		Usage: "render a chess position to a PNG",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fen",
				Usage: "position in FEN",
				Value: board.StartPlacement,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file",
				Value: "board.png",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "image size in pixels",
				Value: 640,
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "color theme (classic, blue)",
				Value: "classic",
			},
			&cli.BoolFlag{
				Name:  "flipped",
				Usage: "show the board from Black's side",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return render(c.String("fen"), c.String("theme"), c.String("out"),
				int(c.Int("size")), c.Bool("flipped"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
