package ground

import (
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/chesskit/ground/internal/board"
)

// Promotable owns the pawn promotion interaction. While a choice is pending
// it tracks which square the pointer hovers and for how long, renders the
// piece picker over the board, and resolves a click into either a finished
// promotion move or a cancellation.
//
// All methods run synchronously inside the widget's event handlers; there is
// no internal locking and no background work.
type Promotable struct {
	promoting *promoting

	// now is the monotonic clock, swappable in tests.
	now func() time.Time
}

// promoting is the in-flight promotion: the immutable move intent plus the
// hover animation state.
type promoting struct {
	orig  board.Square
	dest  board.Square
	hover board.Square // NoSquare when the pointer left the board
	since time.Time    // when hover last changed
}

// NewPromotable returns an idle Promotable.
func NewPromotable() *Promotable {
	return &Promotable{now: time.Now}
}

// StartPromoting opens the picker for a pawn moving orig to dest. The
// destination cell starts out hovered.
func (pr *Promotable) StartPromoting(orig, dest board.Square) {
	pr.promoting = &promoting{
		orig:  orig,
		dest:  dest,
		hover: dest,
		since: pr.now(),
	}
}

// IsPromoting reports whether a promotion of the pawn from orig is pending.
func (pr *Promotable) IsPromoting(orig board.Square) bool {
	return pr.promoting != nil && pr.promoting.orig == orig
}

// IsAnimating reports whether the hover highlight is still easing. The
// owning widget keeps scheduling frames while this is true.
func (pr *Promotable) IsAnimating() bool {
	p := pr.promoting
	return p != nil && p.hover != board.NoSquare && p.elapsed(pr.now()) < 1.0
}

// QueueAnimation invalidates the hovered cell, and nothing else.
func (pr *Promotable) QueueAnimation(ctx WidgetContext) {
	if p := pr.promoting; p != nil && p.hover != board.NoSquare {
		ctx.QueueDrawSquare(p.hover)
	}
}

// MouseMove updates the hovered square. Called around the mutation so both
// the cell losing the highlight and the cell gaining it get repainted.
func (pr *Promotable) MouseMove(ctx *EventContext) {
	pr.QueueAnimation(ctx.Widget())

	if p := pr.promoting; p != nil && p.hover != ctx.Square() {
		p.hover = ctx.Square()
		p.since = pr.now()
	}

	pr.QueueAnimation(ctx.Widget())
}

// MouseDown resolves a click while the picker is open and always closes it.
// A click on the destination file, on a cell whose rank maps to a role the
// oracle accepts, emits the move and reports the event handled. Any other
// click is a cancellation: the pawn snaps back visually and the event falls
// through to normal handling.
func (pr *Promotable) MouseDown(pieces *Pieces, state BoardState, ctx *EventContext) bool {
	p := pr.promoting
	if p == nil {
		return false
	}
	pr.promoting = nil
	ctx.Widget().QueueDraw()

	// Park the pawn on the destination square; if the click cancels, its
	// drift animation carries it back to where it logically sits.
	if fig := pieces.FigurineAt(p.orig); fig != nil {
		fig.Pos = SquarePos(p.dest)
		fig.Since = pr.now()
	}

	sq := ctx.Square()
	if sq != board.NoSquare && sq.File() == p.dest.File() {
		if role, ok := p.roleAt(sq.Rank()); ok && state.LegalMove(p.orig, p.dest, role) {
			ctx.Emit(UserMove{Orig: p.orig, Dest: p.dest, Promotion: role})
			return true
		}
	}

	return false
}

// Draw paints the picker. The context must already be transformed to board
// coordinates.
func (pr *Promotable) Draw(dc *gg.Context, state BoardState) {
	if pr.promoting != nil {
		pr.promoting.draw(dc, state, pr.now())
	}
}

func (p *promoting) elapsed(now time.Time) float64 {
	return now.Sub(p.since).Seconds()
}

// orientation is the promoting side, recovered from which back rank the pawn
// reached.
func (p *promoting) orientation() board.Color {
	if p.dest.Rank() > 4 {
		return board.White
	}
	return board.Black
}

// rankOffset maps a promotion-menu index to a board rank, mirrored so the
// Queen cell always sits on the promoting side's back rank.
func (p *promoting) rankOffset(i int) int {
	if p.orientation() == board.White {
		return 7 - i
	}
	return i
}

// roleAt resolves a clicked rank to the role shown there, if any.
func (p *promoting) roleAt(rank int) (board.PieceType, bool) {
	for i, role := range board.PromotionRoles {
		if rank == p.rankOffset(i) {
			return role, true
		}
	}
	return board.NoPieceType, false
}

func (p *promoting) draw(dc *gg.Context, state BoardState, now time.Time) {
	// demote the rest of the board
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawRectangle(0, 0, 8, 8)
	dc.Fill()

	for i, role := range board.PromotionRoles {
		if !state.LegalMove(p.orig, p.dest, role) {
			continue
		}

		rank := p.rankOffset(i)
		file := p.dest.File()
		light := (file+rank)&1 == 1

		dc.Push()
		dc.DrawRectangle(float64(file), 7-float64(rank), 1, 1)
		dc.ClipPreserve()

		if light {
			dc.SetRGB(0.25, 0.25, 0.25)
		} else {
			dc.SetRGB(0.18, 0.18, 0.18)
		}
		dc.Fill()

		radius := 0.5
		if p.hover != board.NoSquare && p.hover.File() == file && p.hover.Rank() == rank {
			t := p.elapsed(now)
			dc.SetRGB(Ease(0.69, 1.0, t), Ease(0.69, 0.65, t), Ease(0.69, 0.0, t))
			radius = Ease(0.5, math.Hypot(0.5, 0.5), t)
		} else {
			dc.SetRGB(0.69, 0.69, 0.69)
		}

		cx, cy := float64(file)+0.5, 7.5-float64(rank)
		dc.DrawCircle(cx, cy, radius)
		dc.Fill()

		dc.Translate(cx, cy)
		if state.Orientation() == board.Black {
			// the widget transform spins the board; keep the glyph upright
			dc.Rotate(math.Pi)
		}
		dc.Scale(math.Sqrt2*radius, math.Sqrt2*radius)
		dc.Translate(-0.5, -0.5)
		state.PieceSet().DrawPiece(dc, board.NewPiece(role, p.orientation()))

		dc.Pop()
	}
}
