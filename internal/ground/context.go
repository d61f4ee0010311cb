package ground

import "github.com/chesskit/ground/internal/board"

// UserMove is a finished move intention reported to the embedding game logic.
// Promotion is NoPieceType for ordinary moves.
type UserMove struct {
	Orig      board.Square
	Dest      board.Square
	Promotion board.PieceType
}

// WidgetContext lets board components ask the owning widget for repaints.
// QueueDrawSquare invalidates a single cell; the widget coalesces requests.
type WidgetContext interface {
	QueueDrawSquare(sq board.Square)
	QueueDraw()
}

// BoardState is what the overlay needs from the surrounding application: the
// legality oracle, the glyphs to paint, and which side sits at the bottom of
// the widget. LegalMove must be a pure query, safe for any role.
type BoardState interface {
	LegalMove(orig, dest board.Square, promotion board.PieceType) bool
	PieceSet() *PieceSet
	Orientation() board.Color
}

// EventContext carries a pointer event to a handler: the widget for redraw
// scheduling, the square under the cursor (NoSquare when off the board), and
// the channel finished moves are reported on.
type EventContext struct {
	widget WidgetContext
	square board.Square
	moves  chan<- UserMove
}

// NewEventContext builds the context for one pointer event.
func NewEventContext(widget WidgetContext, square board.Square, moves chan<- UserMove) *EventContext {
	return &EventContext{widget: widget, square: square, moves: moves}
}

// Widget returns the owning widget's redraw scheduler.
func (c *EventContext) Widget() WidgetContext {
	return c.widget
}

// Square returns the square under the cursor, or NoSquare.
func (c *EventContext) Square() board.Square {
	return c.square
}

// Emit reports a finished move. Fire and forget: the send never blocks the
// event handler; a full channel drops the move.
func (c *EventContext) Emit(m UserMove) {
	select {
	case c.moves <- m:
	default:
	}
}
