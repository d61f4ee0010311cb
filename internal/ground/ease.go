// Package ground implements the interactive chessboard overlay: the
// coordinate mapping between widget pixels and squares, the animated piece
// figurines, and the pawn promotion picker. It is toolkit-agnostic apart from
// the affine matrix type; the embedding widget delivers pointer events and
// schedules repaints through the WidgetContext interface.
package ground

// Ease interpolates from start to end as elapsed goes from 0 to 1 seconds,
// using a cubic in-out curve. The result is clamped: elapsed <= 0 yields
// start, elapsed >= 1 yields end. Deterministic for a given elapsed, so
// animation frames can be sampled at fixed times in tests.
func Ease(start, end, elapsed float64) float64 {
	if elapsed <= 0 {
		return start
	}
	if elapsed >= 1 {
		return end
	}
	var f float64
	if elapsed < 0.5 {
		f = 4 * elapsed * elapsed * elapsed
	} else {
		u := 2*elapsed - 2
		f = 0.5*u*u*u + 1
	}
	return start + (end-start)*f
}
