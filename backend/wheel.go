package backend

// Scroll deltas in input.MouseScroll are pixel-equivalent. One wheel notch
// is one line, and a line is pixelsPerLine pixels, the Quartz default.
const (
	pixelsPerLine = 10
	// wheelDelta is WHEEL_DELTA, the Win32 mouseData units per notch.
	wheelDelta    = 120
	win32PerPixel = wheelDelta / pixelsPerLine
)

// wheelAccumulator converts a stream of deltas into a coarser unit, carrying
// the remainder into the next call so that no scroll is lost.
type wheelAccumulator struct {
	rem int
}

// step adds delta and returns how many whole units of size per are complete.
func (a *wheelAccumulator) step(delta, per int) int {
	a.rem += delta
	n := a.rem / per
	a.rem -= n * per
	return n
}
