package backend

import "github.com/Alia5/inputmux/input"

// modifierEdges turns successive modifier flag words into key transitions.
// A flags-changed record only carries the new mask; whether the key went down
// or up follows from comparing it with the previous mask.
//
// One value lives for one hook installation.
type modifierEdges struct {
	prev uint64
}

// next compares flags with the previous mask and returns the direction of
// the change. ok is false when the mask did not change.
func (m *modifierEdges) next(flags uint64) (dir input.Direction, ok bool) {
	prev := m.prev
	m.prev = flags
	switch {
	case flags > prev:
		return input.Down, true
	case flags < prev:
		return input.Up, true
	default:
		return input.Down, false
	}
}
