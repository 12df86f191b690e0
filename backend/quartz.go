package backend

import (
	"fmt"

	"github.com/Alia5/inputmux/input"
	"github.com/Alia5/inputmux/keycode"
)

// Quartz event types (CGEventType).
const (
	cgLeftMouseDown     = 1
	cgLeftMouseUp       = 2
	cgRightMouseDown    = 3
	cgRightMouseUp      = 4
	cgMouseMoved        = 5
	cgLeftMouseDragged  = 6
	cgRightMouseDragged = 7
	cgKeyDown           = 10
	cgKeyUp             = 11
	cgFlagsChanged      = 12
	cgScrollWheel       = 22
	cgOtherMouseDown    = 25
	cgOtherMouseUp      = 26
	cgOtherMouseDragged = 27

	cgTapDisabledByTimeout   = 0xFFFFFFFE
	cgTapDisabledByUserInput = 0xFFFFFFFF
)

// CGMouseButton numbers.
const (
	cgButtonLeft   = 0
	cgButtonRight  = 1
	cgButtonCenter = 2
	cgButtonBack   = 3
	cgButtonFwd    = 4
)

// Modifier bits compared across flags-changed records: the device
// independent modifier masks plus the NX_DEVICE* side bits, so pressing the
// second shift while the first is held is still an increase.
const cgModifierMask = 0x00010000 | // alpha shift
	0x00020000 | // shift
	0x00040000 | // control
	0x00080000 | // alternate
	0x00100000 | // command
	0x00800000 | // secondary fn
	0x0000207F // device side bits

// injectedMarker tags events synthesized by this module so capture can skip
// them. Stored in kCGEventSourceUserData on macOS and dwExtraInfo on Windows.
const injectedMarker = 0x494E4D58

// quartzRecord is the subset of a CGEvent that conversion needs.
type quartzRecord struct {
	Type     uint32
	Keycode  uint16
	Flags    uint64
	Button   int64
	DeltaX   int64
	DeltaY   int64
	Scroll   int64
	UserData int64
}

// quartzConverter turns tap records into canonical events. One value lives
// for one tap installation.
type quartzConverter struct {
	table *keycode.Table
	mods  modifierEdges
}

func newQuartzConverter() *quartzConverter {
	return &quartzConverter{table: keycode.Darwin}
}

func quartzButton(number int64) (input.Button, bool) {
	switch number {
	case cgButtonLeft:
		return input.ButtonLeft, true
	case cgButtonRight:
		return input.ButtonRight, true
	case cgButtonCenter:
		return input.ButtonMiddle, true
	case cgButtonBack:
		return input.ButtonBack, true
	case cgButtonFwd:
		return input.ButtonForward, true
	}
	return 0, false
}

func (c *quartzConverter) key(code uint16, dir input.Direction, emit func(input.Event)) {
	k, ok := c.table.FromNative(keycode.Code(code))
	if !ok {
		return
	}
	emit(input.KeyEvent{Direction: dir, Kind: k})
}

func (c *quartzConverter) convert(r quartzRecord, emit func(input.Event)) {
	if r.UserData == injectedMarker {
		return
	}
	switch r.Type {
	case cgKeyDown:
		c.key(r.Keycode, input.Down, emit)
	case cgKeyUp:
		c.key(r.Keycode, input.Up, emit)
	case cgFlagsChanged:
		dir, changed := c.mods.next(r.Flags & cgModifierMask)
		if !changed {
			return
		}
		c.key(r.Keycode, dir, emit)
	case cgLeftMouseDown:
		emit(input.Press(input.ButtonLeft))
	case cgLeftMouseUp:
		emit(input.Release(input.ButtonLeft))
	case cgRightMouseDown:
		emit(input.Press(input.ButtonRight))
	case cgRightMouseUp:
		emit(input.Release(input.ButtonRight))
	case cgOtherMouseDown, cgOtherMouseUp:
		b, ok := quartzButton(r.Button)
		if !ok {
			return
		}
		dir := input.Down
		if r.Type == cgOtherMouseUp {
			dir = input.Up
		}
		emit(input.KeyEvent{Direction: dir, Kind: b})
	case cgMouseMoved, cgLeftMouseDragged, cgRightMouseDragged, cgOtherMouseDragged:
		if r.DeltaX != 0 {
			emit(input.MouseMove{Axis: input.X, Delta: int(r.DeltaX)})
		}
		if r.DeltaY != 0 {
			emit(input.MouseMove{Axis: input.Y, Delta: int(r.DeltaY)})
		}
	case cgScrollWheel:
		if r.Scroll != 0 {
			emit(input.MouseScroll{Delta: int(r.Scroll)})
		}
	}
}

// quartzEventMask selects every record type convert understands.
func quartzEventMask() uint64 {
	var mask uint64
	for _, t := range []uint32{
		cgLeftMouseDown, cgLeftMouseUp, cgRightMouseDown, cgRightMouseUp,
		cgMouseMoved, cgLeftMouseDragged, cgRightMouseDragged,
		cgKeyDown, cgKeyUp, cgFlagsChanged, cgScrollWheel,
		cgOtherMouseDown, cgOtherMouseUp, cgOtherMouseDragged,
	} {
		mask |= 1 << t
	}
	return mask
}

type quartzActionKind uint8

const (
	quartzMouse quartzActionKind = iota + 1
	quartzScroll
)

// quartzAction is one CGEvent to create and post.
type quartzAction struct {
	Kind   quartzActionKind
	Type   uint32
	Button uint32
	X, Y   float64
	Wheel  int32
}

type point struct {
	X, Y float64
}

// planQuartz translates ev into the CGEvent to post. cur is the current
// pointer location.
func planQuartz(ev input.Event, cur point) (quartzAction, error) {
	switch e := ev.(type) {
	case input.MouseScroll:
		return quartzAction{Kind: quartzScroll, Wheel: int32(e.Delta)}, nil
	case input.MouseMove:
		target := cur
		switch e.Axis {
		case input.X:
			target.X += float64(e.Delta)
		case input.Y:
			target.Y += float64(e.Delta)
		default:
			return quartzAction{}, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
		}
		return quartzAction{Kind: quartzMouse, Type: cgMouseMoved, Button: cgButtonLeft, X: target.X, Y: target.Y}, nil
	case input.KeyEvent:
		b, ok := e.Kind.(input.Button)
		if !ok {
			// Keyboard synthesis is not implemented for Quartz.
			return quartzAction{}, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
		}
		a := quartzAction{Kind: quartzMouse, X: cur.X, Y: cur.Y}
		down := e.Direction == input.Down
		switch b {
		case input.ButtonLeft:
			a.Button = cgButtonLeft
			a.Type = edge(down, cgLeftMouseDown, cgLeftMouseUp)
		case input.ButtonRight:
			a.Button = cgButtonRight
			a.Type = edge(down, cgRightMouseDown, cgRightMouseUp)
		case input.ButtonMiddle:
			a.Button = cgButtonCenter
			a.Type = edge(down, cgOtherMouseDown, cgOtherMouseUp)
		case input.ButtonBack:
			a.Button = cgButtonBack
			a.Type = edge(down, cgOtherMouseDown, cgOtherMouseUp)
		case input.ButtonForward:
			a.Button = cgButtonFwd
			a.Type = edge(down, cgOtherMouseDown, cgOtherMouseUp)
		default:
			return quartzAction{}, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
		}
		return a, nil
	}
	return quartzAction{}, fmt.Errorf("%w: %v", ErrNotRepresentable, ev)
}

func edge(down bool, downType, upType uint32) uint32 {
	if down {
		return downType
	}
	return upType
}
