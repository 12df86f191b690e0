package backend

import (
	"fmt"

	"github.com/Alia5/inputmux/input"
	"github.com/Alia5/inputmux/keycode"
)

// Window messages delivered to low-level hooks.
const (
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C
)

const (
	xButton1 = 0x0001
	xButton2 = 0x0002
)

// mouse_event and keybd_event flags.
const (
	mouseEventLeftDown   = 0x0002
	mouseEventLeftUp     = 0x0004
	mouseEventRightDown  = 0x0008
	mouseEventRightUp    = 0x0010
	mouseEventMiddleDown = 0x0020
	mouseEventMiddleUp   = 0x0040
	mouseEventXDown      = 0x0080
	mouseEventXUp        = 0x0100
	mouseEventWheel      = 0x0800
	mouseEventHWheel     = 0x1000

	keyEventExtendedKey = 0x0001
	keyEventKeyUp       = 0x0002
)

// Virtual keys that need KEYEVENTF_EXTENDEDKEY to be told apart from their
// keypad or left-hand twins.
var win32Extended = map[keycode.Code]bool{
	0x21: true, 0x22: true, 0x23: true, 0x24: true, // page up/down, end, home
	0x25: true, 0x26: true, 0x27: true, 0x28: true, // arrows
	0x2C: true, 0x2D: true, 0x2E: true, // print screen, insert, delete
	0x5B: true, 0x5C: true, 0x5D: true, // windows keys, apps
	0x6F: true, 0x90: true, // keypad divide, num lock
	0xA3: true, 0xA5: true, // right control, right alt
}

// winKeyRecord is the part of KBDLLHOOKSTRUCT conversion needs.
type winKeyRecord struct {
	Msg       uintptr
	VK        uint32
	ExtraInfo uintptr
}

// winMouseRecord is the part of MSLLHOOKSTRUCT conversion needs.
type winMouseRecord struct {
	Msg       uintptr
	X, Y      int32
	MouseData uint32
	ExtraInfo uintptr
}

func convertWinKey(r winKeyRecord, emit func(input.Event)) {
	if r.ExtraInfo == injectedMarker {
		return
	}
	var dir input.Direction
	switch r.Msg {
	case wmKeyDown, wmSysKeyDown:
		dir = input.Down
	case wmKeyUp, wmSysKeyUp:
		dir = input.Up
	default:
		return
	}
	if k, ok := keycode.Windows.FromNative(keycode.Code(r.VK)); ok {
		emit(input.KeyEvent{Direction: dir, Kind: k})
	}
}

// winMouseConverter turns absolute hook coordinates into relative moves.
// One value lives for one hook installation.
type winMouseConverter struct {
	lastX, lastY int32
	seen         bool
	wheel        wheelAccumulator
}

func (c *winMouseConverter) convert(r winMouseRecord, emit func(input.Event)) {
	dx, dy := r.X-c.lastX, r.Y-c.lastY
	first := !c.seen
	c.lastX, c.lastY, c.seen = r.X, r.Y, true

	if r.ExtraInfo == injectedMarker {
		return
	}
	switch r.Msg {
	case wmMouseMove:
		if first {
			return
		}
		if dx != 0 {
			emit(input.MouseMove{Axis: input.X, Delta: int(dx)})
		}
		if dy != 0 {
			emit(input.MouseMove{Axis: input.Y, Delta: int(dy)})
		}
	case wmLButtonDown:
		emit(input.Press(input.ButtonLeft))
	case wmLButtonUp:
		emit(input.Release(input.ButtonLeft))
	case wmRButtonDown:
		emit(input.Press(input.ButtonRight))
	case wmRButtonUp:
		emit(input.Release(input.ButtonRight))
	case wmMButtonDown:
		emit(input.Press(input.ButtonMiddle))
	case wmMButtonUp:
		emit(input.Release(input.ButtonMiddle))
	case wmXButtonDown, wmXButtonUp:
		var b input.Button
		switch r.MouseData >> 16 {
		case xButton1:
			b = input.ButtonBack
		case xButton2:
			b = input.ButtonForward
		default:
			return
		}
		if r.Msg == wmXButtonDown {
			emit(input.Press(b))
		} else {
			emit(input.Release(b))
		}
	case wmMouseWheel:
		// Precision wheels report fractions of a notch; keep the rest.
		if px := c.wheel.step(int(int16(r.MouseData>>16)), win32PerPixel); px != 0 {
			emit(input.MouseScroll{Delta: px})
		}
	}
}

type win32ActionKind uint8

const (
	win32Mouse win32ActionKind = iota + 1
	win32Key
	win32Cursor
	win32Scroll
)

// win32Action is one mouse_event, keybd_event or SetCursorPos call. A
// win32Scroll action is one mouse_event per wheel.
type win32Action struct {
	Kind  win32ActionKind
	Flags uint32
	Data  uint32
	VK    uint8
	X, Y  int32
}

// planWin32 translates ev into the user32 call to make. cur is the current
// cursor position.
func planWin32(ev input.Event, curX, curY int32) (win32Action, error) {
	switch e := ev.(type) {
	case input.MouseMove:
		a := win32Action{Kind: win32Cursor, X: curX, Y: curY}
		switch e.Axis {
		case input.X:
			a.X += int32(e.Delta)
		case input.Y:
			a.Y += int32(e.Delta)
		default:
			return win32Action{}, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
		}
		return a, nil
	case input.MouseScroll:
		return win32Action{Kind: win32Scroll, Data: uint32(int32(e.Delta * win32PerPixel))}, nil
	case input.KeyEvent:
		down := e.Direction == input.Down
		switch k := e.Kind.(type) {
		case input.Button:
			a := win32Action{Kind: win32Mouse}
			switch k {
			case input.ButtonLeft:
				a.Flags = edge(down, mouseEventLeftDown, mouseEventLeftUp)
			case input.ButtonRight:
				a.Flags = edge(down, mouseEventRightDown, mouseEventRightUp)
			case input.ButtonMiddle:
				a.Flags = edge(down, mouseEventMiddleDown, mouseEventMiddleUp)
			case input.ButtonBack:
				a.Flags, a.Data = edge(down, mouseEventXDown, mouseEventXUp), xButton1
			case input.ButtonForward:
				a.Flags, a.Data = edge(down, mouseEventXDown, mouseEventXUp), xButton2
			default:
				return win32Action{}, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
			}
			return a, nil
		case input.Key:
			code, ok := keycode.Windows.ToNative(k)
			if !ok {
				return win32Action{}, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
			}
			a := win32Action{Kind: win32Key, VK: uint8(code)}
			if win32Extended[code] {
				a.Flags |= keyEventExtendedKey
			}
			if !down {
				a.Flags |= keyEventKeyUp
			}
			return a, nil
		}
	}
	return win32Action{}, fmt.Errorf("%w: %v", ErrNotRepresentable, ev)
}
