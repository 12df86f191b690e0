// Package input defines the platform-independent event model shared by every
// capture and injection backend.
//
// Events only ever carry relative deltas. Absolute pointer coordinates are a
// backend concern and never leave the backend that read them.
package input

import "fmt"

// Direction is the transition phase of a key or button.
type Direction uint8

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Axis selects which pointer axis a relative delta applies to.
type Axis uint8

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Button is a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

var buttonNames = map[Button]string{
	ButtonLeft:    "left",
	ButtonRight:   "right",
	ButtonMiddle:  "middle",
	ButtonBack:    "back",
	ButtonForward: "forward",
}

func (b Button) String() string {
	if n, ok := buttonNames[b]; ok {
		return n
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// KeyKind is either a Button or a Key: the control whose direction changed.
type KeyKind interface {
	isKeyKind()
	String() string
}

func (Button) isKeyKind() {}
func (Key) isKeyKind()    {}

// Event is one of KeyEvent, MouseMove or MouseScroll.
type Event interface {
	isEvent()
	String() string
}

// KeyEvent is a button or keyboard key transition.
type KeyEvent struct {
	Direction Direction
	Kind      KeyKind
}

// MouseMove is a relative pointer displacement on one axis.
type MouseMove struct {
	Axis  Axis
	Delta int
}

// MouseScroll is a relative scroll displacement in pixel-equivalent units;
// one wheel notch is 10. Positive values scroll up.
type MouseScroll struct {
	Delta int
}

func (KeyEvent) isEvent()    {}
func (MouseMove) isEvent()   {}
func (MouseScroll) isEvent() {}

func (e KeyEvent) String() string {
	kind := "key"
	if _, ok := e.Kind.(Button); ok {
		kind = "button"
	}
	name := "<nil>"
	if e.Kind != nil {
		name = e.Kind.String()
	}
	return fmt.Sprintf("%s:%s:%s", kind, e.Direction, name)
}

func (e MouseMove) String() string {
	return fmt.Sprintf("move:%s:%d", e.Axis, e.Delta)
}

func (e MouseScroll) String() string {
	return fmt.Sprintf("scroll:%d", e.Delta)
}

// Press returns a Down transition for k.
func Press(k KeyKind) KeyEvent { return KeyEvent{Direction: Down, Kind: k} }

// Release returns an Up transition for k.
func Release(k KeyKind) KeyEvent { return KeyEvent{Direction: Up, Kind: k} }
