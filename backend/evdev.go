package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall"

	"github.com/Alia5/inputmux/input"
	"github.com/Alia5/inputmux/keycode"
)

// Event types and codes from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02

	synReport = 0x00

	relX      = 0x00
	relY      = 0x01
	relHWheel = 0x06
	relWheel  = 0x08

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnSide   = 0x113
	btnExtra  = 0x114
)

// EV_KEY values.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

var evdevButtons = map[uint16]input.Button{
	btnLeft:   input.ButtonLeft,
	btnRight:  input.ButtonRight,
	btnMiddle: input.ButtonMiddle,
	btnSide:   input.ButtonBack,
	btnExtra:  input.ButtonForward,
}

// evdevRecord mirrors struct input_event without the timestamp.
type evdevRecord struct {
	Type  uint16
	Code  uint16
	Value int32
}

type evdevConverter struct {
	table *keycode.Table
}

func newEvdevConverter() *evdevConverter {
	return &evdevConverter{table: keycode.Linux}
}

func (c *evdevConverter) convert(r evdevRecord, emit func(input.Event)) {
	switch r.Type {
	case evKey:
		var dir input.Direction
		switch r.Value {
		case keyPressed, keyRepeated:
			dir = input.Down
		case keyReleased:
			dir = input.Up
		default:
			return
		}
		if b, ok := evdevButtons[r.Code]; ok {
			emit(input.KeyEvent{Direction: dir, Kind: b})
			return
		}
		if k, ok := c.table.FromNative(keycode.Code(r.Code)); ok {
			emit(input.KeyEvent{Direction: dir, Kind: k})
		}
	case evRel:
		if r.Value == 0 {
			return
		}
		switch r.Code {
		case relX:
			emit(input.MouseMove{Axis: input.X, Delta: int(r.Value)})
		case relY:
			emit(input.MouseMove{Axis: input.Y, Delta: int(r.Value)})
		case relWheel:
			emit(input.MouseScroll{Delta: int(r.Value) * pixelsPerLine})
		}
	}
}

// readEvdev drives one device until it closes. read returns the next record
// and must be unblocked by stop; ctx cancellation calls stop. A vanished
// device (ENODEV) or a cancelled ctx ends the loop with nil, any other read
// error is returned.
func readEvdev(ctx context.Context, read func() (evdevRecord, error), stop func(), logger *slog.Logger, emit func(input.Event)) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	conv := newEvdevConverter()
	for {
		r, err := read()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, syscall.ENODEV) {
				logger.Info("Input device removed")
				return nil
			}
			return err
		}
		conv.convert(r, emit)
	}
}

// planEvdev returns the records to write to the uinput device for ev,
// terminated by a SYN_REPORT. Scroll deltas go to both wheels in whole
// notches; wheel carries the rest, and a scroll shorter than a notch plans
// nothing.
func planEvdev(ev input.Event, wheel *wheelAccumulator) ([]evdevRecord, error) {
	syn := evdevRecord{Type: evSyn, Code: synReport}
	var r evdevRecord
	switch e := ev.(type) {
	case input.MouseMove:
		switch e.Axis {
		case input.X:
			r = evdevRecord{Type: evRel, Code: relX, Value: int32(e.Delta)}
		case input.Y:
			r = evdevRecord{Type: evRel, Code: relY, Value: int32(e.Delta)}
		default:
			return nil, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
		}
	case input.MouseScroll:
		notches := int32(wheel.step(e.Delta, pixelsPerLine))
		if notches == 0 {
			return nil, nil
		}
		return []evdevRecord{
			{Type: evRel, Code: relWheel, Value: notches},
			{Type: evRel, Code: relHWheel, Value: notches},
			syn,
		}, nil
	case input.KeyEvent:
		value := int32(keyPressed)
		if e.Direction == input.Up {
			value = keyReleased
		}
		switch k := e.Kind.(type) {
		case input.Button:
			code, ok := evdevButtonCode(k)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
			}
			r = evdevRecord{Type: evKey, Code: code, Value: value}
		case input.Key:
			code, ok := keycode.Linux.ToNative(k)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
			}
			r = evdevRecord{Type: evKey, Code: uint16(code), Value: value}
		default:
			return nil, fmt.Errorf("%w: %s", ErrNotRepresentable, ev)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrNotRepresentable, ev)
	}
	return []evdevRecord{r, syn}, nil
}

func evdevButtonCode(b input.Button) (uint16, bool) {
	for code, btn := range evdevButtons {
		if btn == b {
			return code, true
		}
	}
	return 0, false
}

// evdevCapabilities lists what the uinput injection device declares.
func evdevCapabilities() map[uint16][]uint16 {
	keys := make([]uint16, 0, keycode.Linux.Len()+len(evdevButtons))
	for _, k := range keycode.Linux.Keys() {
		code, _ := keycode.Linux.ToNative(k)
		keys = append(keys, uint16(code))
	}
	for _, b := range []input.Button{input.ButtonLeft, input.ButtonRight, input.ButtonMiddle, input.ButtonBack, input.ButtonForward} {
		code, _ := evdevButtonCode(b)
		keys = append(keys, code)
	}
	return map[uint16][]uint16{
		evKey: keys,
		evRel: {relX, relY, relHWheel, relWheel},
	}
}

// evdevCapturable reports whether a device with the given event types can
// feed a capture source.
func evdevCapturable(types []uint16) bool {
	for _, t := range types {
		if t == evKey || t == evRel {
			return true
		}
	}
	return false
}
