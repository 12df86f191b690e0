package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("invalid event syntax")

// ParseKey looks up a key by name. Lookup is case-insensitive.
func ParseKey(s string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("%w: unknown key %q", ErrSyntax, s)
}

// ParseButton looks up a pointer button by name.
func ParseButton(s string) (Button, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for b, n := range buttonNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown button %q", ErrSyntax, s)
}

// ParseDirection accepts "down"/"press" and "up"/"release".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down", "press":
		return Down, nil
	case "up", "release":
		return Up, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrSyntax, s)
}

// ParseAxis accepts "x" or "y".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	}
	return 0, fmt.Errorf("%w: unknown axis %q", ErrSyntax, s)
}

// ParseEvent parses the colon separated form produced by Event.String:
//
//	key:down:a
//	button:up:left
//	move:x:10
//	scroll:-3
func ParseEvent(s string) (Event, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	switch strings.ToLower(parts[0]) {
	case "key", "button":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q: want %s:<direction>:<name>", ErrSyntax, s, parts[0])
		}
		dir, err := ParseDirection(parts[1])
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(parts[0], "button") {
			b, err := ParseButton(parts[2])
			if err != nil {
				return nil, err
			}
			return KeyEvent{Direction: dir, Kind: b}, nil
		}
		k, err := ParseKey(parts[2])
		if err != nil {
			return nil, err
		}
		return KeyEvent{Direction: dir, Kind: k}, nil
	case "move":
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q: want move:<axis>:<delta>", ErrSyntax, s)
		}
		axis, err := ParseAxis(parts[1])
		if err != nil {
			return nil, err
		}
		delta, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad delta: %v", ErrSyntax, s, err)
		}
		return MouseMove{Axis: axis, Delta: delta}, nil
	case "scroll":
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q: want scroll:<delta>", ErrSyntax, s)
		}
		delta, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad delta: %v", ErrSyntax, s, err)
		}
		return MouseScroll{Delta: delta}, nil
	}
	return nil, fmt.Errorf("%w: %q: unknown event type", ErrSyntax, s)
}
