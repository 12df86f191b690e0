// Package keycode maps canonical keys to platform-native key codes.
//
// Every table is a bijection over the pairs it declares. Codes and keys
// outside that set map to nothing in either direction, which is how
// unsupported keys are filtered out instead of raising errors.
package keycode

import (
	"fmt"
	"sort"

	"github.com/Alia5/inputmux/input"
)

// Code is a platform-native key code.
type Code uint16

// Pair binds one canonical key to one native code.
type Pair struct {
	Key  input.Key
	Code Code
}

// Table is an immutable bidirectional key-code mapping.
type Table struct {
	name     string
	toNative map[input.Key]Code
	toKey    map[Code]input.Key
	keys     []input.Key
}

// NewTable builds a table, rejecting duplicate keys, duplicate codes and
// undeclared keys.
func NewTable(name string, pairs []Pair) (*Table, error) {
	t := &Table{
		name:     name,
		toNative: make(map[input.Key]Code, len(pairs)),
		toKey:    make(map[Code]input.Key, len(pairs)),
		keys:     make([]input.Key, 0, len(pairs)),
	}
	for _, p := range pairs {
		if !p.Key.Valid() {
			return nil, fmt.Errorf("keycode %s: undeclared key %d", name, uint16(p.Key))
		}
		if prev, ok := t.toNative[p.Key]; ok {
			return nil, fmt.Errorf("keycode %s: key %s mapped twice (%d, %d)", name, p.Key, prev, p.Code)
		}
		if prev, ok := t.toKey[p.Code]; ok {
			return nil, fmt.Errorf("keycode %s: code %d mapped twice (%s, %s)", name, p.Code, prev, p.Key)
		}
		t.toNative[p.Key] = p.Code
		t.toKey[p.Code] = p.Key
		t.keys = append(t.keys, p.Key)
	}
	sort.Slice(t.keys, func(i, j int) bool { return t.keys[i] < t.keys[j] })
	return t, nil
}

// MustTable is NewTable for static package-level tables.
func MustTable(name string, pairs []Pair) *Table {
	t, err := NewTable(name, pairs)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the platform name of the table.
func (t *Table) Name() string { return t.name }

// ToNative returns the native code for k.
func (t *Table) ToNative(k input.Key) (Code, bool) {
	c, ok := t.toNative[k]
	return c, ok
}

// FromNative returns the key for a native code.
func (t *Table) FromNative(c Code) (input.Key, bool) {
	k, ok := t.toKey[c]
	return k, ok
}

// Keys returns the declared keys in ascending order.
func (t *Table) Keys() []input.Key {
	out := make([]input.Key, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of declared pairs.
func (t *Table) Len() int { return len(t.keys) }

// ForPlatform returns the table for a GOOS value.
func ForPlatform(goos string) (*Table, bool) {
	switch goos {
	case "darwin":
		return Darwin, true
	case "linux":
		return Linux, true
	case "windows":
		return Windows, true
	}
	return nil, false
}
