package input

import "fmt"

// Key is a symbolic keyboard key. A platform may not support every key.
type Key uint16

// KeyUnknown is never produced by a backend.
const KeyUnknown Key = 0

// Letters, digits and editing keys
const (
	KeyA Key = iota + 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	KeyEsc
	KeyBackspace
	KeyTab
	KeyEnter
	KeySpace
	KeyCapsLock
	KeyDelete
	KeyInsert

	KeyMinus
	KeyEqual
	KeyLeftBrace
	KeyRightBrace
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyDot
	KeySlash
)

// Modifiers
const (
	KeyLeftShift Key = iota + 100
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta
	KeyFn
)

// Navigation
const (
	KeyUp Key = iota + 120
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Function keys
const (
	KeyF1 Key = iota + 140
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

// Keypad
const (
	KeyKp0 Key = iota + 180
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpEnter
	KeyKpPlus
	KeyKpMinus
	KeyKpAsterisk
	KeyKpSlash
	KeyKpDot
	KeyNumLock
)

// System and media
const (
	KeyPrintScreen Key = iota + 210
	KeyScrollLock
	KeyPause
	KeyMenu
	KeyMute
	KeyVolumeUp
	KeyVolumeDown
)

// keyNames maps keys to the lower-case names used by String and ParseKey.
var keyNames = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f", KeyG: "g",
	KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l", KeyM: "m", KeyN: "n",
	KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r", KeyS: "s", KeyT: "t", KeyU: "u",
	KeyV: "v", KeyW: "w", KeyX: "x", KeyY: "y", KeyZ: "z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyCapsLock:  "capslock",
	KeyDelete:    "delete",
	KeyInsert:    "insert",

	KeyMinus:      "minus",
	KeyEqual:      "equal",
	KeyLeftBrace:  "leftbrace",
	KeyRightBrace: "rightbrace",
	KeyBackslash:  "backslash",
	KeySemicolon:  "semicolon",
	KeyApostrophe: "apostrophe",
	KeyGrave:      "grave",
	KeyComma:      "comma",
	KeyDot:        "dot",
	KeySlash:      "slash",

	KeyLeftShift:  "leftshift",
	KeyRightShift: "rightshift",
	KeyLeftCtrl:   "leftctrl",
	KeyRightCtrl:  "rightctrl",
	KeyLeftAlt:    "leftalt",
	KeyRightAlt:   "rightalt",
	KeyLeftMeta:   "leftmeta",
	KeyRightMeta:  "rightmeta",
	KeyFn:         "fn",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeyF13: "f13", KeyF14: "f14", KeyF15: "f15", KeyF16: "f16", KeyF17: "f17", KeyF18: "f18",
	KeyF19: "f19", KeyF20: "f20", KeyF21: "f21", KeyF22: "f22", KeyF23: "f23", KeyF24: "f24",

	KeyKp0: "kp0", KeyKp1: "kp1", KeyKp2: "kp2", KeyKp3: "kp3", KeyKp4: "kp4",
	KeyKp5: "kp5", KeyKp6: "kp6", KeyKp7: "kp7", KeyKp8: "kp8", KeyKp9: "kp9",
	KeyKpEnter:    "kpenter",
	KeyKpPlus:     "kpplus",
	KeyKpMinus:    "kpminus",
	KeyKpAsterisk: "kpasterisk",
	KeyKpSlash:    "kpslash",
	KeyKpDot:      "kpdot",
	KeyNumLock:    "numlock",

	KeyPrintScreen: "printscreen",
	KeyScrollLock:  "scrolllock",
	KeyPause:       "pause",
	KeyMenu:        "menu",
	KeyMute:        "mute",
	KeyVolumeUp:    "volumeup",
	KeyVolumeDown:  "volumedown",
}

// keyAliases are extra spellings accepted by ParseKey.
var keyAliases = map[string]Key{
	"escape":    KeyEsc,
	"return":    KeyEnter,
	"shift":     KeyLeftShift,
	"ctrl":      KeyLeftCtrl,
	"control":   KeyLeftCtrl,
	"alt":       KeyLeftAlt,
	"option":    KeyLeftAlt,
	"meta":      KeyLeftMeta,
	"cmd":       KeyLeftMeta,
	"super":     KeyLeftMeta,
	"win":       KeyLeftMeta,
	"period":    KeyDot,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"backquote": KeyGrave,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, n := range keyNames {
		m[n] = k
	}
	for n, k := range keyAliases {
		m[n] = k
	}
	return m
}()

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// Valid reports whether k is a declared key.
func (k Key) Valid() bool {
	_, ok := keyNames[k]
	return ok
}

// AllKeys returns every declared key in ascending order.
func AllKeys() []Key {
	keys := make([]Key, 0, len(keyNames))
	for k := Key(1); k <= KeyVolumeDown; k++ {
		if k.Valid() {
			keys = append(keys, k)
		}
	}
	return keys
}
