package keycode

import "github.com/Alia5/inputmux/input"

// Linux holds evdev KEY_* codes (linux/input-event-codes.h).
var Linux = MustTable("linux", []Pair{
	{input.KeyEsc, 1},
	{input.Key1, 2}, {input.Key2, 3}, {input.Key3, 4}, {input.Key4, 5}, {input.Key5, 6},
	{input.Key6, 7}, {input.Key7, 8}, {input.Key8, 9}, {input.Key9, 10}, {input.Key0, 11},
	{input.KeyMinus, 12},
	{input.KeyEqual, 13},
	{input.KeyBackspace, 14},
	{input.KeyTab, 15},
	{input.KeyQ, 16}, {input.KeyW, 17}, {input.KeyE, 18}, {input.KeyR, 19}, {input.KeyT, 20},
	{input.KeyY, 21}, {input.KeyU, 22}, {input.KeyI, 23}, {input.KeyO, 24}, {input.KeyP, 25},
	{input.KeyLeftBrace, 26},
	{input.KeyRightBrace, 27},
	{input.KeyEnter, 28},
	{input.KeyLeftCtrl, 29},
	{input.KeyA, 30}, {input.KeyS, 31}, {input.KeyD, 32}, {input.KeyF, 33}, {input.KeyG, 34},
	{input.KeyH, 35}, {input.KeyJ, 36}, {input.KeyK, 37}, {input.KeyL, 38},
	{input.KeySemicolon, 39},
	{input.KeyApostrophe, 40},
	{input.KeyGrave, 41},
	{input.KeyLeftShift, 42},
	{input.KeyBackslash, 43},
	{input.KeyZ, 44}, {input.KeyX, 45}, {input.KeyC, 46}, {input.KeyV, 47}, {input.KeyB, 48},
	{input.KeyN, 49}, {input.KeyM, 50},
	{input.KeyComma, 51},
	{input.KeyDot, 52},
	{input.KeySlash, 53},
	{input.KeyRightShift, 54},
	{input.KeyKpAsterisk, 55},
	{input.KeyLeftAlt, 56},
	{input.KeySpace, 57},
	{input.KeyCapsLock, 58},
	{input.KeyF1, 59}, {input.KeyF2, 60}, {input.KeyF3, 61}, {input.KeyF4, 62}, {input.KeyF5, 63},
	{input.KeyF6, 64}, {input.KeyF7, 65}, {input.KeyF8, 66}, {input.KeyF9, 67}, {input.KeyF10, 68},
	{input.KeyNumLock, 69},
	{input.KeyScrollLock, 70},
	{input.KeyKp7, 71}, {input.KeyKp8, 72}, {input.KeyKp9, 73},
	{input.KeyKpMinus, 74},
	{input.KeyKp4, 75}, {input.KeyKp5, 76}, {input.KeyKp6, 77},
	{input.KeyKpPlus, 78},
	{input.KeyKp1, 79}, {input.KeyKp2, 80}, {input.KeyKp3, 81}, {input.KeyKp0, 82},
	{input.KeyKpDot, 83},
	{input.KeyF11, 87},
	{input.KeyF12, 88},
	{input.KeyKpEnter, 96},
	{input.KeyRightCtrl, 97},
	{input.KeyKpSlash, 98},
	{input.KeyPrintScreen, 99}, // KEY_SYSRQ
	{input.KeyRightAlt, 100},
	{input.KeyHome, 102},
	{input.KeyUp, 103},
	{input.KeyPageUp, 104},
	{input.KeyLeft, 105},
	{input.KeyRight, 106},
	{input.KeyEnd, 107},
	{input.KeyDown, 108},
	{input.KeyPageDown, 109},
	{input.KeyInsert, 110},
	{input.KeyDelete, 111},
	{input.KeyMute, 113},
	{input.KeyVolumeDown, 114},
	{input.KeyVolumeUp, 115},
	{input.KeyPause, 119},
	{input.KeyLeftMeta, 125},
	{input.KeyRightMeta, 126},
	{input.KeyMenu, 127}, // KEY_COMPOSE
	{input.KeyF13, 183}, {input.KeyF14, 184}, {input.KeyF15, 185}, {input.KeyF16, 186},
	{input.KeyF17, 187}, {input.KeyF18, 188}, {input.KeyF19, 189}, {input.KeyF20, 190},
	{input.KeyF21, 191}, {input.KeyF22, 192}, {input.KeyF23, 193}, {input.KeyF24, 194},
	{input.KeyFn, 464},
})
