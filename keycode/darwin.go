package keycode

import "github.com/Alia5/inputmux/input"

// Darwin holds macOS virtual key codes (kVK_* from HIToolbox/Events.h).
var Darwin = MustTable("darwin", []Pair{
	{input.KeyA, 0}, {input.KeyS, 1}, {input.KeyD, 2}, {input.KeyF, 3},
	{input.KeyH, 4}, {input.KeyG, 5}, {input.KeyZ, 6}, {input.KeyX, 7},
	{input.KeyC, 8}, {input.KeyV, 9}, {input.KeyB, 11}, {input.KeyQ, 12},
	{input.KeyW, 13}, {input.KeyE, 14}, {input.KeyR, 15}, {input.KeyY, 16},
	{input.KeyT, 17}, {input.Key1, 18}, {input.Key2, 19}, {input.Key3, 20},
	{input.Key4, 21}, {input.Key6, 22}, {input.Key5, 23}, {input.KeyEqual, 24},
	{input.Key9, 25}, {input.Key7, 26}, {input.KeyMinus, 27}, {input.Key8, 28},
	{input.Key0, 29}, {input.KeyRightBrace, 30}, {input.KeyO, 31}, {input.KeyU, 32},
	{input.KeyLeftBrace, 33}, {input.KeyI, 34}, {input.KeyP, 35}, {input.KeyEnter, 36},
	{input.KeyL, 37}, {input.KeyJ, 38}, {input.KeyApostrophe, 39}, {input.KeyK, 40},
	{input.KeySemicolon, 41}, {input.KeyBackslash, 42}, {input.KeyComma, 43}, {input.KeySlash, 44},
	{input.KeyN, 45}, {input.KeyM, 46}, {input.KeyDot, 47}, {input.KeyTab, 48},
	{input.KeySpace, 49}, {input.KeyGrave, 50}, {input.KeyBackspace, 51}, {input.KeyEsc, 53},

	// Modifiers. These arrive as FlagsChanged events, not KeyDown/KeyUp.
	{input.KeyRightMeta, 54},
	{input.KeyLeftMeta, 55},
	{input.KeyLeftShift, 56},
	{input.KeyCapsLock, 57},
	{input.KeyLeftAlt, 58},
	{input.KeyLeftCtrl, 59},
	{input.KeyRightShift, 60},
	{input.KeyRightAlt, 61},
	{input.KeyRightCtrl, 62},
	{input.KeyFn, 63},

	{input.KeyF17, 64},
	{input.KeyKpDot, 65},
	{input.KeyKpAsterisk, 67},
	{input.KeyKpPlus, 69},
	{input.KeyNumLock, 71}, // kVK_ANSI_KeypadClear
	{input.KeyVolumeUp, 72},
	{input.KeyVolumeDown, 73},
	{input.KeyMute, 74},
	{input.KeyKpSlash, 75},
	{input.KeyKpEnter, 76},
	{input.KeyKpMinus, 78},
	{input.KeyF18, 79},
	{input.KeyF19, 80},
	{input.KeyKp0, 82}, {input.KeyKp1, 83}, {input.KeyKp2, 84}, {input.KeyKp3, 85},
	{input.KeyKp4, 86}, {input.KeyKp5, 87}, {input.KeyKp6, 88}, {input.KeyKp7, 89},
	{input.KeyF20, 90},
	{input.KeyKp8, 91}, {input.KeyKp9, 92},

	{input.KeyF5, 96}, {input.KeyF6, 97}, {input.KeyF7, 98}, {input.KeyF3, 99},
	{input.KeyF8, 100}, {input.KeyF9, 101}, {input.KeyF11, 103}, {input.KeyF13, 105},
	{input.KeyF16, 106}, {input.KeyF14, 107}, {input.KeyF10, 109}, {input.KeyMenu, 110},
	{input.KeyF12, 111}, {input.KeyF15, 113}, {input.KeyInsert, 114}, // kVK_Help
	{input.KeyHome, 115}, {input.KeyPageUp, 116}, {input.KeyDelete, 117}, {input.KeyF4, 118},
	{input.KeyEnd, 119}, {input.KeyF2, 120}, {input.KeyPageDown, 121}, {input.KeyF1, 122},
	{input.KeyLeft, 123}, {input.KeyRight, 124}, {input.KeyDown, 125}, {input.KeyUp, 126},
})
