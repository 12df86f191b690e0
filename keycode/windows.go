package keycode

import "github.com/Alia5/inputmux/input"

// Windows holds Win32 virtual-key codes as reported by low-level hooks,
// which distinguish left and right modifiers.
//
// The keypad Enter key shares VK_RETURN with Enter and only differs by the
// extended-key flag, so it is not declared.
var Windows = MustTable("windows", []Pair{
	{input.KeyBackspace, 0x08},
	{input.KeyTab, 0x09},
	{input.KeyEnter, 0x0D},
	{input.KeyPause, 0x13},
	{input.KeyCapsLock, 0x14},
	{input.KeyEsc, 0x1B},
	{input.KeySpace, 0x20},
	{input.KeyPageUp, 0x21},
	{input.KeyPageDown, 0x22},
	{input.KeyEnd, 0x23},
	{input.KeyHome, 0x24},
	{input.KeyLeft, 0x25},
	{input.KeyUp, 0x26},
	{input.KeyRight, 0x27},
	{input.KeyDown, 0x28},
	{input.KeyPrintScreen, 0x2C},
	{input.KeyInsert, 0x2D},
	{input.KeyDelete, 0x2E},

	{input.Key0, 0x30}, {input.Key1, 0x31}, {input.Key2, 0x32}, {input.Key3, 0x33}, {input.Key4, 0x34},
	{input.Key5, 0x35}, {input.Key6, 0x36}, {input.Key7, 0x37}, {input.Key8, 0x38}, {input.Key9, 0x39},

	{input.KeyA, 0x41}, {input.KeyB, 0x42}, {input.KeyC, 0x43}, {input.KeyD, 0x44}, {input.KeyE, 0x45},
	{input.KeyF, 0x46}, {input.KeyG, 0x47}, {input.KeyH, 0x48}, {input.KeyI, 0x49}, {input.KeyJ, 0x4A},
	{input.KeyK, 0x4B}, {input.KeyL, 0x4C}, {input.KeyM, 0x4D}, {input.KeyN, 0x4E}, {input.KeyO, 0x4F},
	{input.KeyP, 0x50}, {input.KeyQ, 0x51}, {input.KeyR, 0x52}, {input.KeyS, 0x53}, {input.KeyT, 0x54},
	{input.KeyU, 0x55}, {input.KeyV, 0x56}, {input.KeyW, 0x57}, {input.KeyX, 0x58}, {input.KeyY, 0x59},
	{input.KeyZ, 0x5A},

	{input.KeyLeftMeta, 0x5B},
	{input.KeyRightMeta, 0x5C},
	{input.KeyMenu, 0x5D}, // VK_APPS

	{input.KeyKp0, 0x60}, {input.KeyKp1, 0x61}, {input.KeyKp2, 0x62}, {input.KeyKp3, 0x63}, {input.KeyKp4, 0x64},
	{input.KeyKp5, 0x65}, {input.KeyKp6, 0x66}, {input.KeyKp7, 0x67}, {input.KeyKp8, 0x68}, {input.KeyKp9, 0x69},
	{input.KeyKpAsterisk, 0x6A},
	{input.KeyKpPlus, 0x6B},
	{input.KeyKpMinus, 0x6D},
	{input.KeyKpDot, 0x6E},
	{input.KeyKpSlash, 0x6F},

	{input.KeyF1, 0x70}, {input.KeyF2, 0x71}, {input.KeyF3, 0x72}, {input.KeyF4, 0x73},
	{input.KeyF5, 0x74}, {input.KeyF6, 0x75}, {input.KeyF7, 0x76}, {input.KeyF8, 0x77},
	{input.KeyF9, 0x78}, {input.KeyF10, 0x79}, {input.KeyF11, 0x7A}, {input.KeyF12, 0x7B},
	{input.KeyF13, 0x7C}, {input.KeyF14, 0x7D}, {input.KeyF15, 0x7E}, {input.KeyF16, 0x7F},
	{input.KeyF17, 0x80}, {input.KeyF18, 0x81}, {input.KeyF19, 0x82}, {input.KeyF20, 0x83},
	{input.KeyF21, 0x84}, {input.KeyF22, 0x85}, {input.KeyF23, 0x86}, {input.KeyF24, 0x87},

	{input.KeyNumLock, 0x90},
	{input.KeyScrollLock, 0x91},

	{input.KeyLeftShift, 0xA0},
	{input.KeyRightShift, 0xA1},
	{input.KeyLeftCtrl, 0xA2},
	{input.KeyRightCtrl, 0xA3},
	{input.KeyLeftAlt, 0xA4},
	{input.KeyRightAlt, 0xA5},

	{input.KeyMute, 0xAD},
	{input.KeyVolumeDown, 0xAE},
	{input.KeyVolumeUp, 0xAF},

	{input.KeySemicolon, 0xBA},
	{input.KeyEqual, 0xBB},
	{input.KeyComma, 0xBC},
	{input.KeyMinus, 0xBD},
	{input.KeyDot, 0xBE},
	{input.KeySlash, 0xBF},
	{input.KeyGrave, 0xC0},
	{input.KeyLeftBrace, 0xDB},
	{input.KeyBackslash, 0xDC},
	{input.KeyRightBrace, 0xDD},
	{input.KeyApostrophe, 0xDE},
})
