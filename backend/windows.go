//go:build windows

package backend

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Alia5/inputmux/input"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPeekMessageW        = user32.NewProc("PeekMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procSetCursorPos        = user32.NewProc("SetCursorPos")
	procMouseEvent          = user32.NewProc("mouse_event")
	procKeybdEvent          = user32.NewProc("keybd_event")
	procMapVirtualKeyW      = user32.NewProc("MapVirtualKeyW")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14
	wmQuit       = 0x0012
	pmNoRemove   = 0x0000
	mapVKToVSC   = 0
)

type winPoint struct {
	X, Y int32
}

type kbdLLHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msLLHookStruct struct {
	Pt          winPoint
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type winMsg struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       winPoint
	LPrivate uint32
}

// winHook is the state of one installed low-level hook. Hook procedures get
// no user context, so the active hook of each kind is published through a
// slot.
type winHook struct {
	emit  func(input.Event)
	opts  Options
	name  string
	mouse winMouseConverter
}

var (
	keyboardSlot hookSlot[winHook]
	mouseSlot    hookSlot[winHook]

	keyboardProc = windows.NewCallback(lowLevelKeyboardProc)
	mouseProc    = windows.NewCallback(lowLevelMouseProc)
)

func lowLevelKeyboardProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode == 0 {
		if h := keyboardSlot.get(); h != nil {
			info := (*kbdLLHookStruct)(unsafe.Pointer(lParam))
			h.opts.trace(h.name, uint64(wParam), uint64(info.VkCode), uint64(info.ScanCode), uint64(info.Flags))
			convertWinKey(winKeyRecord{Msg: wParam, VK: info.VkCode, ExtraInfo: info.DwExtraInfo}, h.emit)
		}
	}
	r, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return r
}

func lowLevelMouseProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode == 0 {
		if h := mouseSlot.get(); h != nil {
			info := (*msLLHookStruct)(unsafe.Pointer(lParam))
			h.opts.trace(h.name, uint64(wParam), uint64(uint32(info.Pt.X)), uint64(uint32(info.Pt.Y)), uint64(info.MouseData))
			h.mouse.convert(winMouseRecord{
				Msg:       wParam,
				X:         info.Pt.X,
				Y:         info.Pt.Y,
				MouseData: info.MouseData,
				ExtraInfo: info.DwExtraInfo,
			}, h.emit)
		}
	}
	r, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return r
}

type winHookCapturer struct {
	name string
	id   int
	slot *hookSlot[winHook]
	proc uintptr
	opts Options
}

func (c *winHookCapturer) Name() string { return c.name }

func (c *winHookCapturer) Listen(ctx context.Context, ready func(), emit func(input.Event)) error {
	// Low-level hooks are called on the installing thread's message loop.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := c.opts.logger().With("hook", c.name)
	release, err := c.slot.acquire(&winHook{emit: emit, opts: c.opts, name: c.name})
	if err != nil {
		return err
	}
	defer release()

	// Force creation of this thread's message queue so WM_QUIT can be posted.
	var msg winMsg
	_, _, _ = procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmNoRemove)

	hook, _, callErr := procSetWindowsHookExW.Call(uintptr(c.id), c.proc, 0, 0)
	if hook == 0 {
		return fmt.Errorf("%w: SetWindowsHookExW(%d): %v", ErrHookInstall, c.id, callErr)
	}
	defer func() { _, _, _ = procUnhookWindowsHookEx.Call(hook) }()

	tid := windows.GetCurrentThreadId()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_, _, _ = procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
		case <-done:
		}
	}()

	logger.Debug("Low-level hook installed")
	ready()

	for {
		r, _, callErr := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return fmt.Errorf("GetMessageW: %w", callErr)
		case 0:
			return nil
		}
	}
}

type win32Injector struct{}

func newWin32Injector() (*win32Injector, error) {
	for _, p := range []*windows.LazyProc{procGetCursorPos, procSetCursorPos, procMouseEvent, procKeybdEvent, procMapVirtualKeyW} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInjectorUnavailable, err)
		}
	}
	return &win32Injector{}, nil
}

func (w *win32Injector) Inject(ev input.Event) error {
	var cur winPoint
	if _, ok := ev.(input.MouseMove); ok {
		r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&cur)))
		if r == 0 {
			return fmt.Errorf("GetCursorPos: %w", err)
		}
	}
	a, err := planWin32(ev, cur.X, cur.Y)
	if err != nil {
		return err
	}
	switch a.Kind {
	case win32Cursor:
		r, _, err := procSetCursorPos.Call(uintptr(a.X), uintptr(a.Y))
		if r == 0 {
			return fmt.Errorf("SetCursorPos: %w", err)
		}
	case win32Mouse:
		_, _, _ = procMouseEvent.Call(uintptr(a.Flags), 0, 0, uintptr(a.Data), injectedMarker)
	case win32Scroll:
		_, _, _ = procMouseEvent.Call(mouseEventWheel, 0, 0, uintptr(a.Data), injectedMarker)
		_, _, _ = procMouseEvent.Call(mouseEventHWheel, 0, 0, uintptr(a.Data), injectedMarker)
	case win32Key:
		scan, _, _ := procMapVirtualKeyW.Call(uintptr(a.VK), mapVKToVSC)
		_, _, _ = procKeybdEvent.Call(uintptr(a.VK), scan, uintptr(a.Flags), injectedMarker)
	}
	return nil
}

func (w *win32Injector) Close() error { return nil }

type windowsPlatform struct {
	opts Options
}

func newPlatform(opts Options) (Platform, error) {
	return &windowsPlatform{opts: opts}, nil
}

func (p *windowsPlatform) Name() string { return "windows" }

func (p *windowsPlatform) Sources() ([]Capturer, error) {
	return []Capturer{
		&winHookCapturer{name: "winhook:keyboard", id: whKeyboardLL, slot: &keyboardSlot, proc: keyboardProc, opts: p.opts},
		&winHookCapturer{name: "winhook:mouse", id: whMouseLL, slot: &mouseSlot, proc: mouseProc, opts: p.opts},
	}, nil
}

func (p *windowsPlatform) NewInjector() (Injector, error) {
	return newWin32Injector()
}
