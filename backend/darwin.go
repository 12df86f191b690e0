//go:build darwin && cgo

package backend

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

extern CGEventRef inputmuxTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo);

typedef struct {
	uint32_t type;
	uint16_t keycode;
	uint64_t flags;
	int64_t  button;
	int64_t  dx;
	int64_t  dy;
	int64_t  scroll;
	int64_t  user;
} tapRecord;

static CFMachPortRef createTap(CGEventMask mask) {
	return CGEventTapCreate(kCGHIDEventTap, kCGHeadInsertEventTap,
		kCGEventTapOptionListenOnly, mask, inputmuxTapCallback, NULL);
}

static void readRecord(CGEventType type, CGEventRef ev, tapRecord *r) {
	r->type = (uint32_t)type;
	r->keycode = (uint16_t)CGEventGetIntegerValueField(ev, kCGKeyboardEventKeycode);
	r->flags = (uint64_t)CGEventGetFlags(ev);
	r->button = CGEventGetIntegerValueField(ev, kCGMouseEventButtonNumber);
	r->dx = CGEventGetIntegerValueField(ev, kCGMouseEventDeltaX);
	r->dy = CGEventGetIntegerValueField(ev, kCGMouseEventDeltaY);
	r->scroll = CGEventGetIntegerValueField(ev, kCGScrollWheelEventPointDeltaAxis1);
	r->user = CGEventGetIntegerValueField(ev, kCGEventSourceUserData);
}

static CFRunLoopSourceRef attachTap(CFMachPortRef tap) {
	CFRunLoopSourceRef src = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
	if (src == NULL) {
		return NULL;
	}
	CFRunLoopAddSource(CFRunLoopGetCurrent(), src, kCFRunLoopCommonModes);
	CGEventTapEnable(tap, true);
	return src;
}

static void detachTap(CFMachPortRef tap, CFRunLoopSourceRef src) {
	CGEventTapEnable(tap, false);
	CFRunLoopRemoveSource(CFRunLoopGetCurrent(), src, kCFRunLoopCommonModes);
	CFMachPortInvalidate(tap);
}

static int runLoopFor(double seconds) {
	return (int)CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, false);
}

static CGEventSourceRef newEventSource(void) {
	return CGEventSourceCreate(kCGEventSourceStateHIDSystemState);
}

static int cursorLocation(CGEventSourceRef src, double *x, double *y) {
	CGEventRef ev = CGEventCreate(src);
	if (ev == NULL) {
		return -1;
	}
	CGPoint p = CGEventGetLocation(ev);
	CFRelease(ev);
	*x = p.x;
	*y = p.y;
	return 0;
}

static int postMouse(CGEventSourceRef src, uint32_t type, double x, double y, uint32_t button, int64_t marker) {
	CGEventRef ev = CGEventCreateMouseEvent(src, (CGEventType)type, CGPointMake(x, y), (CGMouseButton)button);
	if (ev == NULL) {
		return -1;
	}
	CGEventSetIntegerValueField(ev, kCGEventSourceUserData, marker);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 0;
}

// CGEventCreateScrollWheelEvent is variadic and cannot be called from Go.
static int postScroll(CGEventSourceRef src, int32_t delta, int64_t marker) {
	CGEventRef ev = CGEventCreateScrollWheelEvent(src, kCGScrollEventUnitPixel, 2, delta, delta);
	if (ev == NULL) {
		return -1;
	}
	CGEventSetIntegerValueField(ev, kCGEventSourceUserData, marker);
	CGEventPost(kCGHIDEventTap, ev);
	CFRelease(ev);
	return 0;
}
*/
import "C"

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"github.com/Alia5/inputmux/input"
)

// quartzTap is the state of one installed event tap. The tap callback
// carries no Go context, so the active tap is published through tapSlot.
type quartzTap struct {
	conv   *quartzConverter
	emit   func(input.Event)
	opts   Options
	tap    C.CFMachPortRef
	loop   C.CFRunLoopRef
	err    error
	logger *slog.Logger
}

var tapSlot hookSlot[quartzTap]

type quartzCapturer struct {
	opts Options
}

func (c *quartzCapturer) Name() string { return "quartz" }

func (c *quartzCapturer) Listen(ctx context.Context, ready func(), emit func(input.Event)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t := &quartzTap{
		conv:   newQuartzConverter(),
		emit:   emit,
		opts:   c.opts,
		logger: c.opts.logger(),
	}
	release, err := tapSlot.acquire(t)
	if err != nil {
		return err
	}
	defer release()

	tap := C.createTap(C.CGEventMask(quartzEventMask()))
	if tap == 0 {
		return fmt.Errorf("%w: CGEventTapCreate returned NULL (accessibility permission?)", ErrHookInstall)
	}
	defer C.CFRelease(C.CFTypeRef(tap))
	t.tap = tap

	src := C.attachTap(tap)
	if src == 0 {
		C.CFMachPortInvalidate(tap)
		return fmt.Errorf("%w: CFMachPortCreateRunLoopSource returned NULL", ErrSourceRegister)
	}
	defer C.CFRelease(C.CFTypeRef(src))
	defer C.detachTap(tap, src)
	t.loop = C.CFRunLoopGetCurrent()

	var stopOnce sync.Once
	stop := func() { stopOnce.Do(func() { C.CFRunLoopStop(t.loop) }) }
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	t.logger.Debug("Quartz event tap installed")
	ready()

	// Short slices so a stop issued before the loop started is not lost.
	for ctx.Err() == nil && t.err == nil {
		C.runLoopFor(0.25)
	}
	if t.err != nil {
		return t.err
	}
	return nil
}

//export inputmuxTapCallback
func inputmuxTapCallback(_ C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, _ unsafe.Pointer) C.CGEventRef {
	t := tapSlot.get()
	if t == nil {
		return event
	}
	switch uint32(eventType) {
	case cgTapDisabledByTimeout:
		t.logger.Warn("Quartz event tap disabled by timeout, re-enabling")
		C.CGEventTapEnable(t.tap, true)
		return event
	case cgTapDisabledByUserInput:
		t.err = fmt.Errorf("event tap disabled by user input")
		C.CFRunLoopStop(t.loop)
		return event
	}

	var r C.tapRecord
	C.readRecord(eventType, event, &r)
	rec := quartzRecord{
		Type:     uint32(r._type),
		Keycode:  uint16(r.keycode),
		Flags:    uint64(r.flags),
		Button:   int64(r.button),
		DeltaX:   int64(r.dx),
		DeltaY:   int64(r.dy),
		Scroll:   int64(r.scroll),
		UserData: int64(r.user),
	}
	t.opts.trace("quartz", uint64(rec.Type), uint64(rec.Keycode), rec.Flags, uint64(rec.DeltaX), uint64(rec.DeltaY), uint64(rec.Scroll))
	t.conv.convert(rec, t.emit)
	return event
}

type quartzInjector struct {
	mu  sync.Mutex
	src C.CGEventSourceRef
}

func newQuartzInjector() (*quartzInjector, error) {
	src := C.newEventSource()
	if src == 0 {
		return nil, fmt.Errorf("%w: CGEventSourceCreate returned NULL", ErrInjectorUnavailable)
	}
	return &quartzInjector{src: src}, nil
}

func (q *quartzInjector) Inject(ev input.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.src == 0 {
		return fmt.Errorf("%w: injector closed", ErrInjectorUnavailable)
	}

	var cur point
	if _, ok := ev.(input.MouseScroll); !ok {
		var x, y C.double
		if C.cursorLocation(q.src, &x, &y) != 0 {
			return fmt.Errorf("failed to read pointer location")
		}
		cur = point{X: float64(x), Y: float64(y)}
	}
	a, err := planQuartz(ev, cur)
	if err != nil {
		return err
	}

	var rc C.int
	switch a.Kind {
	case quartzScroll:
		rc = C.postScroll(q.src, C.int32_t(a.Wheel), injectedMarker)
	case quartzMouse:
		rc = C.postMouse(q.src, C.uint32_t(a.Type), C.double(a.X), C.double(a.Y), C.uint32_t(a.Button), injectedMarker)
	}
	if rc != 0 {
		return fmt.Errorf("failed to create CGEvent for %s", ev)
	}
	return nil
}

func (q *quartzInjector) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.src != 0 {
		C.CFRelease(C.CFTypeRef(q.src))
		q.src = 0
	}
	return nil
}

type darwinPlatform struct {
	opts Options
}

func newPlatform(opts Options) (Platform, error) {
	return &darwinPlatform{opts: opts}, nil
}

func (p *darwinPlatform) Name() string { return "darwin" }

func (p *darwinPlatform) Sources() ([]Capturer, error) {
	return []Capturer{&quartzCapturer{opts: p.opts}}, nil
}

func (p *darwinPlatform) NewInjector() (Injector, error) {
	return newQuartzInjector()
}
