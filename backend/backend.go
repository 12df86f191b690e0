// Package backend captures native input events and synthesizes them again.
//
// Each supported OS provides a Platform selected at build time. Conversion
// between native records and input.Event values lives in files without build
// constraints so that it can be exercised on every host; only the thin layer
// that talks to the OS is platform specific.
package backend

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Alia5/inputmux/input"
)

var (
	// ErrHookInstall is returned when the OS refuses to install a capture
	// hook, event tap or device reader.
	ErrHookInstall = errors.New("failed to install capture hook")
	// ErrSourceRegister is returned when an installed hook cannot be attached
	// to its event loop.
	ErrSourceRegister = errors.New("failed to register event source")
	// ErrHookActive is returned when the process-wide hook slot is taken.
	ErrHookActive = errors.New("capture hook already active")
	// ErrNotRepresentable is returned by Inject for events the platform
	// cannot synthesize.
	ErrNotRepresentable = errors.New("event not representable on this platform")
	// ErrUnsupported is returned by New on platforms without a backend.
	ErrUnsupported = errors.New("input backend not supported on this platform")
	// ErrInjectorUnavailable is returned when the injection event source
	// cannot be acquired.
	ErrInjectorUnavailable = errors.New("injection event source unavailable")
)

// Capturer is one native event source.
//
// Listen blocks for the lifetime of the hook. It calls ready exactly once
// after the hook is installed. An error returned before ready is a setup
// failure, an error returned after it is fatal for the whole capture. A nil
// return after ready means the source closed. Cancelling ctx tears the hook
// down and makes Listen return nil.
//
// emit is called synchronously in native delivery order.
type Capturer interface {
	Name() string
	Listen(ctx context.Context, ready func(), emit func(input.Event)) error
}

// Injector synthesizes canonical events as native input.
type Injector interface {
	// Inject returns ErrNotRepresentable for events without a native form.
	Inject(ev input.Event) error
	io.Closer
}

// Platform enumerates capture sources and builds the injector for one OS.
type Platform interface {
	Name() string
	Sources() ([]Capturer, error)
	NewInjector() (Injector, error)
}

// Options configure the native backend.
type Options struct {
	// Devices restricts Linux capture to these /dev/input paths. Empty means
	// every keyboard or pointer device.
	Devices []string
	// Grab requests exclusive access to captured Linux devices.
	Grab bool
	// VirtualDeviceName names the Linux uinput injection device. Capture
	// skips devices with this name.
	VirtualDeviceName string
	Logger            *slog.Logger
	// Raw receives one trace line per native record. May be nil.
	Raw RawTracer
}

// DefaultVirtualDeviceName is used when Options.VirtualDeviceName is empty.
const DefaultVirtualDeviceName = "inputmux virtual input"

// RawTracer records native records before conversion.
type RawTracer interface {
	Trace(source string, words ...uint64)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) trace(source string, words ...uint64) {
	if o.Raw != nil {
		o.Raw.Trace(source, words...)
	}
}

func (o Options) virtualDeviceName() string {
	if o.VirtualDeviceName != "" {
		return o.VirtualDeviceName
	}
	return DefaultVirtualDeviceName
}

// New returns the platform backend for the running OS.
func New(opts Options) (Platform, error) {
	return newPlatform(opts)
}
