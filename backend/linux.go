//go:build linux

package backend

import (
	"context"
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"github.com/Alia5/inputmux/input"
)

type evdevCapturer struct {
	path string
	opts Options
}

func (c *evdevCapturer) Name() string { return "evdev:" + c.path }

func (c *evdevCapturer) Listen(ctx context.Context, ready func(), emit func(input.Event)) error {
	logger := c.opts.logger().With("device", c.path)

	dev, err := evdev.Open(c.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrHookInstall, c.path, err)
	}
	if c.opts.Grab {
		if err := dev.Grab(); err != nil {
			_ = dev.Close()
			return fmt.Errorf("%w: grab %s: %v", ErrHookInstall, c.path, err)
		}
	}

	var closeOnce sync.Once
	closeDev := func() {
		closeOnce.Do(func() {
			if c.opts.Grab {
				_ = dev.Ungrab()
			}
			_ = dev.Close()
		})
	}
	defer closeDev()

	name, _ := dev.Name()
	// Open, Grab and Name leave the descriptor blocking. Close only
	// interrupts ReadOne on a non-blocking one.
	if err := dev.NonBlock(); err != nil {
		return fmt.Errorf("%w: set %s non-blocking: %v", ErrHookInstall, c.path, err)
	}
	logger.Debug("Capturing input device", "name", name, "grab", c.opts.Grab)
	ready()

	source := c.Name()
	read := func() (evdevRecord, error) {
		ev, err := dev.ReadOne()
		if err != nil {
			return evdevRecord{}, fmt.Errorf("read %s: %w", c.path, err)
		}
		c.opts.trace(source, uint64(ev.Type), uint64(ev.Code), uint64(uint32(ev.Value)))
		return evdevRecord{Type: uint16(ev.Type), Code: uint16(ev.Code), Value: ev.Value}, nil
	}
	return readEvdev(ctx, read, closeDev, logger, emit)
}

type uinputInjector struct {
	mu    sync.Mutex
	dev   *evdev.InputDevice
	wheel wheelAccumulator
}

func newUinputInjector(name string) (*uinputInjector, error) {
	caps := map[evdev.EvType][]evdev.EvCode{}
	for t, codes := range evdevCapabilities() {
		ec := make([]evdev.EvCode, 0, len(codes))
		for _, c := range codes {
			ec = append(ec, evdev.EvCode(c))
		}
		caps[evdev.EvType(t)] = ec
	}
	dev, err := evdev.CreateDevice(name, evdev.InputID{
		BusType: 0x06, // BUS_VIRTUAL
		Vendor:  0x1209,
		Product: 0x494d,
		Version: 1,
	}, caps)
	if err != nil {
		return nil, fmt.Errorf("%w: create uinput device: %v", ErrInjectorUnavailable, err)
	}
	return &uinputInjector{dev: dev}, nil
}

func (u *uinputInjector) Inject(ev input.Event) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.dev == nil {
		return fmt.Errorf("%w: injector closed", ErrInjectorUnavailable)
	}
	records, err := planEvdev(ev, &u.wheel)
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := u.dev.WriteOne(&evdev.InputEvent{
			Type:  evdev.EvType(r.Type),
			Code:  evdev.EvCode(r.Code),
			Value: r.Value,
		}); err != nil {
			return fmt.Errorf("write uinput event: %w", err)
		}
	}
	return nil
}

func (u *uinputInjector) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.dev == nil {
		return nil
	}
	err := u.dev.Close()
	u.dev = nil
	return err
}

type linuxPlatform struct {
	opts Options
}

func newPlatform(opts Options) (Platform, error) {
	return &linuxPlatform{opts: opts}, nil
}

func (p *linuxPlatform) Name() string { return "linux" }

func (p *linuxPlatform) Sources() ([]Capturer, error) {
	if len(p.opts.Devices) > 0 {
		out := make([]Capturer, 0, len(p.opts.Devices))
		for _, path := range p.opts.Devices {
			out = append(out, &evdevCapturer{path: path, opts: p.opts})
		}
		return out, nil
	}

	logger := p.opts.logger()
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("%w: list input devices: %v", ErrHookInstall, err)
	}
	skip := p.opts.virtualDeviceName()
	var out []Capturer
	for _, ip := range paths {
		if ip.Name == skip {
			continue
		}
		dev, err := evdev.Open(ip.Path)
		if err != nil {
			logger.Debug("Skipping unreadable input device", "device", ip.Path, "error", err)
			continue
		}
		capable := dev.CapableTypes()
		_ = dev.Close()
		types := make([]uint16, 0, len(capable))
		for _, t := range capable {
			types = append(types, uint16(t))
		}
		if !evdevCapturable(types) {
			continue
		}
		out = append(out, &evdevCapturer{path: ip.Path, opts: p.opts})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no readable keyboard or pointer devices under /dev/input", ErrHookInstall)
	}
	return out, nil
}

func (p *linuxPlatform) NewInjector() (Injector, error) {
	return newUinputInjector(p.opts.virtualDeviceName())
}
