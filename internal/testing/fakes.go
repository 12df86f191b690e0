// Package testing provides in-memory backend fakes for tests.
package testing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/input"
)

// FakeCapturer is a scripted capture source.
//
// Listen returns SetupErr before calling ready when it is set. Otherwise it
// calls ready, emits Events in order, waits for Gate to be closed (if set)
// and then returns FailErr. With Block set it waits for ctx instead of
// returning nil.
type FakeCapturer struct {
	SourceName string
	Events     []input.Event
	SetupErr   error
	FailErr    error
	Gate       chan struct{}
	Block      bool

	Started  atomic.Int32
	Returned atomic.Int32
}

func (f *FakeCapturer) Name() string {
	if f.SourceName == "" {
		return "fake"
	}
	return f.SourceName
}

func (f *FakeCapturer) Listen(ctx context.Context, ready func(), emit func(input.Event)) error {
	f.Started.Add(1)
	defer f.Returned.Add(1)

	if f.SetupErr != nil {
		return f.SetupErr
	}
	ready()
	for _, ev := range f.Events {
		emit(ev)
	}
	if f.Gate != nil {
		select {
		case <-f.Gate:
		case <-ctx.Done():
			return nil
		}
	}
	if f.FailErr != nil {
		return f.FailErr
	}
	if f.Block {
		<-ctx.Done()
	}
	return nil
}

// FakeInjector records injected events.
type FakeInjector struct {
	mu       sync.Mutex
	injected []input.Event
	closed   int

	// Unsupported events fail with backend.ErrNotRepresentable.
	Unsupported func(input.Event) bool
	// Err, when set, is returned for every other event.
	Err error
}

func (f *FakeInjector) Inject(ev input.Event) error {
	if f.Unsupported != nil && f.Unsupported(ev) {
		return fmt.Errorf("%w: %s", backend.ErrNotRepresentable, ev)
	}
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	f.injected = append(f.injected, ev)
	f.mu.Unlock()
	return nil
}

func (f *FakeInjector) Close() error {
	f.mu.Lock()
	f.closed++
	f.mu.Unlock()
	return nil
}

// Injected returns a copy of the events injected so far.
func (f *FakeInjector) Injected() []input.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]input.Event(nil), f.injected...)
}

// Closed reports how many times Close was called.
func (f *FakeInjector) Closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// FakePlatform serves fixed capturers and an injector.
type FakePlatform struct {
	Capturers   []backend.Capturer
	SourcesErr  error
	Injector    *FakeInjector
	InjectorErr error

	SourcesCalls atomic.Int32
}

func (f *FakePlatform) Name() string { return "fake" }

func (f *FakePlatform) Sources() ([]backend.Capturer, error) {
	f.SourcesCalls.Add(1)
	if f.SourcesErr != nil {
		return nil, f.SourcesErr
	}
	return f.Capturers, nil
}

func (f *FakePlatform) NewInjector() (backend.Injector, error) {
	if f.InjectorErr != nil {
		return nil, f.InjectorErr
	}
	if f.Injector == nil {
		f.Injector = &FakeInjector{}
	}
	return f.Injector, nil
}
