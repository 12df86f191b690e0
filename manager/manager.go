// Package manager merges every capture source of a platform into one ordered,
// cancellable event stream and exposes the matching injection path.
package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/input"
)

// Manager owns the capture goroutines of one platform and its writer.
type Manager struct {
	logger  *slog.Logger
	writer  *Writer
	queue   *eventQueue
	sources []string

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// New builds the injector, starts every capture source of p and waits until
// each of them is installed. If the injector cannot be built nothing is
// started. If any source fails to install, the ones already running are
// stopped, the injector is closed and the error is returned.
//
// Cancelling ctx stops capture; Read then reports ErrAllSourcesClosed.
func New(ctx context.Context, p backend.Platform, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	inj, err := p.NewInjector()
	if err != nil {
		return nil, fmt.Errorf("create %s injector: %w", p.Name(), err)
	}
	caps, err := p.Sources()
	if err != nil {
		_ = inj.Close()
		return nil, fmt.Errorf("enumerate %s capture sources: %w", p.Name(), err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	m := &Manager{
		logger: logger,
		writer: NewWriter(inj, logger),
		queue:  newEventQueue(len(caps)),
		cancel: cancel,
	}

	setup := make(chan error, len(caps))
	for _, c := range caps {
		m.sources = append(m.sources, c.Name())
		m.wg.Add(1)
		go m.run(runCtx, c, setup)
	}

	var setupErr error
	for range caps {
		if err := <-setup; err != nil {
			setupErr = err
			break
		}
	}
	if setupErr != nil {
		cancel()
		m.wg.Wait()
		return nil, errors.Join(setupErr, m.writer.Close())
	}

	logger.Debug("Input capture started", "platform", p.Name(), "sources", m.sources)
	return m, nil
}

// run drives one capture source. It reports exactly one setup result: nil
// once the source is ready, or the error that kept it from getting there.
func (m *Manager) run(ctx context.Context, c backend.Capturer, setup chan<- error) {
	defer m.wg.Done()
	defer m.queue.sourceDone()

	logger := m.logger.With("source", c.Name())
	var once sync.Once
	ready := func() {
		once.Do(func() { setup <- nil })
	}

	err := c.Listen(ctx, ready, m.queue.push)

	var notReady bool
	once.Do(func() { notReady = true })
	if notReady {
		if err == nil {
			err = errors.New("stopped before it was ready")
		}
		setup <- fmt.Errorf("start capture source %s: %w", c.Name(), err)
		return
	}

	if err != nil {
		err = fmt.Errorf("capture source %s: %w", c.Name(), err)
		if m.queue.fail(err) {
			logger.Error("Capture failed", "error", err)
		} else {
			logger.Warn("Capture failed after an earlier error", "error", err)
		}
		return
	}
	logger.Debug("Capture source closed")
}

// Read returns the next captured event. A fatal capture error takes
// precedence over queued events and is returned on every call once
// recorded. When every source has closed and the queue is drained, Read
// returns ErrAllSourcesClosed.
func (m *Manager) Read(ctx context.Context) (input.Event, error) {
	for {
		ev, ok, err := m.queue.take()
		if ok {
			return ev, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-m.queue.wake:
		case <-m.queue.terminal:
		}
	}
}

// Write injects ev. See Writer.Write.
func (m *Manager) Write(ctx context.Context, ev input.Event) error {
	return m.writer.Write(ctx, ev)
}

// Sources lists the names of the capture sources started by New.
func (m *Manager) Sources() []string {
	out := make([]string, len(m.sources))
	copy(out, m.sources)
	return out
}

// Close stops capture, waits for every source to return and releases the
// injector. It is safe to call more than once.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		m.queue.close()
		m.cancel()
		m.wg.Wait()
		m.closeErr = m.writer.Close()
	})
	return m.closeErr
}
