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

// Writer injects canonical events through a backend injector.
type Writer struct {
	inj    backend.Injector
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewWriter wraps inj. A nil logger uses slog.Default.
func NewWriter(inj backend.Injector, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{inj: inj, logger: logger}
}

// Write synthesizes ev. Events the platform cannot represent are logged and
// skipped; Write then returns nil.
func (w *Writer) Write(ctx context.Context, ev input.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev == nil {
		return errors.New("write: nil event")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}
	err := w.inj.Inject(ev)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrNotRepresentable):
		w.logger.Debug("Injection gap, event skipped", "event", ev.String(), "error", err)
		return nil
	default:
		return fmt.Errorf("inject %s: %w", ev, err)
	}
}

// Close releases the injector. Further writes fail with ErrWriterClosed.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.inj.Close()
}
