package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/input"
	"github.com/Alia5/inputmux/manager"
)

// Listen prints captured events until interrupted.
type Listen struct {
	Format string `help:"Output format; auto picks text on a terminal and json otherwise" default:"auto" enum:"auto,text,json" env:"INPUTMUX_LISTEN_FORMAT"`
	Count  int    `help:"Stop after this many events (0 means no limit)" default:"0" env:"INPUTMUX_LISTEN_COUNT"`
}

// Run is called by Kong when the listen command is executed.
func (l *Listen) Run(logger *slog.Logger, opts backend.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := backend.New(opts)
	if err != nil {
		return err
	}
	format := l.Format
	if format == "auto" {
		format = "json"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "text"
		}
	}
	return l.listen(ctx, p, os.Stdout, format, logger)
}

func (l *Listen) listen(ctx context.Context, p backend.Platform, out io.Writer, format string, logger *slog.Logger) error {
	m, err := manager.New(ctx, p, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Warn("Failed to release injector", "error", err)
		}
	}()
	logger.Info("Listening for input events", "platform", p.Name(), "sources", len(m.Sources()))

	enc := json.NewEncoder(out)
	for n := 0; l.Count <= 0 || n < l.Count; n++ {
		ev, err := m.Read(ctx)
		switch {
		case errors.Is(err, manager.ErrAllSourcesClosed):
			logger.Info("All capture sources closed")
			return nil
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			return err
		}

		if format == "json" {
			err = enc.Encode(newEventRecord(ev))
		} else {
			_, err = fmt.Fprintln(out, ev)
		}
		if err != nil {
			return fmt.Errorf("write event: %w", err)
		}
	}
	return nil
}

// eventRecord is the JSON form of an input.Event.
type eventRecord struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
	Name      string `json:"name,omitempty"`
	Axis      string `json:"axis,omitempty"`
	Delta     *int   `json:"delta,omitempty"`
}

func newEventRecord(ev input.Event) eventRecord {
	switch e := ev.(type) {
	case input.KeyEvent:
		r := eventRecord{Type: "key", Direction: e.Direction.String()}
		if e.Kind != nil {
			r.Name = e.Kind.String()
		}
		if _, ok := e.Kind.(input.Button); ok {
			r.Type = "button"
		}
		return r
	case input.MouseMove:
		d := e.Delta
		return eventRecord{Type: "move", Axis: e.Axis.String(), Delta: &d}
	case input.MouseScroll:
		d := e.Delta
		return eventRecord{Type: "scroll", Delta: &d}
	}
	return eventRecord{Type: "unknown"}
}
