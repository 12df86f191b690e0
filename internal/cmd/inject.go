package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/input"
	"github.com/Alia5/inputmux/manager"
)

// Inject synthesizes the given events in order.
type Inject struct {
	Events []string      `arg:"" name:"event" help:"Events such as key:down:a, button:up:left, move:x:10 or scroll:-10"`
	Delay  time.Duration `help:"Pause between events" default:"10ms" env:"INPUTMUX_INJECT_DELAY"`
}

// Run is called by Kong when the inject command is executed.
func (i *Inject) Run(logger *slog.Logger, opts backend.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := i.parse()
	if err != nil {
		return err
	}
	p, err := backend.New(opts)
	if err != nil {
		return err
	}
	inj, err := p.NewInjector()
	if err != nil {
		return err
	}
	return i.inject(ctx, manager.NewWriter(inj, logger), events, logger)
}

func (i *Inject) parse() ([]input.Event, error) {
	events := make([]input.Event, 0, len(i.Events))
	for _, s := range i.Events {
		ev, err := input.ParseEvent(s)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (i *Inject) inject(ctx context.Context, w *manager.Writer, events []input.Event, logger *slog.Logger) error {
	defer func() {
		if err := w.Close(); err != nil {
			logger.Warn("Failed to release injector", "error", err)
		}
	}()

	for n, ev := range events {
		if n > 0 && i.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(i.Delay):
			}
		}
		if err := w.Write(ctx, ev); err != nil {
			return err
		}
		logger.Debug("Injected event", "event", ev.String())
	}
	return nil
}
