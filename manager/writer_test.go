package manager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmux/input"
	th "github.com/Alia5/inputmux/internal/testing"
	"github.com/Alia5/inputmux/manager"
)

func TestWriter(t *testing.T) {
	keyboardGap := func(ev input.Event) bool {
		ke, ok := ev.(input.KeyEvent)
		if !ok {
			return false
		}
		_, isKey := ke.Kind.(input.Key)
		return isKey
	}

	tests := []struct {
		name     string
		inj      *th.FakeInjector
		ev       input.Event
		wantErr  error
		injected []input.Event
	}{
		{
			name:     "injects",
			inj:      &th.FakeInjector{},
			ev:       input.MouseMove{Axis: input.Y, Delta: 5},
			injected: []input.Event{input.MouseMove{Axis: input.Y, Delta: 5}},
		},
		{
			name: "gap is not an error",
			inj:  &th.FakeInjector{Unsupported: keyboardGap},
			ev:   input.Press(input.KeyA),
		},
		{
			name:    "injector failure",
			inj:     &th.FakeInjector{Err: errors.New("device gone")},
			ev:      input.Press(input.ButtonLeft),
			wantErr: errors.New("device gone"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := manager.NewWriter(tt.inj, nil)
			err := w.Write(testContext(t), tt.ev)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.injected, tt.inj.Injected())
		})
	}
}

func TestWriterCancelledContext(t *testing.T) {
	inj := &th.FakeInjector{}
	w := manager.NewWriter(inj, nil)
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	assert.ErrorIs(t, w.Write(ctx, input.MouseScroll{Delta: 1}), context.Canceled)
	assert.Empty(t, inj.Injected())
}

func TestWriterClose(t *testing.T) {
	inj := &th.FakeInjector{}
	w := manager.NewWriter(inj, nil)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Equal(t, 1, inj.Closed())
	assert.ErrorIs(t, w.Write(testContext(t), input.MouseScroll{Delta: 1}), manager.ErrWriterClosed)
}
