package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmux/input"
	th "github.com/Alia5/inputmux/internal/testing"
	"github.com/Alia5/inputmux/manager"
)

func TestInjectParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []input.Event
		wantErr bool
	}{
		{
			name: "mixed",
			args: []string{"key:down:a", "button:up:right", "move:x:10", "scroll:-3"},
			want: []input.Event{
				input.Press(input.KeyA),
				input.Release(input.ButtonRight),
				input.MouseMove{Axis: input.X, Delta: 10},
				input.MouseScroll{Delta: -3},
			},
		},
		{name: "bad event stops everything", args: []string{"key:down:a", "wiggle"}, wantErr: true},
		{name: "unknown key", args: []string{"key:down:nope"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&Inject{Events: tt.args}).parse()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInjectWritesInOrder(t *testing.T) {
	events := []input.Event{
		input.Press(input.KeyLeftCtrl),
		input.Press(input.KeyC),
		input.Release(input.KeyC),
		input.Release(input.KeyLeftCtrl),
	}
	inj := &th.FakeInjector{}

	err := (&Inject{Delay: time.Millisecond}).inject(testContext(t), manager.NewWriter(inj, discardLogger()), events, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, events, inj.Injected())
	assert.Equal(t, 1, inj.Closed())
}

func TestInjectSkipsGaps(t *testing.T) {
	inj := &th.FakeInjector{Unsupported: func(ev input.Event) bool {
		_, ok := ev.(input.KeyEvent)
		return ok
	}}
	events := []input.Event{input.Press(input.KeyA), input.MouseScroll{Delta: 1}}

	err := (&Inject{}).inject(testContext(t), manager.NewWriter(inj, discardLogger()), events, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, []input.Event{input.MouseScroll{Delta: 1}}, inj.Injected())
}

func TestInjectStopsOnError(t *testing.T) {
	boom := errors.New("uinput gone")
	inj := &th.FakeInjector{Err: boom}

	err := (&Inject{}).inject(testContext(t), manager.NewWriter(inj, discardLogger()), []input.Event{input.Press(input.KeyA)}, discardLogger())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, inj.Closed())
}

func TestInjectHonorsCancelDuringDelay(t *testing.T) {
	inj := &th.FakeInjector{}
	ctx, cancel := context.WithCancel(testContext(t))
	events := []input.Event{input.Press(input.KeyA), input.Release(input.KeyA)}

	time.AfterFunc(20*time.Millisecond, cancel)
	err := (&Inject{Delay: time.Hour}).inject(ctx, manager.NewWriter(inj, discardLogger()), events, discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []input.Event{input.Press(input.KeyA)}, inj.Injected())
}
