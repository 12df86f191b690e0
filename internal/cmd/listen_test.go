package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/input"
	th "github.com/Alia5/inputmux/internal/testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var listenEvents = []input.Event{
	input.Press(input.KeyLeftShift),
	input.Release(input.ButtonLeft),
	input.MouseMove{Axis: input.Y, Delta: -4},
	input.MouseScroll{Delta: 0},
}

func TestListenFormats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{
			name:   "text",
			format: "text",
			want:   []string{"key:down:leftshift", "button:up:left", "move:y:-4", "scroll:0"},
		},
		{
			name:   "json",
			format: "json",
			want: []string{
				`{"type":"key","direction":"down","name":"leftshift"}`,
				`{"type":"button","direction":"up","name":"left"}`,
				`{"type":"move","axis":"y","delta":-4}`,
				`{"type":"scroll","delta":0}`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &th.FakePlatform{Capturers: []backend.Capturer{&th.FakeCapturer{Events: listenEvents}}}
			var out bytes.Buffer

			err := (&Listen{}).listen(testContext(t), p, &out, tt.format, discardLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Split(strings.TrimSpace(out.String()), "\n"))
			assert.Equal(t, 1, p.Injector.Closed())
		})
	}
}

func TestListenJSONIsDecodable(t *testing.T) {
	p := &th.FakePlatform{Capturers: []backend.Capturer{&th.FakeCapturer{Events: listenEvents}}}
	var out bytes.Buffer
	require.NoError(t, (&Listen{}).listen(testContext(t), p, &out, "json", discardLogger()))

	dec := json.NewDecoder(&out)
	var types []string
	for dec.More() {
		var r eventRecord
		require.NoError(t, dec.Decode(&r))
		types = append(types, r.Type)
	}
	assert.Equal(t, []string{"key", "button", "move", "scroll"}, types)
}

func TestListenStopsAfterCount(t *testing.T) {
	c := &th.FakeCapturer{Events: listenEvents, Block: true}
	p := &th.FakePlatform{Capturers: []backend.Capturer{c}}
	var out bytes.Buffer

	err := (&Listen{Count: 2}).listen(testContext(t), p, &out, "text", discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "key:down:leftshift\nbutton:up:left\n", out.String())
	assert.EqualValues(t, 1, c.Returned.Load())
}

func TestListenReturnsCaptureError(t *testing.T) {
	boom := errors.New("tap disabled")
	p := &th.FakePlatform{Capturers: []backend.Capturer{&th.FakeCapturer{FailErr: boom}}}

	err := (&Listen{}).listen(testContext(t), p, io.Discard, "text", discardLogger())
	assert.ErrorIs(t, err, boom)
}

func TestListenSetupFailure(t *testing.T) {
	p := &th.FakePlatform{Capturers: []backend.Capturer{&th.FakeCapturer{SetupErr: backend.ErrHookInstall}}}

	err := (&Listen{}).listen(testContext(t), p, io.Discard, "text", discardLogger())
	assert.ErrorIs(t, err, backend.ErrHookInstall)
}

func TestListenStopsOnCancel(t *testing.T) {
	p := &th.FakePlatform{Capturers: []backend.Capturer{&th.FakeCapturer{Block: true}}}
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	err := (&Listen{}).listen(ctx, p, io.Discard, "text", discardLogger())
	assert.NoError(t, err)
}

// testContext stands in for t.Context (Go 1.24+): the context is canceled
// when the test finishes.
func testContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
