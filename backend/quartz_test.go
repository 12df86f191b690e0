package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmux/input"
)

func collect(convert func(emit func(input.Event))) []input.Event {
	var out []input.Event
	convert(func(ev input.Event) { out = append(out, ev) })
	return out
}

func TestQuartzModifierEdges(t *testing.T) {
	const shift = 0x00020000 | 0x00000002
	conv := newQuartzConverter()
	got := collect(func(emit func(input.Event)) {
		for _, flags := range []uint64{0, shift, 0} {
			conv.convert(quartzRecord{Type: cgFlagsChanged, Keycode: 56, Flags: flags}, emit)
		}
	})
	assert.Equal(t, []input.Event{
		input.Press(input.KeyLeftShift),
		input.Release(input.KeyLeftShift),
	}, got)
}

func TestQuartzModifierIgnoresNonModifierBits(t *testing.T) {
	conv := newQuartzConverter()
	got := collect(func(emit func(input.Event)) {
		// Numeric pad and non-coalesced bits toggle without a modifier change.
		conv.convert(quartzRecord{Type: cgFlagsChanged, Keycode: 56, Flags: 0x00200100}, emit)
		conv.convert(quartzRecord{Type: cgFlagsChanged, Keycode: 55, Flags: 0x00100008}, emit)
	})
	assert.Equal(t, []input.Event{input.Press(input.KeyLeftMeta)}, got)
}

func TestQuartzSecondShiftWhileFirstHeld(t *testing.T) {
	conv := newQuartzConverter()
	got := collect(func(emit func(input.Event)) {
		conv.convert(quartzRecord{Type: cgFlagsChanged, Keycode: 56, Flags: 0x00020002}, emit)
		conv.convert(quartzRecord{Type: cgFlagsChanged, Keycode: 60, Flags: 0x00020006}, emit)
		conv.convert(quartzRecord{Type: cgFlagsChanged, Keycode: 60, Flags: 0x00020002}, emit)
	})
	assert.Equal(t, []input.Event{
		input.Press(input.KeyLeftShift),
		input.Press(input.KeyRightShift),
		input.Release(input.KeyRightShift),
	}, got)
}

func TestQuartzConvert(t *testing.T) {
	tests := []struct {
		name string
		recs []quartzRecord
		want []input.Event
	}{
		{
			name: "key order preserved",
			recs: []quartzRecord{
				{Type: cgKeyDown, Keycode: 0},
				{Type: cgKeyUp, Keycode: 0},
				{Type: cgKeyDown, Keycode: 11},
			},
			want: []input.Event{
				input.Press(input.KeyA),
				input.Release(input.KeyA),
				input.Press(input.KeyB),
			},
		},
		{
			name: "unknown keycode dropped",
			recs: []quartzRecord{{Type: cgKeyDown, Keycode: 10}, {Type: cgKeyDown, Keycode: 49}},
			want: []input.Event{input.Press(input.KeySpace)},
		},
		{
			name: "buttons",
			recs: []quartzRecord{
				{Type: cgLeftMouseDown},
				{Type: cgRightMouseUp},
				{Type: cgOtherMouseDown, Button: 2},
				{Type: cgOtherMouseUp, Button: 4},
				{Type: cgOtherMouseDown, Button: 9},
			},
			want: []input.Event{
				input.Press(input.ButtonLeft),
				input.Release(input.ButtonRight),
				input.Press(input.ButtonMiddle),
				input.Release(input.ButtonForward),
			},
		},
		{
			name: "move splits axes",
			recs: []quartzRecord{
				{Type: cgMouseMoved, DeltaX: 3, DeltaY: -2},
				{Type: cgLeftMouseDragged, DeltaY: 7},
				{Type: cgMouseMoved},
			},
			want: []input.Event{
				input.MouseMove{Axis: input.X, Delta: 3},
				input.MouseMove{Axis: input.Y, Delta: -2},
				input.MouseMove{Axis: input.Y, Delta: 7},
			},
		},
		{
			name: "scroll",
			recs: []quartzRecord{{Type: cgScrollWheel, Scroll: -4}, {Type: cgScrollWheel}},
			want: []input.Event{input.MouseScroll{Delta: -4}},
		},
		{
			name: "own injections skipped",
			recs: []quartzRecord{{Type: cgLeftMouseDown, UserData: injectedMarker}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := newQuartzConverter()
			got := collect(func(emit func(input.Event)) {
				for _, r := range tt.recs {
					conv.convert(r, emit)
				}
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanQuartzMoveKeepsOtherAxis(t *testing.T) {
	cur := point{X: 100, Y: 200}

	a, err := planQuartz(input.MouseMove{Axis: input.X, Delta: 10}, cur)
	require.NoError(t, err)
	assert.Equal(t, quartzAction{Kind: quartzMouse, Type: cgMouseMoved, Button: cgButtonLeft, X: 110, Y: 200}, a)

	cur = point{X: a.X, Y: a.Y}
	a, err = planQuartz(input.MouseMove{Axis: input.Y, Delta: 5}, cur)
	require.NoError(t, err)
	assert.Equal(t, 110.0, a.X)
	assert.Equal(t, 205.0, a.Y)
}

func TestPlanQuartz(t *testing.T) {
	cur := point{X: 1, Y: 2}
	tests := []struct {
		name    string
		ev      input.Event
		want    quartzAction
		wantErr error
	}{
		{
			name: "scroll",
			ev:   input.MouseScroll{Delta: -3},
			want: quartzAction{Kind: quartzScroll, Wheel: -3},
		},
		{
			name: "left down",
			ev:   input.Press(input.ButtonLeft),
			want: quartzAction{Kind: quartzMouse, Type: cgLeftMouseDown, Button: cgButtonLeft, X: 1, Y: 2},
		},
		{
			name: "right up",
			ev:   input.Release(input.ButtonRight),
			want: quartzAction{Kind: quartzMouse, Type: cgRightMouseUp, Button: cgButtonRight, X: 1, Y: 2},
		},
		{
			name: "middle down",
			ev:   input.Press(input.ButtonMiddle),
			want: quartzAction{Kind: quartzMouse, Type: cgOtherMouseDown, Button: cgButtonCenter, X: 1, Y: 2},
		},
		{
			name:    "keyboard not representable",
			ev:      input.Press(input.KeyA),
			wantErr: ErrNotRepresentable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planQuartz(tt.ev, cur)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuartzEventMask(t *testing.T) {
	mask := quartzEventMask()
	assert.NotZero(t, mask&(1<<cgFlagsChanged))
	assert.NotZero(t, mask&(1<<cgScrollWheel))
	assert.Zero(t, mask&(1<<8))
}
