package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputmux/input"
)

func TestHookSlot(t *testing.T) {
	var slot hookSlot[int]
	assert.Nil(t, slot.get())

	a, b := 1, 2
	release, err := slot.acquire(&a)
	require.NoError(t, err)
	assert.Equal(t, &a, slot.get())

	_, err = slot.acquire(&b)
	assert.True(t, errors.Is(err, ErrHookActive))
	assert.Equal(t, &a, slot.get())

	release()
	release()
	assert.Nil(t, slot.get())

	release, err = slot.acquire(&b)
	require.NoError(t, err)
	assert.Equal(t, &b, slot.get())
	release()
}

func TestModifierEdges(t *testing.T) {
	tests := []struct {
		flags   uint64
		wantDir input.Direction
		wantOK  bool
	}{
		{0, input.Down, false},
		{0x2, input.Down, true},
		{0x2, input.Down, false},
		{0x6, input.Down, true},
		{0x2, input.Up, true},
		{0x0, input.Up, true},
	}
	var m modifierEdges
	for i, tt := range tests {
		dir, ok := m.next(tt.flags)
		assert.Equal(t, tt.wantOK, ok, "step %d", i)
		if ok {
			assert.Equal(t, tt.wantDir, dir, "step %d", i)
		}
	}
}
