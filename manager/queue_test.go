package manager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/inputmux/input"
)

func TestQueueErrorPreemptsEvents(t *testing.T) {
	boom := errors.New("boom")
	q := newEventQueue(1)
	q.push(input.Press(input.KeyA))
	q.push(input.Press(input.KeyB))

	assert.True(t, q.fail(boom))
	assert.False(t, q.fail(errors.New("second")))

	for i := 0; i < 2; i++ {
		ev, ok, err := q.take()
		assert.True(t, ok)
		assert.Nil(t, ev)
		assert.Equal(t, boom, err)
	}

	q.push(input.Press(input.KeyC))
	_, _, err := q.take()
	assert.Equal(t, boom, err)
}

func TestQueueDrainsBeforeExhaustion(t *testing.T) {
	q := newEventQueue(2)
	q.push(input.Press(input.KeyA))
	q.sourceDone()

	_, ok, _ := q.take()
	assert.True(t, ok)
	_, ok, _ = q.take()
	assert.False(t, ok, "one source still live")

	q.push(input.Press(input.KeyB))
	q.sourceDone()

	ev, ok, err := q.take()
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, input.Press(input.KeyB), ev)

	for i := 0; i < 2; i++ {
		_, ok, err = q.take()
		assert.True(t, ok)
		assert.ErrorIs(t, err, ErrAllSourcesClosed)
	}
	select {
	case <-q.terminal:
	default:
		t.Fatal("terminal not closed after exhaustion")
	}
}

func TestQueueWithoutSourcesIsExhausted(t *testing.T) {
	q := newEventQueue(0)
	_, ok, err := q.take()
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrAllSourcesClosed)
}

func TestQueueCloseDropsPending(t *testing.T) {
	q := newEventQueue(1)
	q.push(input.Press(input.KeyA))
	q.close()

	_, ok, err := q.take()
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrAllSourcesClosed)
}
