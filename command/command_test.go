package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipejesus/chill-out/parameter"
)

func TestQueueInvokesInOrder(t *testing.T) {
	q := NewQueue()
	var calls []string

	record := func(p any) { calls = append(calls, p.(string)) }
	require.True(t, q.Push(Command{Name: "fire", Action: record, Payload: "first"}))
	require.True(t, q.Push(Command{Name: "fire", Action: record, Payload: "second"}))

	for {
		c, ok := q.Pop()
		if !ok {
			break
		}
		c.Invoke()
	}

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestQueueDropsOnOverflow(t *testing.T) {
	q := NewQueue()
	for i := 0; i < parameter.CommandQueueSize-1; i++ {
		require.True(t, q.Push(Command{Name: "fire"}))
	}

	assert.False(t, q.Push(Command{Name: "fire"}))
	assert.Equal(t, uint64(1), q.Dropped())
	assert.Equal(t, parameter.CommandQueueSize-1, q.Len())
}

func TestCommandNilActionIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { Command{Name: "empty"}.Invoke() })
}

func TestQueuesAreIndependent(t *testing.T) {
	a := NewQueue()
	b := NewQueue()
	a.Push(Command{Name: "fire"})

	_, ok := b.Pop()
	assert.False(t, ok)
	assert.Equal(t, 1, a.Len())
}
