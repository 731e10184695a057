package squidward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/squidward"
)

func TestImmediateExecutor(t *testing.T) {
	var ran bool
	squidward.Immediate().Execute(func() { ran = true })
	assert.True(t, ran, "immediate executor must run work before returning")
}

func TestSerialExecutorOrdering(t *testing.T) {
	e := squidward.NewSerialExecutor(8)

	const n = 200
	var got []int
	for i := 0; i < n; i++ {
		e.Execute(func() { got = append(got, i) })
	}
	e.Close()

	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, i, v, "work must run in submission order")
	}
}

func TestSerialExecutorCloseWaits(t *testing.T) {
	e := squidward.NewSerialExecutor(1)

	var done bool
	e.Execute(func() { done = true })
	e.Close()

	assert.True(t, done, "Close must wait for submitted work")

	// Close is idempotent.
	e.Close()
}

// Driving an automaton through the serial executor: Post returns before
// processing, Close flushes, and events are applied in posting order.
func TestSerialExecutorDrivesAutomaton(t *testing.T) {
	e := squidward.NewSerialExecutor(16)

	off := mustState(t, "off")
	on := mustState(t, "on")

	turnOn, err := squidward.NewTransition[string]().
		From(off).To(on).
		Check(func(s string) bool { return s == "on" }).
		Build()
	require.NoError(t, err)
	turnOff, err := squidward.NewTransition[string]().
		From(on).To(off).
		Check(func(s string) bool { return s == "off" }).
		Build()
	require.NoError(t, err)

	auto, err := squidward.NewBuilder().
		AddStates(off, on).
		AddTransitions(turnOn, turnOff).
		InitialState(off).
		Executor(e).
		Build()
	require.NoError(t, err)

	require.NoError(t, auto.Enable())
	require.NoError(t, auto.Post("on"))
	require.NoError(t, auto.Post("off"))
	require.NoError(t, auto.Post("on"))
	e.Close()

	cur, ok := auto.Current()
	require.True(t, ok)
	assert.True(t, cur == on)
}
